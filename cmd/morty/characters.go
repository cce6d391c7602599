package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/profile"
	"github.com/justchokingaround/morty/internal/tui/components/characters"
)

// charactersCmd prints one page of characters, or a range of pages fetched concurrently
var charactersCmd = &cobra.Command{
	Use:   "characters",
	Short: "List characters",
	Example: `  morty characters --status Dead
  morty characters --page 2 --to 5 --species Human`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		page, _ := cmd.Flags().GetInt("page")
		to, _ := cmd.Flags().GetInt("to")
		concurrency, _ := cmd.Flags().GetInt("concurrency")

		filter := api.Filter{}
		filter.Name, _ = cmd.Flags().GetString("name")
		filter.Status, _ = cmd.Flags().GetString("status")
		filter.Species, _ = cmd.Flags().GetString("species")
		filter.Gender, _ = cmd.Flags().GetString("gender")

		if page < 1 {
			page = 1
		}
		if to < page {
			to = page
		}

		logger.Info("listing characters", "from", page, "to", to, "filter", browse.BuildQuery(filter))

		pages, err := api.FetchPages(cmd.Context(), client, page, to, filter, concurrency)
		if err != nil {
			return err
		}

		shown := 0
		for _, p := range pages {
			for _, c := range p.Items {
				fmt.Printf("%5s  %s\n", c.ID, characters.Row(c, 0))
				shown++
			}
		}

		last := pages[len(pages)-1]
		if last.IsEmpty() && shown == 0 {
			fmt.Println("No characters match these filters.")
			return nil
		}
		if last.Pagination != nil {
			fmt.Printf("\n%s of %s characters, page %d-%d of %s\n",
				humanize.Comma(int64(shown)),
				humanize.Comma(int64(last.Pagination.TotalCount)),
				page, to,
				humanize.Comma(int64(last.Pagination.TotalPages)))
		}
		return nil
	},
}

// characterCmd prints one character with its episodes
var characterCmd = &cobra.Command{
	Use:   "character <id>",
	Short: "Show a character and the episodes they appear in",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := client.Character(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		kind := d.Species
		if d.Type != "" {
			kind += " (" + d.Type + ")"
		}

		fmt.Printf("%s (#%s)\n", d.Name, d.ID)
		fmt.Printf("  Status:   %s\n", d.Status)
		fmt.Printf("  Species:  %s\n", kind)
		fmt.Printf("  Gender:   %s\n", d.Gender)
		fmt.Printf("  Origin:   %s\n", d.Origin.Name)
		fmt.Printf("  Location: %s\n", d.Location.Name)
		fmt.Printf("  Image:    %s\n", d.Image)
		if created, err := time.Parse(time.RFC3339, d.Created); err == nil {
			fmt.Printf("  Created:  %s\n", humanize.Time(created))
		}

		fmt.Printf("\nEpisodes (%d):\n", len(d.Episodes))
		for _, e := range d.Episodes {
			fmt.Printf("  %s  %s\n", e.Code, e.Name)
		}
		return nil
	},
}

// openCmd opens a character image in the default browser
var openCmd = &cobra.Command{
	Use:   "open <id>",
	Short: "Open a character image in the browser",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := client.Character(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if d.Image == "" {
			return fmt.Errorf("character %s has no image", args[0])
		}
		logger.Debug("opening image", "id", d.ID, "url", d.Image)
		return browser.OpenURL(d.Image)
	},
}

// profileCmd manages the local profile
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or change the local profile",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stored profile",
	Run: func(cmd *cobra.Command, args []string) {
		p, ok := session.Current()
		if !ok {
			fmt.Println("No profile. Run 'morty' or 'morty profile set' to create one.")
			return
		}
		fmt.Printf("Username:  %s\n", p.Username)
		fmt.Printf("Job title: %s\n", p.JobTitle)
	},
}

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the stored profile",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("username")
		jobTitle, _ := cmd.Flags().GetString("job-title")

		if err := session.Save(profile.Profile{Username: username, JobTitle: jobTitle}); err != nil {
			if fields := profile.FieldErrors(err); len(fields) > 0 {
				msgs := make([]string, 0, len(fields))
				for _, name := range []string{"username", "jobTitle"} {
					if msg, ok := fields[name]; ok {
						msgs = append(msgs, msg)
					}
				}
				return fmt.Errorf("invalid profile: %s", strings.Join(msgs, "; "))
			}
			return err
		}

		p, _ := session.Current()
		fmt.Printf("Profile saved for %s\n", p.Username)
		return nil
	},
}

var profileClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored profile (log out)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := session.Clear(); err != nil {
			return err
		}
		fmt.Println("Profile cleared")
		return nil
	},
}

func init() {
	charactersCmd.Flags().IntP("page", "p", 1, "page to fetch")
	charactersCmd.Flags().Int("to", 0, "last page of a range (default: --page)")
	charactersCmd.Flags().StringP("name", "n", "", "filter by name")
	charactersCmd.Flags().StringP("status", "s", "", "filter by status ("+strings.Join(api.Statuses, ", ")+")")
	charactersCmd.Flags().String("species", "", "filter by species")
	charactersCmd.Flags().StringP("gender", "g", "", "filter by gender ("+strings.Join(api.Genders, ", ")+")")
	charactersCmd.Flags().IntP("concurrency", "c", 4, "maximum concurrent requests for a page range")

	profileSetCmd.Flags().String("username", "", "username (at least 2 characters)")
	profileSetCmd.Flags().String("job-title", "", "job title (at least 2 characters)")

	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileClearCmd)
}
