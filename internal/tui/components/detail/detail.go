package detail

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/tui/styles"
	"github.com/justchokingaround/morty/internal/tui/utils"
)

// maxEpisodes is the number of episodes listed before collapsing the rest
const maxEpisodes = 10

// Props is everything the modal shows
type Props struct {
	Character api.Character
	Detail    *api.CharacterDetail
	Pending   bool
	Err       error
	// Index is zero based
	Index int
	Total int
	Width int
}

var labelStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase03).Width(10)

// Render draws the detail modal. The base character is always shown; episodes
// appear once the detail has arrived.
func Render(p Props) string {
	width := p.Width
	if width <= 0 || width > 72 {
		width = 72
	}
	inner := width - 6

	c := p.Character
	var b strings.Builder

	title := styles.TitleStyle.Render(utils.TruncateWithWidth(c.Name, inner-12))
	position := styles.HelpStyle.Render(fmt.Sprintf("  %d/%d", p.Index+1, p.Total))
	b.WriteString(title + position + "\n\n")

	field := func(label, value string) {
		if value == "" {
			value = "-"
		}
		b.WriteString(labelStyle.Render(label) + styles.MetadataStyle.Render(utils.TruncateWithWidth(value, inner-10)) + "\n")
	}

	b.WriteString(labelStyle.Render("Status") + styles.FormatStatusBadge(c.Status) + "\n")
	field("Species", c.Species)
	field("Type", c.Type)
	field("Gender", c.Gender)
	field("Origin", c.Origin.Name)
	field("Location", c.Location.Name)
	b.WriteString(labelStyle.Render("Image") + styles.URLStyle.Render(utils.TruncateWithWidth(c.Image, inner-10)) + "\n")

	if p.Detail != nil {
		if created, err := time.Parse(time.RFC3339, p.Detail.Created); err == nil {
			field("Created", humanize.Time(created))
		}
	}

	b.WriteString("\n")
	b.WriteString(episodes(p, inner))

	return styles.PopupStyle.Width(width).Render(b.String())
}

func episodes(p Props, width int) string {
	switch {
	case p.Detail != nil:
		eps := p.Detail.Episodes
		var b strings.Builder
		b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("Episodes (%d)", len(eps))) + "\n")
		for i, ep := range eps {
			if i == maxEpisodes {
				b.WriteString(styles.HelpStyle.Render(fmt.Sprintf("… and %d more", len(eps)-maxEpisodes)) + "\n")
				break
			}
			b.WriteString(styles.SubtitleStyle.Render(ep.Code) + "  " + utils.TruncateWithWidth(ep.Name, width-9) + "\n")
		}
		return strings.TrimSuffix(b.String(), "\n")
	case p.Err != nil:
		return styles.ErrorStyle.Render("Could not load episodes: ") + styles.MetadataStyle.Render(p.Err.Error())
	default:
		return styles.HelpStyle.Render("Loading episodes…")
	}
}
