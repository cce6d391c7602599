package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	bubbleshelp "github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/clipboard"
	"github.com/justchokingaround/morty/internal/config"
	"github.com/justchokingaround/morty/internal/profile"
	"github.com/justchokingaround/morty/internal/tui/common"
	"github.com/justchokingaround/morty/internal/tui/components/characters"
	"github.com/justchokingaround/morty/internal/tui/components/detail"
	"github.com/justchokingaround/morty/internal/tui/components/filterbar"
	"github.com/justchokingaround/morty/internal/tui/components/help"
	"github.com/justchokingaround/morty/internal/tui/components/pagination"
	"github.com/justchokingaround/morty/internal/tui/components/profileform"
	"github.com/justchokingaround/morty/internal/tui/styles"
)

type sessionState int

const (
	onboardingView sessionState = iota
	browseView
	filterView
	detailView
	profileView
)

// statusTimeout is how long a status message stays in the footer
const statusTimeout = 2500 * time.Millisecond

// clearStatusMsg is an internal message to clear the status message
type clearStatusMsg struct {
	at time.Time
}

// App is the root model of the terminal UI
type App struct {
	state  sessionState
	width  int
	height int

	ctx       context.Context
	fetcher   browse.Fetcher
	session   *profile.Session
	clipboard clipboard.Service
	openURL   func(string) error
	cfg       *config.Config
	logger    *slog.Logger

	history    *browse.History
	controller *browse.Controller
	enricher   *browse.Enricher

	list          characters.Model
	filterBar     filterbar.Model
	profileForm   profileform.Model
	helpComponent help.Model
	footer        bubbleshelp.Model
	spinner       spinner.Model

	browseKeys browseKeys
	detailKeys detailKeys

	statusMsg     string
	statusMsgTime time.Time
}

// NewApp builds the root model from opts
func NewApp(opts Options) *App {
	opts = opts.withDefaults()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)

	hist := browse.NewHistory(opts.StartPath)

	app := &App{
		state:         browseView,
		ctx:           opts.Context,
		fetcher:       opts.Fetcher,
		session:       opts.Session,
		clipboard:     opts.Clipboard,
		openURL:       opts.OpenURL,
		cfg:           opts.Config,
		logger:        opts.Logger,
		history:       hist,
		controller:    browse.NewController(hist, opts.Logger),
		enricher:      browse.NewEnricher(api.NewDetailCache(), opts.Logger),
		list:          characters.New(),
		filterBar:     filterbar.New(),
		profileForm:   profileform.New(),
		helpComponent: help.New(),
		footer:        bubbleshelp.New(),
		spinner:       s,
		browseKeys:    BrowseKeyMap(),
		detailKeys:    DetailKeyMap(),
	}

	app.footer.Styles.ShortKey = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
	app.footer.Styles.ShortDesc = styles.HelpStyle
	app.footer.Styles.ShortSeparator = styles.HelpStyle

	app.helpComponent.SetSections(
		help.Section{Title: "Browse", Bindings: app.browseKeys.FullHelp()[0]},
		help.Section{Title: "Filters & history", Bindings: app.browseKeys.FullHelp()[1]},
		help.Section{Title: "Actions", Bindings: app.browseKeys.FullHelp()[2]},
		help.Section{Title: "Character detail", Bindings: app.detailKeys.FullHelp()[0]},
	)

	if !app.session.Authenticated() {
		app.state = onboardingView
	}

	return app
}

func (a *App) Init() tea.Cmd {
	if a.state == onboardingView {
		return a.profileForm.Onboard()
	}
	return a.syncRoute()
}

// Path returns the current navigation path
func (a *App) Path() string {
	return a.history.CurrentPath()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.list.SetSize(msg.Width, max(msg.Height-8, 1))
		a.filterBar.SetWidth(msg.Width)
		a.profileForm.SetWidth(msg.Width)
		a.helpComponent.SetSize(msg.Width, msg.Height)
		a.footer.Width = msg.Width
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case spinner.TickMsg:
		if a.controller.Status() != browse.StatusLoading {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case clearStatusMsg:
		if !msg.at.Before(a.statusMsgTime) {
			a.statusMsg = ""
		}
		return a, nil

	case common.CharactersLoadedMsg:
		return a.handleCharactersLoaded(msg.Result)
	case common.DetailLoadedMsg:
		a.enricher.Complete(msg.Result)
		return a, nil
	case common.ApplyFiltersMsg:
		return a.applyFilters(msg.Filter)
	case common.CloseFiltersMsg:
		a.state = browseView
		return a, nil
	case common.SubmitProfileMsg:
		return a.handleSubmitProfile(msg)
	case common.CancelProfileMsg:
		a.state = browseView
		return a, nil
	case clipboard.CopiedMsg:
		if msg.Err != nil {
			return a, a.setStatus("Copy failed: " + msg.Err.Error())
		}
		return a, a.setStatus("Copied " + msg.Text)
	case common.ImageOpenedMsg:
		if msg.Err != nil {
			return a, a.setStatus("Could not open image: " + msg.Err.Error())
		}
		return a, nil
	}

	return a.updateFocused(msg)
}

// updateFocused forwards messages such as cursor blinks to the focused input
func (a *App) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.state {
	case filterView:
		a.filterBar, cmd = a.filterBar.Update(msg)
	case onboardingView, profileView:
		a.profileForm, cmd = a.profileForm.Update(msg)
	}
	return a, cmd
}

// setStatus shows text in the footer until it times out
func (a *App) setStatus(text string) tea.Cmd {
	a.statusMsg = text
	a.statusMsgTime = time.Now()
	at := a.statusMsgTime
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{at: at}
	})
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.helpComponent.IsVisible() {
		return a.helpComponent.View()
	}

	switch a.state {
	case onboardingView, profileView:
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.profileForm.View())
	case detailView:
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, a.renderDetail(),
			lipgloss.WithWhitespaceChars(" "))
	}

	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n\n")

	if a.state == filterView {
		b.WriteString(a.filterBar.View())
		b.WriteString("\n\n")
	}

	b.WriteString(a.renderBody())
	b.WriteString("\n")
	b.WriteString(a.renderFooter())
	return b.String()
}

func (a *App) renderHeader() string {
	header := styles.TitleStyle.Render("  morty  ")

	user := ""
	if p, ok := a.session.Current(); ok {
		user = styles.MetadataStyle.Render(fmt.Sprintf("%s, %s", p.Username, p.JobTitle))
	}

	parts := []string{header, "  ", styles.URLStyle.Render(a.history.CurrentPath())}
	if user != "" {
		parts = append(parts, "  ", user)
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts...) + "\n" + a.renderChips()
}

// renderChips shows the active filters
func (a *App) renderChips() string {
	f := a.controller.Route().Filter
	if f.IsEmpty() {
		return styles.HelpStyle.Render("No filters")
	}

	var chips []string
	add := func(label, value string) {
		if value != "" {
			chips = append(chips, styles.ChipStyle.Render(label+": "+value))
		}
	}
	add("name", f.Name)
	add("status", f.Status)
	add("species", f.Species)
	add("gender", f.Gender)
	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

func (a *App) renderBody() string {
	switch a.controller.Status() {
	case browse.StatusLoading:
		return a.spinner.View() + " Loading characters…"
	case browse.StatusFailed:
		return styles.ErrorStyle.Render("Failed to load characters") + "\n" +
			styles.MetadataStyle.Render(a.controller.Err().Error()) + "\n\n" +
			styles.HelpStyle.Render("press r to retry")
	case browse.StatusSuccess:
		if a.controller.IsEmpty() {
			return styles.MetadataStyle.Render("No characters match these filters.") + "\n\n" +
				styles.HelpStyle.Render("press x to clear filters")
		}
	default:
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.HeaderStyle.Render(fmt.Sprintf("%s characters", humanize.Comma(int64(a.controller.TotalCount())))))
	b.WriteString("\n")
	b.WriteString(a.list.View())
	if w, ok := a.controller.Pagination(); ok {
		b.WriteString("\n")
		b.WriteString(pagination.View(w))
	}
	return b.String()
}

func (a *App) renderFooter() string {
	if a.statusMsg != "" {
		return styles.FooterStyle.Render(a.statusMsg)
	}
	return a.footer.View(a.browseKeys)
}

func (a *App) renderDetail() string {
	c, ok := a.controller.Selected()
	if !ok {
		return ""
	}
	d, pending, err := a.enricher.Lookup(c.ID)
	view := detail.Render(detail.Props{
		Character: c,
		Detail:    d,
		Pending:   pending,
		Err:       err,
		Index:     a.controller.SelectedIndex(),
		Total:     len(a.controller.Items()),
		Width:     a.width,
	})
	footer := a.footer.View(a.detailKeys)
	if a.statusMsg != "" {
		footer = styles.FooterStyle.Render(a.statusMsg)
	}
	return lipgloss.JoinVertical(lipgloss.Center, view, footer)
}
