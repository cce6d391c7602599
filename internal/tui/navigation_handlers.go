package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/profile"
	"github.com/justchokingaround/morty/internal/tui/common"
)

// syncRoute lets the controller reconcile with the current path and
// starts a fetch when the route changed
func (a *App) syncRoute() tea.Cmd {
	load, ok := a.controller.Sync()
	if !ok {
		return nil
	}
	a.list.SetItems(nil)
	return tea.Batch(a.fetchPage(load), a.spinner.Tick)
}

func (a *App) navigate(path string) tea.Cmd {
	if path == a.history.CurrentPath() {
		return nil
	}
	a.history.Navigate(path)
	return a.syncRoute()
}

func (a *App) goToPage(page int) tea.Cmd {
	route := a.controller.Route()
	if page < 1 || page == route.Page {
		return nil
	}
	return a.navigate(route.WithPage(page).Path())
}

func (a *App) clearFilters() tea.Cmd {
	if a.controller.Route().Filter.IsEmpty() {
		return nil
	}
	return a.navigate(browse.Route{Page: 1}.Path())
}

func (a *App) applyFilters(f api.Filter) (tea.Model, tea.Cmd) {
	a.state = browseView
	if f == a.controller.Route().Filter {
		return a, nil
	}
	return a, a.navigate(browse.Route{Page: 1, Filter: f}.Path())
}

func (a *App) reload() tea.Cmd {
	load := a.controller.Reload()
	a.list.SetItems(nil)
	return tea.Batch(a.fetchPage(load), a.spinner.Tick)
}

func (a *App) fetchPage(load browse.Load) tea.Cmd {
	ctx, fetcher := a.ctx, a.fetcher
	return func() tea.Msg {
		return common.CharactersLoadedMsg{Result: load.Run(ctx, fetcher)}
	}
}

func (a *App) handleCharactersLoaded(res browse.PageResult) (tea.Model, tea.Cmd) {
	if !a.controller.Apply(res) {
		return a, nil
	}
	a.list.SetItems(a.controller.Items())
	return a, nil
}

// openDetail selects the highlighted character and starts its enrichment
func (a *App) openDetail() tea.Cmd {
	c, ok := a.list.Highlighted()
	if !ok {
		return nil
	}
	id, ok := a.controller.Select(c.ID)
	if !ok {
		return nil
	}
	a.state = detailView
	return a.enrich(id)
}

func (a *App) enrich(id string) tea.Cmd {
	load, ok := a.enricher.Begin(id)
	if !ok {
		return nil
	}
	ctx, fetcher := a.ctx, a.fetcher
	return func() tea.Msg {
		return common.DetailLoadedMsg{Result: load.Run(ctx, fetcher)}
	}
}

func (a *App) openImage(url string) tea.Cmd {
	if url == "" {
		return a.setStatus("No image for this character")
	}
	open := a.openURL
	return func() tea.Msg {
		return common.ImageOpenedMsg{URL: url, Err: open(url)}
	}
}

func (a *App) handleSubmitProfile(msg common.SubmitProfileMsg) (tea.Model, tea.Cmd) {
	p, err := profile.New(msg.Username, msg.JobTitle)
	if err != nil {
		a.profileForm.SetErrors(err)
		return a, nil
	}
	if err := a.session.Save(p); err != nil {
		a.logger.Error("failed to save profile", "error", err)
		return a, a.setStatus("Could not save profile: " + err.Error())
	}

	onboarding := a.state == onboardingView
	a.state = browseView
	if onboarding {
		return a, tea.Batch(a.syncRoute(), a.setStatus("Welcome, "+p.Username))
	}
	return a, a.setStatus("Profile saved")
}

func (a *App) logout() (tea.Model, tea.Cmd) {
	if err := a.session.Clear(); err != nil {
		a.logger.Error("failed to log out", "error", err)
		return a, a.setStatus("Could not log out: " + err.Error())
	}
	a.state = onboardingView
	return a, a.profileForm.Onboard()
}

// quit remembers the current path for the next launch
func (a *App) quit() (tea.Model, tea.Cmd) {
	if err := a.session.RememberPath(a.history.CurrentPath()); err != nil {
		a.logger.Warn("failed to remember path", "error", err)
	}
	return a, tea.Quit
}
