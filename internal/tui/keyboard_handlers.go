package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (a *App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// ctrl+c always quits, even while typing
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	var cmd tea.Cmd
	if a.helpComponent.IsVisible() {
		a.helpComponent, cmd = a.helpComponent.Update(msg)
		return a, cmd
	}

	switch a.state {
	case onboardingView, profileView:
		a.profileForm, cmd = a.profileForm.Update(msg)
		return a, cmd
	case filterView:
		a.filterBar, cmd = a.filterBar.Update(msg)
		return a, cmd
	case detailView:
		return a.handleDetailKeys(msg)
	}
	return a.handleBrowseKeys(msg)
}

func (a *App) handleBrowseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.browseKeys

	switch {
	case key.Matches(msg, k.Quit):
		return a.quit()
	case key.Matches(msg, k.Help):
		a.helpComponent.Toggle()
	case key.Matches(msg, k.Up):
		a.list.MoveUp()
	case key.Matches(msg, k.Down):
		a.list.MoveDown()
	case key.Matches(msg, k.Open):
		return a, a.openDetail()
	case key.Matches(msg, k.PrevPage):
		return a, a.goToPage(a.controller.Route().Page - 1)
	case key.Matches(msg, k.NextPage):
		if w, ok := a.controller.Pagination(); ok && w.HasNext {
			return a, a.goToPage(w.Current + 1)
		}
	case key.Matches(msg, k.First):
		return a, a.goToPage(1)
	case key.Matches(msg, k.Last):
		if w, ok := a.controller.Pagination(); ok {
			return a, a.goToPage(w.Total)
		}
	case key.Matches(msg, k.Filter):
		a.state = filterView
		return a, a.filterBar.Open(a.controller.Route().Filter)
	case key.Matches(msg, k.Clear):
		return a, a.clearFilters()
	case key.Matches(msg, k.Reload):
		return a, a.reload()
	case key.Matches(msg, k.Back):
		if a.history.Back() {
			return a, a.syncRoute()
		}
		return a, a.setStatus("Nothing to go back to")
	case key.Matches(msg, k.Forward):
		if a.history.Forward() {
			return a, a.syncRoute()
		}
	case key.Matches(msg, k.Copy):
		return a, a.clipboard.Copy(a.history.CurrentPath())
	case key.Matches(msg, k.Image):
		if c, ok := a.list.Highlighted(); ok {
			return a, a.openImage(c.Image)
		}
	case key.Matches(msg, k.Profile):
		p, _ := a.session.Current()
		a.state = profileView
		return a, a.profileForm.Edit(p)
	case key.Matches(msg, k.Logout):
		return a.logout()
	}

	return a, nil
}

func (a *App) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := a.detailKeys

	switch {
	case key.Matches(msg, k.Close):
		a.controller.Close()
		a.state = browseView
	case key.Matches(msg, k.Prev):
		if id, ok := a.controller.Previous(); ok {
			a.list.SetCursor(a.controller.SelectedIndex())
			return a, a.enrich(id)
		}
	case key.Matches(msg, k.Next):
		if id, ok := a.controller.Next(); ok {
			a.list.SetCursor(a.controller.SelectedIndex())
			return a, a.enrich(id)
		}
	case key.Matches(msg, k.Image):
		if c, ok := a.controller.Selected(); ok {
			return a, a.openImage(c.Image)
		}
	case key.Matches(msg, k.Help):
		a.helpComponent.Toggle()
	}

	return a, nil
}
