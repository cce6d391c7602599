package help

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func sections() []Section {
	return []Section{
		{Title: "Browse", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("l"), key.WithHelp("→/l", "next page")),
			key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
		}},
		{Title: "Detail", Bindings: []key.Binding{
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
			key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "hidden"), key.WithDisabled()),
		}},
	}
}

func TestHelpView(t *testing.T) {
	m := New()
	m.SetSections(sections()...)
	m.SetSize(80, 30)

	assert.Empty(t, m.View())

	m.Show()
	view := ansi.Strip(m.View())

	assert.Contains(t, view, "KEYBOARD SHORTCUTS")
	assert.Contains(t, view, "Browse")
	assert.Contains(t, view, "next page")
	assert.Contains(t, view, "Detail")
	assert.Contains(t, view, "close")
	assert.NotContains(t, view, "hidden")
}

func TestHelpScrollAndClose(t *testing.T) {
	m := New()
	m.SetSections(sections()...)
	m.SetSize(80, 12)
	m.Show()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	assert.Equal(t, 1, m.scrollOffset)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	assert.Equal(t, 0, m.scrollOffset)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.IsVisible())
}

func TestHelpToggle(t *testing.T) {
	m := New()
	m.Toggle()
	assert.True(t, m.IsVisible())
	m.Toggle()
	assert.False(t, m.IsVisible())
}
