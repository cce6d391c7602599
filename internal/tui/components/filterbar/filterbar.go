package filterbar

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/tui/common"
	"github.com/justchokingaround/morty/internal/tui/styles"
)

type field int

const (
	nameField field = iota
	statusField
	speciesField
	genderField
	fieldCount
)

// maxSuggestions is the number of species suggestions shown
const maxSuggestions = 4

// Model edits a filter set: free text name and species, fixed status and gender options
type Model struct {
	name    textinput.Model
	species textinput.Model
	status  int // index into statusOptions
	gender  int // index into genderOptions
	focus   field
	width   int
}

// statusOptions and genderOptions start with "any", the unset filter
var (
	statusOptions = append([]string{""}, api.Statuses...)
	genderOptions = append([]string{""}, api.Genders...)
)

// New creates a filter bar
func New() Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 100
		ti.Width = 30
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase05)
		ti.PlaceholderStyle = styles.HelpStyle
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
		return ti
	}

	return Model{
		name:    newInput("any name"),
		species: newInput("any species"),
	}
}

// Open loads f into the form and focuses the name field
func (m *Model) Open(f api.Filter) tea.Cmd {
	m.name.SetValue(f.Name)
	m.species.SetValue(f.Species)
	m.status = indexOf(statusOptions, f.Status)
	m.gender = indexOf(genderOptions, f.Gender)
	return m.setFocus(nameField)
}

// Filter returns the filter set currently in the form
func (m Model) Filter() api.Filter {
	return api.Filter{
		Name:    strings.TrimSpace(m.name.Value()),
		Status:  statusOptions[m.status],
		Species: strings.TrimSpace(m.species.Value()),
		Gender:  genderOptions[m.gender],
	}
}

// SetWidth sets the available width
func (m *Model) SetWidth(width int) {
	m.width = width
	if width > 40 {
		m.name.Width = min(40, width-20)
		m.species.Width = m.name.Width
	}
}

// Suggestions returns the known species matching the species input, best first
func (m Model) Suggestions() []string {
	query := strings.TrimSpace(m.species.Value())
	if query == "" {
		return nil
	}

	matches := fuzzy.Find(query, api.Species)
	suggestions := make([]string, 0, min(len(matches), maxSuggestions))
	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}
		if strings.EqualFold(match.Str, query) {
			continue
		}
		suggestions = append(suggestions, match.Str)
	}
	return suggestions
}

func (m *Model) setFocus(f field) tea.Cmd {
	m.focus = (f + fieldCount) % fieldCount
	m.name.Blur()
	m.species.Blur()

	switch m.focus {
	case nameField:
		return m.name.Focus()
	case speciesField:
		return m.species.Focus()
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	switch keyMsg.String() {
	case "enter":
		filter := m.Filter()
		return m, func() tea.Msg { return common.ApplyFiltersMsg{Filter: filter} }
	case "esc":
		return m, func() tea.Msg { return common.CloseFiltersMsg{} }
	case "tab", "down":
		return m, m.setFocus(m.focus + 1)
	case "shift+tab", "up":
		return m, m.setFocus(m.focus - 1)
	case "ctrl+n":
		if m.focus == speciesField {
			if s := m.Suggestions(); len(s) > 0 {
				m.species.SetValue(s[0])
				m.species.CursorEnd()
			}
			return m, nil
		}
	case "ctrl+u":
		m.clearFocused()
		return m, nil
	}

	switch m.focus {
	case statusField:
		m.status = cycle(m.status, len(statusOptions), keyMsg.String())
		return m, nil
	case genderField:
		m.gender = cycle(m.gender, len(genderOptions), keyMsg.String())
		return m, nil
	}

	return m.updateInputs(msg)
}

func (m *Model) clearFocused() {
	switch m.focus {
	case nameField:
		m.name.SetValue("")
	case statusField:
		m.status = 0
	case speciesField:
		m.species.SetValue("")
	case genderField:
		m.gender = 0
	}
}

func (m Model) updateInputs(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case nameField:
		m.name, cmd = m.name.Update(msg)
	case speciesField:
		m.species, cmd = m.species.Update(msg)
	}
	return m, cmd
}

// cycle moves an option index with left/right (h/l, space)
func cycle(i, n int, key string) int {
	switch key {
	case "left", "h":
		return (i - 1 + n) % n
	case "right", "l", " ":
		return (i + 1) % n
	}
	return i
}

func indexOf(options []string, value string) int {
	for i, o := range options {
		if o == value {
			return i
		}
	}
	return 0
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Filters") + "\n")

	row := func(f field, label, value string) {
		style := styles.BlurredFieldStyle
		if m.focus == f {
			style = styles.FocusedFieldStyle
		}
		b.WriteString(style.Render(styles.MetadataStyle.Width(9).Render(label)+value) + "\n")
	}

	row(nameField, "Name", m.name.View())
	row(statusField, "Status", options(statusOptions, m.status))
	row(speciesField, "Species", m.species.View())
	if m.focus == speciesField {
		if s := m.Suggestions(); len(s) > 0 {
			b.WriteString(styles.HelpStyle.Render("           ctrl+n: "+strings.Join(s, ", ")) + "\n")
		}
	}
	row(genderField, "Gender", options(genderOptions, m.gender))

	b.WriteString(styles.HelpStyle.Render("tab/↑↓ field • ←/→ option • ctrl+u clear • enter apply • esc cancel"))
	return b.String()
}

func options(opts []string, selected int) string {
	parts := make([]string, len(opts))
	for i, o := range opts {
		if o == "" {
			o = "any"
		}
		if i == selected {
			parts[i] = styles.ChipStyle.Foreground(styles.OxocarbonPurple).Bold(true).Render(o)
		} else {
			parts[i] = styles.HelpStyle.Render(o)
		}
	}
	return strings.Join(parts, " ")
}
