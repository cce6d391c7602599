package profileform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/morty/internal/profile"
	"github.com/justchokingaround/morty/internal/tui/common"
	"github.com/justchokingaround/morty/internal/tui/styles"
)

const (
	usernameField = iota
	jobTitleField
)

// Model collects a username and job title, either on first run or when editing
type Model struct {
	inputs  [2]textinput.Model
	focus   int
	editing bool
	errors  map[string]string
	width   int
}

// New creates an empty profile form
func New() Model {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.Prompt = ""
		ti.CharLimit = 64
		ti.Width = 32
		ti.TextStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase05)
		ti.PlaceholderStyle = styles.HelpStyle
		ti.Cursor.Style = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple)
		return ti
	}

	return Model{
		inputs: [2]textinput.Model{
			newInput("e.g. rick"),
			newInput("e.g. Scientist"),
		},
	}
}

// Onboard resets the form for a first profile; it cannot be cancelled
func (m *Model) Onboard() tea.Cmd {
	m.editing = false
	return m.load(profile.Profile{})
}

// Edit fills the form with p; cancelling keeps p unchanged
func (m *Model) Edit(p profile.Profile) tea.Cmd {
	m.editing = true
	return m.load(p)
}

func (m *Model) load(p profile.Profile) tea.Cmd {
	m.inputs[usernameField].SetValue(p.Username)
	m.inputs[jobTitleField].SetValue(p.JobTitle)
	m.errors = nil
	return m.setFocus(usernameField)
}

// SetErrors shows the field errors of a rejected submission
func (m *Model) SetErrors(err error) {
	m.errors = profile.FieldErrors(err)
	switch {
	case m.errors["username"] != "":
		m.setFocus(usernameField)
	case m.errors["jobTitle"] != "":
		m.setFocus(jobTitleField)
	}
}

// Editing reports whether the form edits an existing profile
func (m Model) Editing() bool {
	return m.editing
}

// SetWidth sets the available width
func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = i
	m.inputs[usernameField].Blur()
	m.inputs[jobTitleField].Blur()
	return m.inputs[i].Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			return m, m.setFocus(1 - m.focus)
		case "enter":
			if m.focus == usernameField && strings.TrimSpace(m.inputs[jobTitleField].Value()) == "" {
				return m, m.setFocus(jobTitleField)
			}
			username := m.inputs[usernameField].Value()
			jobTitle := m.inputs[jobTitleField].Value()
			return m, func() tea.Msg {
				return common.SubmitProfileMsg{Username: username, JobTitle: jobTitle}
			}
		case "esc":
			if m.editing {
				return m, func() tea.Msg { return common.CancelProfileMsg{} }
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	if m.editing {
		b.WriteString(styles.TitleStyle.Render("Edit profile") + "\n\n")
	} else {
		b.WriteString(styles.TitleStyle.Render("Welcome to morty") + "\n\n")
		b.WriteString(styles.MetadataStyle.Render("Tell us who you are before browsing the multiverse.") + "\n\n")
	}

	field := func(i int, label, name string) {
		style := styles.BlurredFieldStyle
		if m.focus == i {
			style = styles.FocusedFieldStyle
		}
		content := styles.SubtitleStyle.Render(label) + "\n" + m.inputs[i].View()
		if msg := m.errors[name]; msg != "" {
			content += "\n" + styles.ErrorStyle.Render(msg)
		}
		b.WriteString(style.Render(content) + "\n\n")
	}

	field(usernameField, "Username", "username")
	field(jobTitleField, "Job title", "jobTitle")

	help := "tab switch field • enter save"
	if m.editing {
		help += " • esc cancel"
	} else {
		help += " • ctrl+c quit"
	}
	b.WriteString(styles.HelpStyle.Render(help))

	return styles.PopupStyle.Render(b.String())
}
