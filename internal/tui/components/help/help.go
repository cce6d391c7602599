package help

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/morty/internal/tui/styles"
)

// Section is a titled group of key bindings
type Section struct {
	Title    string
	Bindings []key.Binding
}

// Model represents the help panel state
type Model struct {
	sections     []Section
	width        int
	height       int
	visible      bool
	scrollOffset int // Scroll position for help content
}

// New creates a new help model
func New() Model {
	return Model{}
}

// SetSections replaces the bindings shown by the panel
func (m *Model) SetSections(sections ...Section) {
	m.sections = sections
}

// SetSize sets the terminal size used for layout
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		// less-style navigation
		switch msg.String() {
		case "esc", "?", "q":
			m.Hide()
		case "up", "k":
			if m.scrollOffset > 0 {
				m.scrollOffset--
			}
		case "down", "j":
			m.scrollOffset++
		case "d", "ctrl+d":
			m.scrollOffset += 10
		case "u", "ctrl+u":
			m.scrollOffset = max(0, m.scrollOffset-10)
		case "home", "g":
			m.scrollOffset = 0
		case "end", "G":
			m.scrollOffset = 999999 // clamped in View
		}
	}
	return m, nil
}

// View renders the help panel
func (m Model) View() string {
	if !m.visible || m.width == 0 || m.height == 0 {
		return ""
	}

	var content strings.Builder
	content.WriteString(styles.HelpStyle.Render("↑/↓ j/k scroll • d/u half page • g/G top/bottom • esc/? close"))
	content.WriteString("\n")

	for i, section := range m.sections {
		if i > 0 {
			content.WriteString("\n")
		}
		content.WriteString(styles.HeaderStyle.Render(section.Title))
		content.WriteString("\n")
		for _, b := range section.Bindings {
			if !b.Enabled() {
				continue
			}
			content.WriteString(renderBinding(b))
			content.WriteString("\n")
		}
	}

	contentLines := strings.Split(strings.TrimRight(content.String(), "\n"), "\n")

	// terminal height minus border, padding and title
	availableHeight := max(m.height-6, 10)

	totalLines := len(contentLines)
	offset := min(m.scrollOffset, totalLines-availableHeight)
	offset = max(offset, 0)
	end := min(offset+availableHeight, totalLines)

	scrollInfo := ""
	if totalLines > availableHeight {
		scrollInfo = fmt.Sprintf(" (%d-%d/%d)", offset+1, end, totalLines)
	}

	boxWidth := 56
	if m.width < boxWidth+4 {
		boxWidth = max(m.width-4, 40)
	}

	titleBar := lipgloss.NewStyle().
		Foreground(styles.OxocarbonWhite).
		Background(styles.OxocarbonPurple).
		Padding(0, 2).
		Bold(true).
		Width(boxWidth - 4).
		Align(lipgloss.Center).
		Render("KEYBOARD SHORTCUTS" + scrollInfo)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OxocarbonPurple).
		Padding(0, 2).
		Width(boxWidth).
		Render(titleBar + "\n\n" + strings.Join(contentLines[offset:end], "\n"))

	if lipgloss.Height(box) >= m.height {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func renderBinding(b key.Binding) string {
	keyStyle := lipgloss.NewStyle().
		Foreground(styles.OxocarbonPurple).
		Bold(true).
		Width(14)

	h := b.Help()
	return "  " + keyStyle.Render(h.Key) + styles.MetadataStyle.Render(h.Desc)
}

// Toggle toggles the visibility of the help panel
func (m *Model) Toggle() {
	if m.visible {
		m.Hide()
	} else {
		m.Show()
	}
}

// Show shows the help panel
func (m *Model) Show() {
	m.visible = true
	m.scrollOffset = 0
}

// Hide hides the help panel
func (m *Model) Hide() {
	m.visible = false
	m.scrollOffset = 0
}

// IsVisible returns whether the help panel is visible
func (m Model) IsVisible() bool {
	return m.visible
}
