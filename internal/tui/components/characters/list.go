package characters

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/tui/styles"
	"github.com/justchokingaround/morty/internal/tui/utils"
)

const (
	cursorMark = "▸ "
	statusDot  = "●"
	minNameCol = 12
	maxNameCol = 32
	kindCol    = 24
)

// Model is the scrollable character list
type Model struct {
	items  []api.Character
	cursor int
	offset int
	width  int
	height int
}

// New creates an empty list
func New() Model {
	return Model{}
}

// SetItems replaces the list content and resets the cursor
func (m *Model) SetItems(items []api.Character) {
	m.items = items
	m.cursor = 0
	m.offset = 0
}

// Items returns the listed characters
func (m Model) Items() []api.Character {
	return m.items
}

// SetSize sets the area the list may use
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.scroll()
}

// Cursor returns the highlighted index
func (m Model) Cursor() int {
	return m.cursor
}

// SetCursor moves the highlight, clamped to the list
func (m *Model) SetCursor(i int) {
	if len(m.items) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = max(0, min(i, len(m.items)-1))
	m.scroll()
}

// MoveUp moves the highlight up one row
func (m *Model) MoveUp() {
	m.SetCursor(m.cursor - 1)
}

// MoveDown moves the highlight down one row
func (m *Model) MoveDown() {
	m.SetCursor(m.cursor + 1)
}

// Highlighted returns the character under the cursor
func (m Model) Highlighted() (api.Character, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return api.Character{}, false
	}
	return m.items[m.cursor], true
}

func (m *Model) scroll() {
	rows := m.visibleRows()
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+rows {
		m.offset = m.cursor - rows + 1
	}
}

func (m Model) visibleRows() int {
	if m.height <= 0 {
		return len(m.items)
	}
	return m.height
}

// Row renders one character without styling, in columns fitted to width
func Row(c api.Character, width int) string {
	nameCol := max(minNameCol, min(maxNameCol, width/3))
	kind := c.Species
	if c.Type != "" {
		kind += " (" + c.Type + ")"
	}
	kind += " - " + c.Status

	row := utils.PadRight(c.Name, nameCol) + "  " + utils.PadRight(kind, kindCol) + "  " + c.Location.Name
	if width > 0 {
		row = utils.TruncateWithWidth(row, width)
	}
	return strings.TrimRight(row, " ")
}

// View renders the visible rows
func (m Model) View() string {
	if len(m.items) == 0 {
		return ""
	}

	rowWidth := m.width - 4
	end := min(len(m.items), m.offset+m.visibleRows())

	var b strings.Builder
	for i := m.offset; i < end; i++ {
		c := m.items[i]
		dot := lipgloss.NewStyle().Foreground(styles.StatusColor(c.Status)).Render(statusDot)
		text := Row(c, rowWidth)

		if i == m.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(cursorMark) + dot + " " + styles.SelectedItemStyle.UnsetPaddingLeft().Render(text))
		} else {
			b.WriteString(styles.NormalItemStyle.Render("  ") + dot + " " + styles.NormalItemStyle.UnsetPaddingLeft().Render(text))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
