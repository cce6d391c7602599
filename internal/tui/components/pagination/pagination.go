package pagination

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/tui/styles"
)

const (
	prevArrow = "‹"
	nextArrow = "›"
	ellipsis  = "…"
)

var (
	pageStyle     = lipgloss.NewStyle().Foreground(styles.OxocarbonBase04)
	currentStyle  = lipgloss.NewStyle().Foreground(styles.OxocarbonWhite).Background(styles.OxocarbonPurple).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(styles.OxocarbonBase02)
	arrowStyle    = lipgloss.NewStyle().Foreground(styles.OxocarbonPurple).Bold(true)
)

// Text renders w without styling, the current page in brackets.
// Example: ‹ 1 … 19 [20] 21 … 42 ›
func Text(w browse.Window) string {
	parts := make([]string, 0, len(w.Items)+2)
	parts = append(parts, prevArrow)
	for _, item := range w.Items {
		switch {
		case item.Ellipsis:
			parts = append(parts, ellipsis)
		case item.Number == w.Current:
			parts = append(parts, fmt.Sprintf("[%d]", item.Number))
		default:
			parts = append(parts, fmt.Sprint(item.Number))
		}
	}
	parts = append(parts, nextArrow)
	return strings.Join(parts, " ")
}

// View renders the styled pagination bar
func View(w browse.Window) string {
	arrow := func(s string, enabled bool) string {
		if enabled {
			return arrowStyle.Render(s)
		}
		return disabledStyle.Render(s)
	}

	parts := make([]string, 0, len(w.Items)+2)
	parts = append(parts, arrow(prevArrow, w.HasPrev))
	for _, item := range w.Items {
		switch {
		case item.Ellipsis:
			parts = append(parts, disabledStyle.Render(ellipsis))
		case item.Number == w.Current:
			parts = append(parts, currentStyle.Render(fmt.Sprintf(" %d ", item.Number)))
		default:
			parts = append(parts, pageStyle.Render(fmt.Sprint(item.Number)))
		}
	}
	parts = append(parts, arrow(nextArrow, w.HasNext))

	summary := styles.HelpStyle.Render(fmt.Sprintf("  page %d of %d", w.Current, w.Total))
	return strings.Join(parts, " ") + summary
}
