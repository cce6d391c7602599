package pagination

import (
	"flag"
	"os"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/tui/tuitest"
)

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(m.Run())
}

func TestText(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		current int
	}{
		{"single_page", 1, 1},
		{"all_pages", 5, 2},
		{"first_page", 42, 1},
		{"middle_page", 42, 20},
		{"last_page", 42, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tuitest.AssertSnapshot(t, Text(browse.DerivePagination(tt.total, tt.current)))
		})
	}
}

func TestView(t *testing.T) {
	view := ansi.Strip(View(browse.DerivePagination(42, 20)))

	assert.Contains(t, view, "‹ 1 … 19  20  21 … 42 ›")
	assert.Contains(t, view, "page 20 of 42")
}
