package detail

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/justchokingaround/morty/internal/api"
)

var morty = api.Character{
	ID:       "2",
	Name:     "Morty Smith",
	Status:   api.StatusAlive,
	Species:  "Human",
	Gender:   api.GenderMale,
	Origin:   api.Place{Name: "unknown"},
	Location: api.Place{Name: "Citadel of Ricks"},
	Image:    "https://rickandmortyapi.com/api/character/avatar/2.jpeg",
}

func TestRender_Pending(t *testing.T) {
	view := ansi.Strip(Render(Props{Character: morty, Pending: true, Index: 1, Total: 20, Width: 72}))

	assert.Contains(t, view, "Morty Smith")
	assert.Contains(t, view, "2/20")
	assert.Contains(t, view, "Citadel of Ricks")
	assert.Contains(t, view, "Loading episodes…")
}

func TestRender_WithEpisodes(t *testing.T) {
	detail := &api.CharacterDetail{
		Character: morty,
		Created:   time.Now().Add(-48 * time.Hour).Format(time.RFC3339),
	}
	for i := 1; i <= 12; i++ {
		detail.Episodes = append(detail.Episodes, api.Episode{ID: fmt.Sprint(i), Name: fmt.Sprintf("Episode %d", i), Code: fmt.Sprintf("S01E%02d", i)})
	}

	view := ansi.Strip(Render(Props{Character: morty, Detail: detail, Index: 0, Total: 1, Width: 72}))

	assert.Contains(t, view, "Episodes (12)")
	assert.Contains(t, view, "S01E01  Episode 1")
	assert.Contains(t, view, "S01E10  Episode 10")
	assert.NotContains(t, view, "S01E11")
	assert.Contains(t, view, "… and 2 more")
	assert.Contains(t, view, "2 days ago")
	assert.NotContains(t, view, "Loading episodes")
}

func TestRender_Error(t *testing.T) {
	view := ansi.Strip(Render(Props{Character: morty, Err: errors.New("GetCharacter failed: network error"), Total: 1}))

	assert.Contains(t, view, "Morty Smith", "base fields stay visible")
	assert.Contains(t, view, "Could not load episodes")
}
