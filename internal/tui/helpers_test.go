package tui

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/justchokingaround/morty/internal/api"
	"github.com/justchokingaround/morty/internal/clipboard"
	"github.com/justchokingaround/morty/internal/config"
	"github.com/justchokingaround/morty/internal/database"
	"github.com/justchokingaround/morty/internal/profile"
)

type fakeFetcher struct {
	mu       sync.Mutex
	requests []api.Request

	totalPages int
	perPage    int
	err        error
}

func (f *fakeFetcher) Characters(_ context.Context, req api.Request) (*api.CharacterPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}

	items := make([]api.Character, 0, f.perPage)
	for i := 0; i < f.perPage; i++ {
		id := fmt.Sprint((req.Page-1)*f.perPage + i + 1)
		items = append(items, api.Character{
			ID:      id,
			Name:    "Character " + id,
			Status:  api.StatusAlive,
			Species: "Human",
			Image:   "https://rickandmortyapi.com/api/character/avatar/" + id + ".jpeg",
		})
	}
	return &api.CharacterPage{
		Page:  req.Page,
		Items: items,
		Pagination: &api.PaginationInfo{
			TotalCount: f.perPage * f.totalPages,
			TotalPages: f.totalPages,
		},
	}, nil
}

func (f *fakeFetcher) Character(_ context.Context, id string) (*api.CharacterDetail, error) {
	return &api.CharacterDetail{
		Character: api.Character{ID: id, Name: "Character " + id, Status: api.StatusAlive},
		Episodes:  []api.Episode{{ID: "1", Name: "Pilot", Code: "S01E01"}},
	}, nil
}

func (f *fakeFetcher) lastRequest() api.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

type stubClipboard struct {
	copied []string
}

func (s *stubClipboard) Copy(text string) tea.Cmd {
	s.copied = append(s.copied, text)
	return func() tea.Msg { return clipboard.CopiedMsg{Text: text} }
}

type testApp struct {
	*App
	fake   *fakeFetcher
	sess   *profile.Session
	clip   *stubClipboard
	opened []string
}

func newTestApp(t *testing.T, withProfile bool) *testApp {
	t.Helper()

	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", MaxConnections: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	store := profile.NewSettingsStore(db, nil)
	if withProfile {
		require.NoError(t, store.Save(profile.Profile{Username: "rick", JobTitle: "Scientist"}))
	}
	session, err := profile.Open(store, nil)
	require.NoError(t, err)

	ta := &testApp{
		fake: &fakeFetcher{totalPages: 3, perPage: 20},
		sess: session,
		clip: &stubClipboard{},
	}
	ta.App = NewApp(Options{
		Fetcher:   ta.fake,
		Session:   session,
		Clipboard: ta.clip,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		StartPath: "/information/1",
		OpenURL: func(url string) error {
			ta.opened = append(ta.opened, url)
			return nil
		},
	})
	ta.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return ta
}

// exec runs cmd and the commands it batches. Commands that do not finish
// promptly are timers or cursor blinks and are dropped.
func exec(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, exec(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// send feeds msgs to the app and batches the follow-up commands
func (ta *testApp) send(msgs ...tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		_, cmd := ta.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// settle runs cmd and feeds its messages back until nothing is left
func (ta *testApp) settle(cmd tea.Cmd) {
	for i := 0; cmd != nil && i < 10; i++ {
		cmd = ta.send(exec(cmd)...)
	}
}

func (ta *testApp) press(keys ...string) {
	for _, k := range keys {
		ta.settle(ta.send(keyMsg(k)))
	}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "backspace":
		return tea.KeyMsg{Type: tea.KeyBackspace}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}
