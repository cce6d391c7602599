package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"

	"github.com/justchokingaround/morty/internal/browse"
	"github.com/justchokingaround/morty/internal/clipboard"
	"github.com/justchokingaround/morty/internal/config"
	"github.com/justchokingaround/morty/internal/profile"
)

// Options are the dependencies of the TUI
type Options struct {
	Context   context.Context
	Fetcher   browse.Fetcher
	Session   *profile.Session
	Clipboard clipboard.Service
	Config    *config.Config
	Logger    *slog.Logger
	// StartPath is the first navigation path; defaults to browse.start_path
	StartPath string
	// OpenURL opens a link outside the terminal; defaults to the system browser
	OpenURL func(string) error
}

func (o Options) withDefaults() Options {
	if o.Context == nil {
		o.Context = context.Background()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	if o.Config == nil {
		o.Config = config.Default()
	}
	if o.StartPath == "" {
		o.StartPath = o.Config.Browse.StartPath
	}
	if o.Clipboard == nil {
		o.Clipboard = clipboard.NewService(&o.Config.Advanced.Clipboard, o.Logger)
	}
	if o.OpenURL == nil {
		// the browser helper echoes to stdout, which would draw over the UI
		browser.Stdout = io.Discard
		browser.Stderr = io.Discard
		o.OpenURL = browser.OpenURL
	}
	return o
}

// Start is the entry point for the TUI. It returns once the user quits.
func Start(opts Options) error {
	if opts.Fetcher == nil || opts.Session == nil {
		return errors.New("tui: fetcher and session are required")
	}

	app := NewApp(opts)
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(app.ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
