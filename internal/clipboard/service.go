package clipboard

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/justchokingaround/morty/internal/config"
)

// CopiedMsg reports the outcome of a copy
type CopiedMsg struct {
	Text string
	Err  error
}

// Service copies text to the system clipboard
type Service interface {
	// Copy returns a command that copies text and reports a CopiedMsg
	Copy(text string) tea.Cmd
}

type clipboardService struct {
	command  string
	writeAll func(string) error
	logger   *slog.Logger
}

// NewService creates a clipboard service. A configured command takes precedence
// over the system clipboard.
func NewService(cfg *config.ClipboardConfig, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &clipboardService{
		writeAll: clipboard.WriteAll,
		logger:   logger,
	}
	if cfg != nil {
		s.command = cfg.Command
	}
	return s
}

func (s *clipboardService) Copy(text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Text: text, Err: s.copy(text)}
	}
}

func (s *clipboardService) copy(text string) error {
	if s.command != "" {
		return s.copyWithCommand(text, s.command)
	}

	err := s.writeAll(text)
	if err == nil {
		s.logger.Debug("copied to clipboard", "text_length", len(text))
		return nil
	}
	s.logger.Warn("failed to copy using system clipboard, trying fallback", "error", err)

	parts := defaultCommand(isWSL())
	if parts == nil {
		return fmt.Errorf("clipboard not supported on %s: %w", runtime.GOOS, err)
	}
	return s.run(text, parts)
}

func (s *clipboardService) copyWithCommand(text, command string) error {
	parts := parseCommand(command)
	if len(parts) == 0 {
		return fmt.Errorf("invalid clipboard command: %q", command)
	}
	return s.run(text, parts)
}

func (s *clipboardService) run(text string, parts []string) error {
	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(text)

	if err := cmd.Run(); err != nil {
		s.logger.Error("clipboard command failed", "command", parts[0], "error", err)
		return fmt.Errorf("clipboard command %s failed: %w", parts[0], err)
	}
	s.logger.Debug("copied to clipboard", "command", parts[0], "text_length", len(text))
	return nil
}

// defaultCommand picks the platform clipboard utility, or nil when there is none
func defaultCommand(wsl bool) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{"clip.exe"}
	case "darwin":
		return []string{"pbcopy"}
	case "linux":
		if wsl {
			return []string{"clip.exe"}
		}
		switch {
		case commandExists("wl-copy"):
			return []string{"wl-copy"}
		case commandExists("xclip"):
			return []string{"xclip", "-selection", "clipboard"}
		case commandExists("xsel"):
			return []string{"xsel", "--clipboard", "--input"}
		}
	}
	return nil
}

// parseCommand splits a command string into arguments, respecting quotes
func parseCommand(command string) []string {
	var parts []string
	var current strings.Builder
	var inQuotes bool
	var quoteChar rune

	for _, char := range command {
		switch {
		case char == '\'' || char == '"':
			if !inQuotes {
				inQuotes = true
				quoteChar = char
			} else if char == quoteChar {
				inQuotes = false
			} else {
				current.WriteRune(char)
			}
		case char == ' ' && !inQuotes:
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// isWSL reports whether we run inside Windows Subsystem for Linux
func isWSL() bool {
	data, err := os.ReadFile("/proc/version")
	if err != nil {
		return false
	}
	version := strings.ToLower(string(data))
	return strings.Contains(version, "microsoft") || strings.Contains(version, "wsl")
}

func commandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}
