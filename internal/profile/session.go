package profile

import (
	"fmt"
	"log/slog"
)

// Session is the current user context. It is created once at startup and
// passed explicitly to whatever needs the profile.
type Session struct {
	store   Store
	current *Profile
	logger  *slog.Logger
}

// Open loads the stored profile into a new session
func Open(store Store, logger *slog.Logger) (*Session, error) {
	if logger == nil {
		logger = slog.Default()
	}
	p, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}
	return &Session{store: store, current: p, logger: logger}, nil
}

// Current returns the profile of the session
func (s *Session) Current() (Profile, bool) {
	if s.current == nil {
		return Profile{}, false
	}
	return *s.current, true
}

// Authenticated reports whether a profile exists
func (s *Session) Authenticated() bool {
	return s.current != nil
}

// Save validates and stores p, replacing the whole profile
func (s *Session) Save(p Profile) error {
	p, err := New(p.Username, p.JobTitle)
	if err != nil {
		return err
	}
	if err := s.store.Save(p); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	s.current = &p
	s.logger.Info("profile saved", "username", p.Username)
	return nil
}

// Clear logs out by deleting the profile
func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	s.current = nil
	s.logger.Info("profile cleared")
	return nil
}

// LastPath returns the path to resume browsing from, or "" when unknown
func (s *Session) LastPath() string {
	path, err := s.store.LastPath()
	if err != nil {
		s.logger.Warn("failed to load last path", "error", err)
		return ""
	}
	return path
}

// RememberPath stores path as the resume point
func (s *Session) RememberPath(path string) error {
	if err := s.store.SaveLastPath(path); err != nil {
		return fmt.Errorf("failed to save last path: %w", err)
	}
	return nil
}
