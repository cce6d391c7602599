package profile

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/justchokingaround/morty/internal/database"
)

const (
	profileSettingKey  = "user_profile"
	lastPathSettingKey = "last_path"
)

// Store persists the profile and the resume path
type Store interface {
	Load() (*Profile, error)
	Save(p Profile) error
	Clear() error
	LastPath() (string, error)
	SaveLastPath(path string) error
}

// SettingsStore keeps the profile as JSON in the settings table
type SettingsStore struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSettingsStore creates a store on db
func NewSettingsStore(db *gorm.DB, logger *slog.Logger) *SettingsStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SettingsStore{db: db, logger: logger}
}

// Load returns the stored profile, or nil when there is none.
// Unreadable or invalid content is discarded and treated as no profile.
func (s *SettingsStore) Load() (*Profile, error) {
	value, found, err := database.GetSetting(s.db, profileSettingKey)
	if err != nil {
		return nil, err
	}
	if !found || value == "" {
		return nil, nil
	}

	var p Profile
	if err := json.Unmarshal([]byte(value), &p); err != nil {
		s.discard("malformed profile", err)
		return nil, nil
	}
	if err := p.Validate(); err != nil {
		s.discard("invalid profile", err)
		return nil, nil
	}

	return &p, nil
}

func (s *SettingsStore) discard(reason string, cause error) {
	s.logger.Warn("discarding stored profile", "reason", reason, "error", cause)
	if err := database.DeleteSetting(s.db, profileSettingKey); err != nil {
		s.logger.Warn("failed to delete stored profile", "error", err)
	}
}

// Save replaces the stored profile
func (s *SettingsStore) Save(p Profile) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal profile: %w", err)
	}
	return database.SetSetting(s.db, profileSettingKey, string(data))
}

// Clear deletes the stored profile
func (s *SettingsStore) Clear() error {
	return database.DeleteSetting(s.db, profileSettingKey)
}

// LastPath returns the last visited browse path, or "" when none was saved
func (s *SettingsStore) LastPath() (string, error) {
	value, _, err := database.GetSetting(s.db, lastPathSettingKey)
	return value, err
}

// SaveLastPath stores the browse path to resume from
func (s *SettingsStore) SaveLastPath(path string) error {
	return database.SetSetting(s.db, lastPathSettingKey, path)
}
