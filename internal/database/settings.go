package database

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// GetSetting returns the value stored under key. found is false when the key is absent.
func GetSetting(db *gorm.DB, key string) (value string, found bool, err error) {
	var setting Setting
	err = db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to load setting %s: %w", key, err)
	}
	return setting.Value, true, nil
}

// SetSetting upserts value under key
func SetSetting(db *gorm.DB, key, value string) error {
	err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to save setting %s: %w", key, err)
	}
	return nil
}

// DeleteSetting removes key. Deleting a missing key is not an error.
func DeleteSetting(db *gorm.DB, key string) error {
	if err := db.Where("key = ?", key).Delete(&Setting{}).Error; err != nil {
		return fmt.Errorf("failed to delete setting %s: %w", key, err)
	}
	return nil
}
