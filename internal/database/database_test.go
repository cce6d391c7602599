package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justchokingaround/morty/internal/config"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(&config.DatabaseConfig{Path: ":memory:", MaxConnections: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen(t *testing.T) {
	t.Run("creates file database with migrations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "morty.db")
		db, err := Open(&config.DatabaseConfig{Path: path, MaxConnections: 2, WALMode: true})
		require.NoError(t, err)
		defer func() { _ = Close(db) }()

		var count int64
		require.NoError(t, db.Table("schema_migrations").Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("reopening does not reapply migrations", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "morty.db")
		for i := 0; i < 2; i++ {
			db, err := Open(&config.DatabaseConfig{Path: path, MaxConnections: 1})
			require.NoError(t, err)
			require.NoError(t, Close(db))
		}
	})
}

func TestSettings(t *testing.T) {
	db := openTestDB(t)

	_, found, err := GetSetting(db, "missing")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetSetting(db, "k", "one"))
	require.NoError(t, SetSetting(db, "k", "two"))

	value, found, err := GetSetting(db, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "two", value)

	require.NoError(t, DeleteSetting(db, "k"))
	require.NoError(t, DeleteSetting(db, "k"))

	_, found, err = GetSetting(db, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestExtractMigrationName(t *testing.T) {
	assert.Equal(t, "20251019", extractMigrationName("20251019_settings_updated_at.sql"))
	assert.Equal(t, "notes.sql", extractMigrationName("notes.sql"))
}

func TestClose_Nil(t *testing.T) {
	assert.NoError(t, Close(nil))
}
