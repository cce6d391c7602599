package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/justchokingaround/morty/internal/config"
	"github.com/justchokingaround/morty/internal/database"
)

func newTestStore(t *testing.T) (*SettingsStore, *gorm.DB) {
	t.Helper()
	db, err := database.Open(&config.DatabaseConfig{Path: ":memory:", MaxConnections: 1})
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })
	return NewSettingsStore(db, nil), db
}

func TestSettingsStore(t *testing.T) {
	t.Run("empty store has no profile", func(t *testing.T) {
		store, _ := newTestStore(t)

		p, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("save load clear", func(t *testing.T) {
		store, db := newTestStore(t)

		require.NoError(t, store.Save(Profile{Username: "rick", JobTitle: "Scientist"}))

		raw, found, err := database.GetSetting(db, "user_profile")
		require.NoError(t, err)
		require.True(t, found)
		assert.JSONEq(t, `{"username":"rick","jobTitle":"Scientist"}`, raw)

		p, err := store.Load()
		require.NoError(t, err)
		require.NotNil(t, p)
		assert.Equal(t, Profile{Username: "rick", JobTitle: "Scientist"}, *p)

		require.NoError(t, store.Save(Profile{Username: "morty", JobTitle: "Student"}))
		p, err = store.Load()
		require.NoError(t, err)
		assert.Equal(t, "morty", p.Username)

		require.NoError(t, store.Clear())
		p, err = store.Load()
		require.NoError(t, err)
		assert.Nil(t, p)
	})

	t.Run("malformed content is discarded", func(t *testing.T) {
		store, db := newTestStore(t)
		require.NoError(t, database.SetSetting(db, "user_profile", "{not json"))

		p, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, p)

		_, found, err := database.GetSetting(db, "user_profile")
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("invalid profile is discarded", func(t *testing.T) {
		store, db := newTestStore(t)
		require.NoError(t, database.SetSetting(db, "user_profile", `{"username":"r","jobTitle":""}`))

		p, err := store.Load()
		require.NoError(t, err)
		assert.Nil(t, p)

		_, found, _ := database.GetSetting(db, "user_profile")
		assert.False(t, found)
	})

	t.Run("last path", func(t *testing.T) {
		store, _ := newTestStore(t)

		path, err := store.LastPath()
		require.NoError(t, err)
		assert.Empty(t, path)

		require.NoError(t, store.SaveLastPath("/information/4?status=Dead"))
		path, err = store.LastPath()
		require.NoError(t, err)
		assert.Equal(t, "/information/4?status=Dead", path)
	})
}
