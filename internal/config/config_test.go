package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "/information/1", cfg.Browse.StartPath)
	assert.True(t, cfg.Browse.Resume)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 4, cfg.Database.MaxConnections)
}

func TestLoad(t *testing.T) {
	t.Run("reads explicit file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "config.yaml")
		content := "api:\n  endpoint: http://localhost:9999/graphql\n  timeout: 5s\nlogging:\n  level: debug\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, v, err := Load(path)
		require.NoError(t, err)
		require.NotNil(t, v)

		assert.Equal(t, "http://localhost:9999/graphql", cfg.API.Endpoint)
		assert.Equal(t, 5*time.Second, cfg.API.Timeout)
		assert.Equal(t, "debug", cfg.Logging.Level)
		// untouched keys keep their defaults
		assert.Equal(t, "morty/1.0", cfg.API.UserAgent)
	})

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.Error(t, err)
	})

	t.Run("missing default file falls back to defaults", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())

		cfg, _, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultEndpoint, cfg.API.Endpoint)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", t.TempDir())
		t.Setenv("MORTY_API_ENDPOINT", "http://env.example/graphql")

		cfg, _, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "http://env.example/graphql", cfg.API.Endpoint)
	})

	t.Run("rejects empty endpoint", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api:\n  endpoint: \"\"\n"), 0644))

		_, _, err := Load(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "api.endpoint")
	})
}

func TestSaveDefaultConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, SaveDefaultConfig(path))

	cfg, _, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Default().API, cfg.API)
	assert.Equal(t, Default().Browse, cfg.Browse)
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestColoredTextHandler(t *testing.T) {
	var buf bytes.Buffer
	h := NewColoredTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	logger := slog.New(h).With("component", "test")

	logger.Debug("hidden")
	logger.Error("boom", "code", 7)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "\033[31m")
	assert.Contains(t, out, "component=test")
	assert.Contains(t, out, "code=7")
	assert.Equal(t, 1, strings.Count(out, "\n"))
}
