package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logosphere.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, time.Second/30, cfg.FrameInterval())
	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
lexicon = "my.csv"
words = ["aun", "vel"]
seed = 42
fps = 60
log_level = "debug"

[layout]
min_distance = 30
cluster = false

[audio]
enabled = false
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "my.csv", cfg.Lexicon)
	assert.Equal(t, []string{"aun", "vel"}, cfg.Words)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 30.0, cfg.Layout.MinDistance)
	assert.False(t, cfg.Layout.Cluster)
	assert.False(t, cfg.Audio.Enabled)

	// Untouched keys keep their defaults.
	def := Default()
	assert.Equal(t, def.CellWidth, cfg.CellWidth)
	assert.Equal(t, def.Layout.SentenceLerp, cfg.Layout.SentenceLerp)
	assert.Equal(t, def.Audio.Volume, cfg.Audio.Volume)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"syntax", "fps = \n"},
		{"unknown key", "colour = \"red\"\n"},
		{"fps range", "fps = 0\n"},
		{"cell size", "cell_width = -1\n"},
		{"level", "log_level = \"loud\"\n"},
		{"attempts", "[layout]\nplacement_attempts = 0\n"},
		{"cluster range", "[layout]\ncluster_min = 200\ncluster_max = 100\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
