// Package config holds the exhibit settings and loads them from TOML.
package config

import (
	"bytes"
	"fmt"
	"log/slog"
	"logosphere/internal/layout"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full exhibit configuration. Empty paths select the
// embedded assets.
type Config struct {
	Lexicon string `toml:"lexicon"`
	Models  string `toml:"models"`
	// Words overrides the token list; by default every lexicon row is used.
	Words []string `toml:"words"`
	// Seed fixes the random source; 0 picks one from the clock.
	Seed int64 `toml:"seed"`
	FPS  int   `toml:"fps"`

	CellWidth  float64 `toml:"cell_width"`
	CellHeight float64 `toml:"cell_height"`

	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"`

	Layout layout.Config `toml:"layout"`
	Audio  Audio         `toml:"audio"`
}

// Audio controls the sentence chimes.
type Audio struct {
	Enabled bool `toml:"enabled"`
	// Volume is a base-2 gain: 0 is unchanged, -1 is half.
	Volume float64 `toml:"volume"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		FPS:        30,
		CellWidth:  8,
		CellHeight: 16,
		LogLevel:   "info",
		Layout:     layout.DefaultConfig(),
		Audio:      Audio{Enabled: true, Volume: -2},
	}
}

// Load reads path over the defaults. Keys absent from the file keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range 1-240", c.FPS)
	}
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		return fmt.Errorf("cell size %gx%g must be positive", c.CellWidth, c.CellHeight)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.Layout.PlacementAttempts < 1 {
		return fmt.Errorf("layout.placement_attempts must be at least 1")
	}
	if c.Layout.ClusterMax < c.Layout.ClusterMin {
		return fmt.Errorf("layout.cluster_max below cluster_min")
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("log_level: %w", err)
	}
	return l, nil
}

// FrameInterval returns the time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
