// logosphere runs the logographic-language exhibit in the terminal. Build:
//
//	go build -o logosphere .
//
// Usage:
//
//	./logosphere [-config logosphere.toml] [-seed 42] [-mute]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"logosphere/internal/audio"
	"logosphere/internal/config"
	"logosphere/internal/exhibit"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to a TOML config file (defaults when empty)")
	seed := flag.Int64("seed", 0, "Random seed; overrides the config file when non-zero")
	mute := flag.Bool("mute", false, "Disable the sentence chimes")
	flag.Parse()

	if err := run(*configPath, *seed, *mute); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed int64, mute bool) error {
	cfg, err := loadConfig(configPath, seed, mute)
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	content, err := exhibit.LoadContent(cfg)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	x := exhibit.New(screen, cfg, content, log)
	if cfg.Audio.Enabled {
		chimes := audio.New(cfg.Audio.Volume, log)
		if err := chimes.Start(); err != nil {
			log.Warn("audio unavailable", "err", err)
		} else {
			defer chimes.Close()
			x.Subscribe(chimes.Handle)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := x.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// loadConfig reads path (or the defaults) and applies the flag overrides.
func loadConfig(path string, seed int64, mute bool) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger opens the configured log file. The terminal belongs to the
// exhibit, so with no file the log is discarded.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogFile == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, func() { f.Close() }, nil
}
