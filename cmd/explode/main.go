// Command explode runs the particle explosion scene: a blue sphere shrinks
// until it bursts into particles that bounce off the walls.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"explode/internal/config"
	"explode/internal/game"
)

func main() {
	var (
		configPath = flag.String("config", "", "TOML or YAML config file (watched for live edits)")
		seed       = flag.Uint64("seed", 0, "explosion seed; overrides "+config.SeedEnv+" and the config file")
		verbose    = flag.Bool("v", false, "debug logging")
		mute       = flag.Bool("mute", false, "disable sound")
		width      = flag.Int("width", 0, "window width (0 = config)")
		height     = flag.Int("height", 0, "window height (0 = config)")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(*configPath, *seed, *mute, *width, *height, log); err != nil {
		log.Error("exit", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, seed uint64, mute bool, width, height int, log *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if seed == 0 {
		seed = cfg.ResolveSeed(uint64(time.Now().UnixNano()))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := game.RunDesktop(ctx, cfg, game.Options{
		Seed:       seed,
		Mute:       mute,
		ConfigPath: configPath,
		Log:        log,
	}); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
