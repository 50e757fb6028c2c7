// Package config loads the scene configuration from TOML or YAML files and
// watches the file for edits.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"explode/internal/scene"
)

// SeedEnv overrides the seed from the file when set.
const SeedEnv = "EXPLODE_SEED"

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Window struct {
	Width  int    `toml:"width" yaml:"width"`
	Height int    `toml:"height" yaml:"height"`
	Title  string `toml:"title" yaml:"title"`
	VSync  bool   `toml:"vsync" yaml:"vsync"`
}

type Audio struct {
	Enabled bool    `toml:"enabled" yaml:"enabled"`
	Volume  float64 `toml:"volume" yaml:"volume"`
}

type Config struct {
	Seed   uint64         `toml:"seed" yaml:"seed"` // 0 = seed from the clock
	Window Window         `toml:"window" yaml:"window"`
	Audio  Audio          `toml:"audio" yaml:"audio"`
	Scene  scene.Settings `toml:"scene" yaml:"scene"`
}

func Default() Config {
	return Config{
		Window: Window{Width: 1024, Height: 768, Title: "Lighting", VSync: true},
		Audio:  Audio{Enabled: true, Volume: 0.8},
		Scene:  scene.DefaultSettings(),
	}
}

// Load reads path over the defaults. The format follows the extension:
// .toml, or .yaml/.yml.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(&cfg, data, filepath.Ext(path)); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Decode unmarshals data into cfg; fields missing from data keep their values.
func Decode(cfg *Config, data []byte, ext string) error {
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(cfg); err != nil {
			return fmt.Errorf("decode toml: %w", err)
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("decode yaml: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return nil
}

// Encode renders cfg in the format picked by ext.
func Encode(cfg Config, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".toml":
		return toml.Marshal(cfg)
	case ".yaml", ".yml":
		return yaml.Marshal(cfg)
	}
	return nil, fmt.Errorf("unsupported config format %q", ext)
}

func (c Config) Validate() error {
	s := c.Scene
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalid, c.Audio.Volume)
	case s.Clock.DeltaTime <= 0:
		return fmt.Errorf("%w: clock delta_time must be positive", ErrInvalid)
	case s.Explosion.Count <= 0:
		return fmt.Errorf("%w: explosion count must be positive", ErrInvalid)
	case s.Explosion.Power < 0:
		return fmt.Errorf("%w: explosion power must not be negative", ErrInvalid)
	case s.Explosion.Attenuation < 0 || s.Explosion.Attenuation >= 1:
		return fmt.Errorf("%w: explosion attenuation %v outside [0,1)", ErrInvalid, s.Explosion.Attenuation)
	case s.Wall.Size <= 0:
		return fmt.Errorf("%w: wall size must be positive", ErrInvalid)
	case s.Wall.Detailing <= 0 || s.Wall.Coarse <= 0:
		return fmt.Errorf("%w: wall detailing must be positive", ErrInvalid)
	case s.Sphere.Detailing < 3 || s.Explosion.ShapeDetail < 3:
		return fmt.Errorf("%w: sphere detailing must be at least 3", ErrInvalid)
	case s.View.ZNear <= 0 || s.View.ZFar <= s.View.ZNear:
		return fmt.Errorf("%w: clip planes near=%v far=%v", ErrInvalid, s.View.ZNear, s.View.ZFar)
	}
	return nil
}

// ResolveSeed picks the simulation seed: SeedEnv, then the file, then fallback.
func (c Config) ResolveSeed(fallback uint64) uint64 {
	if v := os.Getenv(SeedEnv); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			return n
		}
	}
	if c.Seed != 0 {
		return c.Seed
	}
	return fallback
}
