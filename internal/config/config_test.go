package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 200, cfg.Scene.Explosion.Count)
	assert.Equal(t, 0.8, cfg.Scene.Wall.Z)
	assert.Equal(t, 0.01, cfg.Scene.Clock.DeltaTime)
}

func TestLoadTOML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scene.toml", `
seed = 42

[audio]
enabled = false

[scene.explosion]
power = 50.0
count = 10
gravitation = [0.0, -1.0, 0.0]

[scene.wall]
z = 1.5
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.8, cfg.Audio.Volume)
	assert.Equal(t, 50.0, cfg.Scene.Explosion.Power)
	assert.Equal(t, 10, cfg.Scene.Explosion.Count)
	assert.Equal(t, mgl64.Vec3{0, -1, 0}, cfg.Scene.Explosion.Gravitation)
	assert.Equal(t, 1.5, cfg.Scene.Wall.Z)
	// Untouched keys keep their defaults.
	assert.Equal(t, 2.0, cfg.Scene.Wall.Size)
	assert.Equal(t, 1024, cfg.Window.Width)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scene.yaml", `
window:
  width: 640
  height: 480
scene:
  light:
    intensity: 0.5
    spot: true
  clock:
    delta_time: 0.02
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 0.5, cfg.Scene.Light.Intensity)
	assert.True(t, cfg.Scene.Light.Spot)
	assert.Equal(t, 0.02, cfg.Scene.Clock.DeltaTime)
	assert.Equal(t, 15.0, cfg.Scene.Light.SpotLight.Cutoff)
}

func TestLoadEmptyYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "scene.yml", "")
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load(writeFile(t, dir, "scene.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeFile(t, dir, "bad.toml", "[scene.clock]\ndelta_time = 0.0\n"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = Load(writeFile(t, dir, "unknown.toml", "bogus = 1\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, dir, "unknown.yaml", "bogus: 1\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"window", func(c *Config) { c.Window.Width = 0 }},
		{"volume", func(c *Config) { c.Audio.Volume = 2 }},
		{"count", func(c *Config) { c.Scene.Explosion.Count = 0 }},
		{"power", func(c *Config) { c.Scene.Explosion.Power = -1 }},
		{"attenuation", func(c *Config) { c.Scene.Explosion.Attenuation = 1 }},
		{"wall size", func(c *Config) { c.Scene.Wall.Size = 0 }},
		{"wall detailing", func(c *Config) { c.Scene.Wall.Coarse = 0 }},
		{"sphere detailing", func(c *Config) { c.Scene.Sphere.Detailing = 2 }},
		{"clip planes", func(c *Config) { c.Scene.View.ZFar = c.Scene.View.ZNear }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestEncodeRoundTripsDefaults(t *testing.T) {
	for _, ext := range []string{".toml", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			data, err := Encode(Default(), ext)
			require.NoError(t, err)
			cfg := Config{}
			require.NoError(t, Decode(&cfg, data, ext))
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Default()
	t.Setenv(SeedEnv, "")
	assert.Equal(t, uint64(9), cfg.ResolveSeed(9))

	cfg.Seed = 5
	assert.Equal(t, uint64(5), cfg.ResolveSeed(9))

	t.Setenv(SeedEnv, "77")
	assert.Equal(t, uint64(77), cfg.ResolveSeed(9))

	t.Setenv(SeedEnv, "not-a-number")
	assert.Equal(t, uint64(5), cfg.ResolveSeed(9))
}

func TestWatcherReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "scene.toml", "[scene.light]\nintensity = 0.3\n")

	w, err := NewWatcher(p, nil)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	// Unrelated files in the same directory are ignored.
	writeFile(t, dir, "other.toml", "x = 1\n")
	writeFile(t, dir, "scene.toml", "[scene.light]\nintensity = 0.9\n")

	// Truncation can surface as its own write event, so wait for the final content.
	deadline := time.After(5 * time.Second)
wait:
	for {
		select {
		case cfg := <-w.Updates():
			if cfg.Scene.Light.Intensity == 0.9 {
				break wait
			}
		case <-deadline:
			t.Fatal("no reload after write")
		}
	}

	cancel()
	require.Eventually(t, func() bool {
		select {
		case _, ok := <-w.Updates():
			return !ok
		default:
			return false
		}
	}, 5*time.Second, 10*time.Millisecond)
}
