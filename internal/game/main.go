package game

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"explode/internal/audio"
	"explode/internal/config"
	"explode/internal/scene"
)

// Explosion power and particle count that map to the deepest, densest boom.
const (
	boomReferencePower = 200.0
	boomReferenceCount = 200.0
)

type Options struct {
	Seed       uint64
	Mute       bool
	ConfigPath string // watched for live edits when set
	Log        *slog.Logger
}

// RunDesktop opens the window and runs the display/idle/input loop until the
// window closes or ctx is cancelled.
func RunDesktop(ctx context.Context, cfg config.Config, opts Options) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	log := opts.Log
	if log == nil {
		log = slog.Default()
	}

	window, err := initWindow(cfg.Window)
	if err != nil {
		return err
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}
	log.Info("gl context", "version", gl.GoStr(gl.GetString(gl.VERSION)), "renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	var snd *audio.System
	if cfg.Audio.Enabled && !opts.Mute {
		if snd, err = audio.New(cfg.Audio.Volume); err != nil {
			log.Warn("audio init failed (continuing without sound)", "err", err)
			snd = nil
		}
	}

	bus := scene.NewEventBus()
	bus.Subscribe(scene.EventExploded, func(e scene.Event) {
		log.Info("explosion", "time", e.Time, "power", e.Power, "particles", e.Count, "origin", e.Position)
		snd.PlayExplosion(e.Power/boomReferencePower, float64(e.Count)/boomReferenceCount)
	})
	bus.Subscribe(scene.EventReset, func(scene.Event) {
		log.Info("scene reset")
		snd.PlayClick()
	})
	bus.Subscribe(scene.EventPaused, func(e scene.Event) {
		log.Info("paused", "time", e.Time)
		window.SetTitle(cfg.Window.Title + " (paused)")
	})
	bus.Subscribe(scene.EventResumed, func(e scene.Event) {
		log.Info("resumed", "time", e.Time)
		window.SetTitle(cfg.Window.Title)
	})
	bus.Subscribe(scene.EventSettingsReloaded, func(scene.Event) {
		log.Info("live settings applied")
	})

	sc := scene.New(cfg.Scene, opts.Seed, bus)
	rend := NewRenderer(scene.ColorSmoke)
	rend.Setup()
	sc.Init(rend)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var updates <-chan config.Config
	if opts.ConfigPath != "" {
		w, err := config.NewWatcher(opts.ConfigPath, log)
		if err != nil {
			log.Warn("config watch disabled", "err", err)
		} else {
			go w.Run(ctx)
			updates = w.Updates()
		}
	}

	input := NewInput()
	log.Info("scene running", "seed", opts.Seed, "particles", cfg.Scene.Explosion.Count)

	for !window.ShouldClose() {
		if ctx.Err() != nil {
			window.SetShouldClose(true)
			continue
		}
		glfw.PollEvents()

		// Input callback.
		for _, a := range input.Actions(window) {
			if !sc.Apply(a) {
				window.SetShouldClose(true)
			}
		}

		select {
		case next, ok := <-updates:
			if !ok {
				updates = nil
				break
			}
			sc.ApplyLive(next.Scene)
		default:
		}

		// Idle callback.
		sc.Tick()

		// Display callback.
		fbW, fbH := window.GetFramebufferSize()
		if fbW <= 0 || fbH <= 0 {
			continue
		}
		rend.Viewport(fbW, fbH)
		sc.Frame(rend, float64(fbW)/float64(fbH))
		window.SwapBuffers()
	}
	return nil
}
