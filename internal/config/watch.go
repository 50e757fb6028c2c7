package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it is written and publishes each
// valid result on Updates. Invalid edits are logged and skipped.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Config
	log     *slog.Logger
}

// NewWatcher watches the directory holding path, so editors that replace the
// file on save are still seen.
func NewWatcher(path string, log *slog.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch config: %w", err)
	}
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{
		path:    abs,
		watcher: fw,
		updates: make(chan Config, 1),
		log:     log,
	}, nil
}

// Updates delivers reloaded configs. Only the latest pending one is kept.
func (w *Watcher) Updates() <-chan Config { return w.updates }

// Run processes file events until ctx is done, then closes Updates.
func (w *Watcher) Run(ctx context.Context) {
	defer close(w.updates)
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			cfg, err := Load(w.path)
			if err != nil {
				w.log.Warn("config reload failed", "path", w.path, "err", err)
				continue
			}
			w.log.Info("config reloaded", "path", w.path)
			w.publish(cfg)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Error("config watcher error", "err", err)
		}
	}
}

func (w *Watcher) publish(cfg Config) {
	for {
		select {
		case w.updates <- cfg:
			return
		default:
		}
		// Drop the stale pending update.
		select {
		case <-w.updates:
		default:
		}
	}
}
