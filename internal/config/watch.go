package config

import (
	"context"
	"io"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// debounce is the quiet period required before a changed file is re-read.
const debounce = 100 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk and publishes
// each successfully validated config on Updates. Invalid edits are logged
// and skipped so a typo never replaces a working config.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	updates chan Config
	logger  *log.Logger
}

// NewWatcher starts watching the directory containing path. Watching the
// directory instead of the file survives editors that save by rename.
func NewWatcher(path string, logger *log.Logger) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, err
	}

	if err := w.Add(filepath.Dir(abs)); err != nil {
		_ = w.Close()
		return nil, err
	}

	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Watcher{
		path:    abs,
		watcher: w,
		updates: make(chan Config, 1),
		logger:  logger,
	}, nil
}

// Updates delivers reloaded configs. Only the newest pending config is kept.
func (w *Watcher) Updates() <-chan Config {
	return w.updates
}

// Run processes file events until ctx is cancelled, then closes the watcher.
// A reload happens once the file has been quiet for the debounce window, so
// a truncate followed by a write is read as one change.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			timer.Reset(debounce)

		case <-timer.C:
			w.reload()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("config watcher error", "error", err)
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := LoadFile(w.path)
	if err != nil {
		w.logger.Warn("ignoring config change", "path", w.path, "error", err)
		return
	}

	// Drop a stale pending update in favor of the new one.
	select {
	case <-w.updates:
	default:
	}
	w.updates <- cfg
	w.logger.Info("config reloaded", "path", w.path)
}
