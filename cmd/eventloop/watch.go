package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce absorbs the burst of events editors produce for one save.
const watchDebounce = 200 * time.Millisecond

// watch calls fn once, then again after every change to path, until ctx is
// cancelled. The parent directory is watched so editors that replace the
// file on save are still picked up.
func watch(ctx context.Context, path string, fn func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", path, err)
	}
	dir := filepath.Dir(abs)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	// fn and timer are only touched from this goroutine; the timer callback
	// only signals rerun.
	rerun := make(chan struct{}, 1)
	var timer *time.Timer
	debounce := func() {
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(watchDebounce, func() {
			select {
			case rerun <- struct{}{}:
			default:
			}
		})
	}
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	fn()
	slog.Info("watching scenario for changes", "path", abs)

	for {
		select {
		case <-ctx.Done():
			slog.Info("context cancelled, stopping watcher")
			return nil
		case <-rerun:
			slog.Info("scenario changed, re-running", "path", abs)
			fn()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				debounce()
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			slog.Warn("scenario watch error", "path", abs, "error", err)
		}
	}
}
