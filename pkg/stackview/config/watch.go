package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/BrandonKowalski/stackview/pkg/stackview/internal"
	"github.com/fsnotify/fsnotify"
)

// reloadDelay coalesces the bursts of events editors produce on save.
const reloadDelay = 50 * time.Millisecond

// Watch reloads the file at path whenever it changes and passes the result,
// or the load error, to onChange. It watches the parent directory so that
// editors replacing the file by rename are noticed. Watching stops when ctx
// is done. onChange runs on the watcher goroutine.
func Watch(ctx context.Context, path string, onChange func(File, error)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("config: watch %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return fmt.Errorf("config: watch %s: %w", filepath.Dir(abs), err)
	}

	logger := internal.LibraryLogger().With("component", "config")

	go func() {
		defer watcher.Close()

		var pending <-chan time.Time
		for {
			select {
			case <-ctx.Done():
				return

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config watcher error", "path", abs, "error", err)

			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(evt.Name) != abs {
					continue
				}
				if evt.Has(fsnotify.Write) || evt.Has(fsnotify.Create) || evt.Has(fsnotify.Rename) {
					pending = time.After(reloadDelay)
				}

			case <-pending:
				pending = nil
				f, err := Load(abs)
				if err != nil {
					logger.Warn("config reload failed", "path", abs, "error", err)
				} else {
					logger.Debug("config reloaded", "path", abs)
				}
				onChange(f, err)
			}
		}
	}()

	return nil
}
