package data

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the named CSV file whenever it is written and hands the
// new series to update. It blocks until ctx is done. Files which do not
// parse are logged and skipped; the previous data stays in place.
//
// The directory is watched rather than the file so that editors which
// replace the file on save are noticed too.
func Watch(ctx context.Context, name string, update func([]Series)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed creating file watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(name)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", name, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("file watcher", "file", name, "err", err)
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			series, err := ReadFile(abs)
			if err != nil {
				slog.Warn("reload failed", "file", name, "err", err)
				continue
			}
			slog.Debug("reloaded data", "file", name, "series", len(series))
			update(series)
		}
	}
}
