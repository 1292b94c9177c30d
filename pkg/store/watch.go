package store

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the event bursts an atomic rename produces.
const debounceWindow = 50 * time.Millisecond

// Watch observes external changes to a file-backed slot and delivers a
// coalesced notification per change burst. The channel is closed when
// ctx is cancelled or the underlying watcher dies. Non-file backends
// return ErrWatchUnsupported.
func Watch(ctx context.Context, st Store, logger *slog.Logger) (<-chan struct{}, error) {
	fst, ok := st.(*FileStore)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	if logger == nil {
		logger = slog.Default()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: renames replace the inode.
	if err := watcher.Add(filepath.Dir(fst.Path())); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", fst.Path(), err)
	}

	out := make(chan struct{}, 1)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer watcher.Close()
		defer close(out)
		return watchLoop(ctx, watcher, fst.Path(), out, logger)
	}, lifecycle.WithErrorHandler(func(err error) {
		logger.Error("store watcher failed", "path", fst.Path(), "error", err)
	}))

	return out, nil
}

func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, path string, out chan<- struct{}, logger *slog.Logger) error {
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if filepath.Base(event.Name) != filepath.Base(path) {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("store change detected", "op", event.Op.String())
			pending = time.After(debounceWindow)

		case <-pending:
			pending = nil
			select {
			case out <- struct{}{}:
			default:
				// Consumer has an unread notification; coalesce.
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			logger.Error("fsnotify error", "error", wErr)
		}
	}
}
