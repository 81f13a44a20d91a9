package cms

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invalidates the cache whenever the fallback document changes on disk.
// It blocks until ctx is cancelled or the watcher fails to start. Only
// meaningful when the client reads from the OS filesystem.
func (c *Client) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file system watcher: %w", err)
	}
	defer watcher.Close()

	target := filepath.Clean(c.fallbackPath)
	// Watch the directory: editors often replace files via rename.
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
	}
	slog.Debug("Watching fallback content", "path", target)

	for {
		select {
		case <-ctx.Done():
			slog.Debug("Content watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				slog.Info("Fallback content changed, invalidating cache", "event", event.Op.String())
				c.Invalidate()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("Content watcher error", "error", err)
		}
	}
}
