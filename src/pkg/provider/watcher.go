package provider

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// WatchTemplates reloads the provider's template sets whenever the file at
// path is rewritten. Invalid template files are logged and skipped, keeping
// the last good set in place. Returns when ctx is cancelled.
func WatchTemplates(ctx context.Context, path string, p *Provider) error {
	watcher, watcherErr := fsnotify.NewWatcher()
	if watcherErr != nil {
		return watcherErr
	}
	defer func() {
		if err := watcher.Close(); err != nil {
			slog.Error("WatchTemplates: failed to close watcher", "error", err)
		}
	}()

	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if addErr := watcher.Add(dir); addErr != nil {
		return addErr
	}

	slog.Debug("WatchTemplates: starting to watch directory", "directory", dir, "filename", base)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher closed")
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if filepath.Base(event.Name) != base {
				continue
			}

			templates, loadErr := LoadTemplates(path)
			if loadErr != nil {
				slog.Warn("WatchTemplates: ignoring invalid template file", "path", path, "error", loadErr)
				continue
			}
			if setErr := p.SetTemplates(templates); setErr != nil {
				slog.Warn("WatchTemplates: failed to apply templates", "path", path, "error", setErr)
				continue
			}
			slog.Info("Reloaded sample URI templates", "path", path,
				"portrait", len(templates.Portrait), "landscape", len(templates.Landscape))
		case _, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
		}
	}
}
