package corpus

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"nutrition-assistant/internal/contextutil"
	"nutrition-assistant/internal/lexical"
)

// Watcher reloads a corpus file or directory whenever it changes on disk.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	isDir    bool
	provider Provider
	onReload func([]lexical.Entry)
}

// NewWatcher creates a watcher for the corpus file or directory at path.
// onReload receives every successfully parsed corpus; failed loads are logged
// and skipped so the previous corpus stays in effect.
func NewWatcher(path string, onReload func([]lexical.Entry)) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("failed to resolve corpus path: %w", err)
	}
	provider := ForPath(abs)
	_, isDir := provider.(DirProvider)
	return &Watcher{
		watcher:  w,
		path:     abs,
		isDir:    isDir,
		provider: provider,
		onReload: onReload,
	}, nil
}

// Run watches until ctx is done. For a single file the parent directory is
// watched rather than the file so that editors replacing the file by rename
// are still seen. For a directory every subdirectory present at start is
// watched.
func (w *Watcher) Run(ctx context.Context) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := w.addWatches(); err != nil {
		return err
	}
	logger.InfoContext(ctx, "watching corpus", "path", w.path, "directory", w.isDir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) &&
				!(w.isDir && event.Has(fsnotify.Remove)) {
				continue
			}
			w.reload(ctx, logger)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "corpus watcher error", "error", err)
		}
	}
}

func (w *Watcher) addWatches() error {
	if !w.isDir {
		if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(w.path), err)
		}
		return nil
	}

	return filepath.WalkDir(w.path, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != w.path && hidden(d.Name()) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

// relevant reports whether a change to name can affect the corpus.
func (w *Watcher) relevant(name string) bool {
	name = filepath.Clean(name)
	if !w.isDir {
		return name == w.path
	}
	return supported(name) && !hidden(filepath.Base(name))
}

func (w *Watcher) reload(ctx context.Context, logger *slog.Logger) {
	entries, err := w.provider.Load(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "corpus reload failed, keeping previous corpus", "path", w.path, "error", err)
		return
	}
	w.onReload(entries)
	logger.InfoContext(ctx, "corpus reloaded", "path", w.path, "entries", len(entries))
}

// Close releases the underlying watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
