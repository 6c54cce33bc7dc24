// Package watch re-runs an action when watched files change.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/echolabx/docsite/internal/logfields"
	"github.com/echolabx/docsite/internal/util/sets"
)

// DefaultDebounce coalesces editor save bursts into one run.
const DefaultDebounce = 300 * time.Millisecond

// Watcher monitors files and directory trees.
type Watcher struct {
	files    sets.Set[string]
	roots    []string
	debounce time.Duration
}

// New creates a watcher for paths. Files are watched through their parent
// directory; directories are watched recursively.
func New(debounce time.Duration, paths ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	w := &Watcher{files: sets.New[string](), debounce: debounce}
	for _, p := range paths {
		if p == "" {
			continue
		}
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", p, err)
		}
		if info, err := os.Stat(abs); err == nil && info.IsDir() {
			w.roots = append(w.roots, abs)
			continue
		}
		w.files.Add(abs)
	}
	return w, nil
}

// Run calls fn after every debounced batch of changes until ctx is done.
// Errors from fn are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, fn func(context.Context) error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer func() { _ = fw.Close() }()

	if err := w.register(fw); err != nil {
		return err
	}
	slog.Info("Watching for changes", logfields.Count(w.files.Len()+len(w.roots)))

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Op&fsnotify.Create == fsnotify.Create {
				w.addIfRootDir(fw, event.Name)
			}
			slog.Debug("Change detected", logfields.Path(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		case <-timer.C:
			if err := fn(ctx); err != nil {
				slog.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func (w *Watcher) register(fw *fsnotify.Watcher) error {
	dirs := sets.New[string]()
	for f := range w.files {
		dirs.Add(filepath.Dir(f))
	}
	for _, root := range w.roots {
		err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				dirs.Add(p)
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("failed to walk %s: %w", root, err)
		}
	}
	for _, d := range sets.Sorted(dirs) {
		if err := fw.Add(d); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", d, err)
		}
	}
	return nil
}

func (w *Watcher) relevant(name string) bool {
	if w.files.Has(name) {
		return true
	}
	for _, root := range w.roots {
		if strings.HasPrefix(name, root+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (w *Watcher) addIfRootDir(fw *fsnotify.Watcher, name string) {
	info, err := os.Stat(name)
	if err != nil || !info.IsDir() {
		return
	}
	if err := fw.Add(name); err != nil {
		slog.Warn("Failed to watch new directory", logfields.Path(name), logfields.Error(err))
	}
}
