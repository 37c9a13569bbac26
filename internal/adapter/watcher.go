package adapter

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports batches of changed .php files under a set of roots.
// Events are debounced: a batch is delivered once no new event arrived for
// the debounce interval.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debounce  time.Duration
	skip      *SkipMatcher
	onChange  func([]string)
	logger    *slog.Logger

	callbackMu sync.Mutex
	pendingMu  sync.Mutex
	pending    map[string]struct{}
	timer      *time.Timer
}

// NewWatcher creates a watcher; call Watch to start it.
func NewWatcher(debounce time.Duration, skip *SkipMatcher, logger *slog.Logger, onChange func([]string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		fsWatcher: fsw,
		debounce:  debounce,
		skip:      skip,
		onChange:  onChange,
		logger:    logger,
		pending:   make(map[string]struct{}),
	}, nil
}

// Watch registers the roots and processes events until ctx is done.
func (w *Watcher) Watch(ctx context.Context, roots []string) error {
	defer w.close()

	for _, root := range roots {
		if err := w.watchRecursive(root); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}

			w.handle(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}

			w.logger.Error("watcher error", "error", err)
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if w.skip.Match(event.Name) {
				return
			}

			if err := w.watchRecursive(event.Name); err != nil {
				w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
			}

			return
		}
	}

	if !w.relevant(event.Name) {
		return
	}

	if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
		w.scheduleChange(event.Name)
	}
}

func (w *Watcher) relevant(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".php") && !w.skip.Match(path)
}

func (w *Watcher) watchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		if path != root && w.skip.Match(path) {
			return filepath.SkipDir
		}

		return w.fsWatcher.Add(path)
	})
}

func (w *Watcher) scheduleChange(path string) {
	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	w.pending[path] = struct{}{}

	if w.timer != nil {
		w.timer.Stop()
	}

	w.timer = time.AfterFunc(w.debounce, w.flushChanges)
}

func (w *Watcher) flushChanges() {
	w.pendingMu.Lock()
	paths := make([]string, 0, len(w.pending))
	for path := range w.pending {
		paths = append(paths, path)
	}
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()

	if len(paths) == 0 {
		return
	}

	sort.Strings(paths)

	w.callbackMu.Lock()
	defer w.callbackMu.Unlock()

	w.onChange(paths)
}

func (w *Watcher) close() {
	w.pendingMu.Lock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.pendingMu.Unlock()

	_ = w.fsWatcher.Close()
}
