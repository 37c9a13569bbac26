package adapter

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherDebouncesPHPChanges(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "A.php")
	writeTestFile(t, target, "<?php\n")

	var (
		mu      sync.Mutex
		batches [][]string
	)

	done := make(chan struct{}, 1)

	w, err := NewWatcher(50*time.Millisecond, nil, nil, func(paths []string) {
		mu.Lock()
		batches = append(batches, paths)
		mu.Unlock()

		select {
		case done <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)
	go func() { errCh <- w.Watch(ctx, []string{root}) }()

	// give the watcher time to register the root
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(target, []byte("<?php\necho 1;\n"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("no change batch delivered")
	}

	cancel()
	require.NoError(t, <-errCh)

	mu.Lock()
	defer mu.Unlock()

	require.NotEmpty(t, batches)
	assert.Equal(t, []string{target}, batches[0])
}

func TestWatcherHandleFiltersSkipped(t *testing.T) {
	skip, err := NewSkipMatcher([]string{"**/vendor/**"})
	require.NoError(t, err)

	w, err := NewWatcher(time.Hour, skip, nil, func([]string) {})
	require.NoError(t, err)
	defer w.close()

	w.handle(fsnotify.Event{Name: "/p/vendor/x/A.php", Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: "/p/src/B.php", Op: fsnotify.Write})
	w.handle(fsnotify.Event{Name: "/p/src/C.php", Op: fsnotify.Chmod})

	w.pendingMu.Lock()
	defer w.pendingMu.Unlock()

	assert.Equal(t, map[string]struct{}{"/p/src/B.php": {}}, w.pending)
}
