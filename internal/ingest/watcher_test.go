package ingest

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherEmitsSupportedFiles(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, Debounce: 20 * time.Millisecond}, nil)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "skip.csv"), []byte("y"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644))

	select {
	case p := <-evCh:
		assert.Equal(t, filepath.Join(dir, "a.txt"), p)
	case <-time.After(5 * time.Second):
		t.Fatal("no event before timeout")
	}
}

func TestWatcherCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}, Debounce: 15 * time.Millisecond}, nil)
	require.NoError(t, err)

	// Rapid rewrites of one file keep the debounce timer firing while the
	// event loop is still recording hits for the same path.
	path := filepath.Join(dir, "burst.txt")
	for i := 0; i < 20; i++ {
		require.NoError(t, os.WriteFile(path, []byte{byte('a' + i)}, 0o644))
		time.Sleep(2 * time.Millisecond)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case p := <-evCh:
			assert.Equal(t, path, p)
			return
		case <-deadline:
			t.Fatal("no event before timeout")
		}
	}
}
