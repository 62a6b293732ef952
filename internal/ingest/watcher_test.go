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

func waitForPath(t *testing.T, ch <-chan string, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got, ok := <-ch:
			require.True(t, ok, "watcher channel closed early")
			if got == want {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func TestWatcherEmitsDebouncedWrites(t *testing.T) {
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{root},
		Debounce: 20 * time.Millisecond,
	})
	require.NoError(t, err)

	// A create/write burst per drop is the normal OCR pattern.
	path := filepath.Join(root, "m_schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("SPIL NISAKA / 602N\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("SPIL NISAKA / 602N\nETD 16 Jan 2026, 19:00\n"), 0o644))

	waitForPath(t, evCh, path)
}

func TestWatcherInitialScan(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "o_schedule.txt")
	require.NoError(t, os.WriteFile(path, []byte("COSCO PRIDE 067E\n"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:       []string{root},
		InitialScan: true,
	})
	require.NoError(t, err)

	waitForPath(t, evCh, path)
}

func TestWatcherRequiresRoots(t *testing.T) {
	_, _, err := StartWatcher(context.Background(), WatchConfig{})
	assert.Error(t, err)
}
