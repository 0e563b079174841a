package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// A burst of files under a non-zero debounce exercises the timer flush
// path concurrently with the event loop; run with -race.
func TestWatcherDebouncedBurstDeliversEveryFile(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{
		Roots:    []string{dir},
		Debounce: time.Millisecond,
	})
	require.NoError(t, err)

	const fileCount = 200
	got := make(map[string]struct{}, fileCount)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for p := range evCh {
			got[p] = struct{}{}
			if len(got) == fileCount {
				cancel()
			}
		}
	}()

	for i := 0; i < fileCount; i++ {
		path := filepath.Join(dir, fmt.Sprintf("nfe-%03d.xml", i))
		require.NoError(t, os.WriteFile(path, []byte("<NFe/>"), 0o644))
	}

	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("watcher delivered %d of %d files", len(got), fileCount)
	}
	require.Len(t, got, fileCount)
}

func TestWatcherIgnoresDisallowedExtensions(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	evCh, _, err := StartWatcher(ctx, WatchConfig{Roots: []string{dir}})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "invoice.xml"), []byte("<NFe/>"), 0o644))

	select {
	case p := <-evCh:
		require.Equal(t, "invoice.xml", filepath.Base(p))
	case <-time.After(5 * time.Second):
		t.Fatal("no event for the xml file")
	}
}
