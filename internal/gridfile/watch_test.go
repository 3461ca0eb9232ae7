package gridfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/pkg/life"
)

func TestWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "grid.txt")
	require.NoError(t, os.WriteFile(p, []byte("1\n"), 0o644))

	got := make(chan *life.Grid, 4)
	w := NewWatcher(p, func(g *life.Grid, source string) {
		assert.Equal(t, "grid.txt", source)
		got <- g
	}, WatcherOptions{Debounce: 20 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	block, err := life.Decode([]string{"11", "11"})
	require.NoError(t, err)
	require.NoError(t, Save(p, block))

	select {
	case g := <-got:
		assert.True(t, g.Equal(block))
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
