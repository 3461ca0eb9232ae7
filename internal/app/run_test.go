package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/internal/core"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunTermSavesFinalGrid(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.Dir = dir
	cfg.File = writeGrid(t, dir, "blinker.txt", blinker)
	cfg.Save = filepath.Join(dir, "final.txt")
	cfg.Frequency = 1000
	cfg.MaxGenerations = 3
	cfg.Color = "never"

	require.NoError(t, Run(context.Background(), cfg, discardLogger()))

	data, err := os.ReadFile(cfg.Save)
	require.NoError(t, err)
	assert.Equal(t, "00000\n00100\n00100\n00100\n00000\n", string(data))
}

func TestRunUnknownMode(t *testing.T) {
	dir := t.TempDir()
	cfg := NewConfig()
	cfg.File = writeGrid(t, dir, "blinker.txt", blinker)
	cfg.Frequency = 1
	cfg.Mode = "gui"
	assert.Error(t, Run(context.Background(), cfg, discardLogger()))
}

func TestGridSourceNeedsFileWithoutTerminal(t *testing.T) {
	cfg := NewConfig()
	_, err := gridSource(cfg, false)
	assert.Error(t, err)

	cfg.File = "glider.txt"
	src, err := gridSource(cfg, false)
	require.NoError(t, err)
	assert.NotNil(t, src)
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeGrid(t, dir, "a.txt", blinker)
	writeGrid(t, dir, "glider.txt", blinker)
	cfg := NewConfig()
	cfg.Dir = dir

	abs := filepath.Join(dir, "a.txt")
	cases := []struct{ in, want string }{
		{"2", filepath.Join(dir, "glider.txt")},
		{"glider", filepath.Join(dir, "glider.txt")},
		{"a.txt", abs},
		{abs, abs},
		{"missing", "missing"},
	}
	for _, tc := range cases {
		cfg.File = tc.in
		assert.Equal(t, tc.want, resolveFile(cfg), tc.in)
	}
}

func TestFrequencyFallback(t *testing.T) {
	cfg := NewConfig()
	hz, err := frequency(context.Background(), cfg, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultFrequency, hz)

	cfg.Frequency = 0.5
	hz, err = frequency(context.Background(), cfg, true)
	require.NoError(t, err)
	assert.Equal(t, 0.5, hz)
}

func TestSavePath(t *testing.T) {
	cfg := NewConfig()
	cfg.Dir = "grids"

	assert.Equal(t, filepath.Join("grids", "glider-gen12.txt"),
		savePath(cfg, core.Snapshot{Generation: 12, Source: "glider.txt"}))
	assert.Equal(t, filepath.Join("grids", "grid-gen0.txt"),
		savePath(cfg, core.Snapshot{}))

	cfg.Save = "out.txt"
	assert.Equal(t, "out.txt", savePath(cfg, core.Snapshot{Generation: 3}))
}
