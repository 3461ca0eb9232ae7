package gridfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/pkg/life"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoadAndSave(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "blinker.txt", "00000\n00000\n01110\n00000\n00000\n")

	g, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 3, g.LiveCells())

	out := filepath.Join(dir, "next.txt")
	require.NoError(t, Save(out, life.Step(g)))
	body, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "00000\n00100\n00100\n00100\n00000\n", string(body))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temp files must not be left behind")
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	empty := writeFile(t, dir, "empty.txt", "")
	_, err = Load(empty)
	assert.ErrorIs(t, err, life.ErrEmptyInput)
	assert.Contains(t, err.Error(), "empty.txt")
}

func TestCandidates(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.txt", "1")
	writeFile(t, dir, "a.txt", "1")
	writeFile(t, dir, "notes.md", "x")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir.txt"), 0o755))

	got, err := Candidates(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "b.txt"}, got)

	_, err = Candidates(filepath.Join(dir, "nope"))
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	candidates := []string{"block.txt", "glider.txt"}
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"1", "block.txt", true},
		{" 2 ", "glider.txt", true},
		{"glider.txt", "glider.txt", true},
		{"block", "block.txt", true},
		{"0", "", false},
		{"3", "", false},
		{"pulsar", "", false},
		{"", "", false},
		{"+1", "", false},
		{"-1", "", false},
	}
	for _, tc := range cases {
		got, err := Resolve(tc.input, candidates)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidSelection, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestResolveSignedNumbersAreNames(t *testing.T) {
	candidates := []string{"+1.txt", "-2.txt", "block.txt"}

	got, err := Resolve("+1", candidates)
	require.NoError(t, err)
	assert.Equal(t, "+1.txt", got)

	got, err = Resolve("-2", candidates)
	require.NoError(t, err)
	assert.Equal(t, "-2.txt", got)

	got, err = Resolve("3", candidates)
	require.NoError(t, err)
	assert.Equal(t, "block.txt", got)
}

func TestSaveName(t *testing.T) {
	cases := []struct {
		input string
		want  string
		ok    bool
	}{
		{"out", "out.txt", true},
		{" out.txt ", "out.txt", true},
		{"gen.5.txt", "gen.5.txt", true},
		{"out.csv", "", false},
		{"", "", false},
		{".txt", "", false},
	}
	for _, tc := range cases {
		got, err := SaveName(tc.input)
		if !tc.ok {
			assert.ErrorIs(t, err, ErrInvalidName, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got)
	}
}

func TestSource(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "block.txt", "11\n11\n")

	g, name, err := Source{Path: p}.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "block.txt", name)
	assert.Equal(t, 4, g.LiveCells())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = Source{Path: p}.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
