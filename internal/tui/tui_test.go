package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cgol/internal/core"
	"cgol/pkg/life"
)

func TestDrawField(t *testing.T) {
	g, err := life.Decode([]string{"100", "010"})
	require.NoError(t, err)

	var buf bytes.Buffer
	drawField(&buf, g, 10, 10, "#", ".")
	assert.Equal(t, "#..\n.#.", buf.String())
}

func TestDrawFieldCrops(t *testing.T) {
	g, err := life.Decode([]string{"1111", "1111", "1111"})
	require.NoError(t, err)

	var buf bytes.Buffer
	drawField(&buf, g, 2, 2, "#", ".")
	lines := strings.Split(buf.String(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "##", lines[0])
	assert.Contains(t, lines[1], "larger than the view")
}

func TestStatusLines(t *testing.T) {
	g, err := life.Decode([]string{"11", "10"})
	require.NoError(t, err)

	lines := statusLines(core.Snapshot{Grid: g, Generation: 3, Source: "x.txt", Paused: true}, 2.5, "saved")
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "x.txt")
	assert.Contains(t, joined, "2 x 2")
	assert.Contains(t, joined, "Generation")
	assert.Contains(t, joined, ": 3")
	assert.Contains(t, joined, "2.5 Hz")
	assert.Contains(t, joined, "paused")
	assert.Equal(t, " saved", lines[len(lines)-1])
}
