package life

import (
	"bufio"
	"io"
	"strings"
)

const (
	deadChar = '0'
	liveChar = '1'
)

// maxLineBytes bounds a single line accepted by Read.
const maxLineBytes = 16 << 20

// Decode parses text lines into a grid. Each line is one row and each
// character one column; '0' is dead and any other byte alive. Short lines are
// padded with dead cells up to the longest line.
func Decode(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	trimmed := make([]string, len(lines))
	maxLen := 0
	for i, l := range lines {
		l = strings.TrimRight(l, "\r\n")
		trimmed[i] = l
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	if maxLen == 0 {
		return nil, ErrEmptyInput
	}
	return build(maxLen, len(trimmed), func(x, y int) bool {
		line := trimmed[y]
		if x >= len(line) {
			return false
		}
		return line[x] != deadChar
	}), nil
}

// Encode renders the grid as Height lines of Width '0'/'1' characters.
func Encode(g *Grid) []string {
	lines := make([]string, g.h)
	var b strings.Builder
	for y := 0; y < g.h; y++ {
		b.Reset()
		b.Grow(g.w)
		for x := 0; x < g.w; x++ {
			if g.cells[y*g.w+x] {
				b.WriteByte(liveChar)
			} else {
				b.WriteByte(deadChar)
			}
		}
		lines[y] = b.String()
	}
	return lines
}

// Read decodes a grid from r, one row per line.
func Read(r io.Reader) (*Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return Decode(lines)
}

// Write encodes g to w, terminating every row with a newline.
func Write(w io.Writer, g *Grid) error {
	bw := bufio.NewWriter(w)
	for _, line := range Encode(g) {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
