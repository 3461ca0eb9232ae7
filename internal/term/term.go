// Package term draws grids on a plain terminal, one frame per generation.
package term

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/mattn/go-isatty"

	"cgol/internal/core"
)

const (
	liveCell = "██"
	deadCell = "  "

	clearScreen = "\x1b[H\x1b[2J"
)

// Options controls how frames are drawn.
type Options struct {
	// Clear homes the cursor and clears the screen before each frame.
	Clear bool
	// Color paints live cells and the status line.
	Color bool
	// Frequency is shown on the status line when positive.
	Frequency float64
}

// Renderer writes each snapshot as rows of block characters. Frames are
// assembled in memory and written with a single call to avoid flicker.
type Renderer struct {
	out  io.Writer
	opts Options
	au   aurora.Aurora
	live string
	buf  bytes.Buffer
}

// New returns a renderer writing to out.
func New(out io.Writer, opts Options) *Renderer {
	au := aurora.NewAurora(opts.Color)
	return &Renderer{
		out:  out,
		opts: opts,
		au:   au,
		live: au.Green(liveCell).String(),
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DefaultOptions picks clearing and colour based on whether f is a terminal.
func DefaultOptions(f *os.File, hz float64) Options {
	tty := IsTerminal(f)
	return Options{Clear: tty, Color: tty, Frequency: hz}
}

// Render implements core.Renderer.
func (r *Renderer) Render(s core.Snapshot) error {
	r.buf.Reset()
	if r.opts.Clear {
		r.buf.WriteString(clearScreen)
	}
	g := s.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if g.Alive(x, y) {
				r.buf.WriteString(r.live)
			} else {
				r.buf.WriteString(deadCell)
			}
		}
		r.buf.WriteByte('\n')
	}
	r.buf.WriteString(r.status(s))
	r.buf.WriteByte('\n')
	_, err := r.out.Write(r.buf.Bytes())
	return err
}

func (r *Renderer) status(s core.Snapshot) string {
	line := fmt.Sprintf("%s %d  %s %d",
		r.au.Cyan("generation"), s.Generation,
		r.au.Cyan("live"), s.Grid.LiveCells())
	if r.opts.Frequency > 0 {
		line += fmt.Sprintf("  %s %g Hz", r.au.Cyan("rate"), r.opts.Frequency)
	}
	if s.Source != "" {
		line += "  " + s.Source
	}
	if s.Paused {
		line += "  " + r.au.Red("paused").String()
	}
	return line
}
