package life

import (
	"fmt"
	"math"
	"strings"
)

// Grid is an immutable rectangular field of cells with toroidal addressing.
// Cells are stored row-major. Every derived grid is a new value, so a Grid can
// be shared between a renderer and the stepping loop without locking.
type Grid struct {
	w, h  int
	cells []bool
}

// New returns an all-dead grid with the provided dimensions.
func New(w, h int) (*Grid, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	return &Grid{w: w, h: h, cells: make([]bool, w*h)}, nil
}

// WithCells builds a grid from rows where rows[y][x] is cell (x, y).
// The input is copied.
func WithCells(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyInput
	}
	w, h := len(rows[0]), len(rows)
	g := &Grid{w: w, h: h, cells: make([]bool, w*h)}
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", y, len(row), w, ErrDimensionMismatch)
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}
	return g, nil
}

// checkDims rejects non-positive dimensions and areas that overflow int.
func checkDims(w, h int) error {
	if w <= 0 || h <= 0 || w > math.MaxInt/h {
		return fmt.Errorf("%dx%d: %w", w, h, ErrDimensionMismatch)
	}
	return nil
}

// build fills a fresh w*h grid from f. Callers guarantee positive dimensions.
func build(w, h int, f func(x, y int) bool) *Grid {
	g := &Grid{w: w, h: h, cells: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.cells[y*w+x] = f(x, y)
		}
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Get returns the state of cell (x, y).
func (g *Grid) Get(x, y int) (bool, error) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return false, fmt.Errorf("(%d,%d) on %dx%d grid: %w", x, y, g.w, g.h, ErrOutOfBounds)
	}
	return g.cells[y*g.w+x], nil
}

// Alive reads cell (x, y) with both coordinates wrapped onto the torus.
func (g *Grid) Alive(x, y int) bool {
	return g.cells[Wrap(y, g.h)*g.w+Wrap(x, g.w)]
}

// LiveCells counts the living cells.
func (g *Grid) LiveCells() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, c := range g.cells {
		if other.cells[i] != c {
			return false
		}
	}
	return true
}

// Rows returns a copy of the cells, one slice per row.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.h)
	for y := range rows {
		rows[y] = make([]bool, g.w)
		copy(rows[y], g.cells[y*g.w:(y+1)*g.w])
	}
	return rows
}

// String returns the encoded grid, one line per row.
func (g *Grid) String() string {
	return strings.Join(Encode(g), "\n")
}
