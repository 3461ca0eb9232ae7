package render

import (
	"image/color"
	"math"

	"cgol/pkg/life"
)

// Colours used by the window renderer.
var (
	LiveColor = color.RGBA{A: 0xff}
	DeadColor = color.RGBA{R: 127, G: 127, B: 127, A: 0xff}
	LineColor = color.RGBA{A: 0xff}
)

// minOutlineCell is the smallest cell size that still gets an outline;
// below it the outline would swallow the cell.
const minOutlineCell = 3

// CellSize returns the pixel size of one cell so that the whole grid covers
// at most ratio of the screen in both directions. The result is at least 1.
func CellSize(screenW, screenH, gridW, gridH int, ratio float64) int {
	if gridW <= 0 || gridH <= 0 {
		return 1
	}
	s := int(math.Min(
		float64(screenW)*ratio/float64(gridW),
		float64(screenH)*ratio/float64(gridH),
	))
	if s < 1 {
		return 1
	}
	return s
}

// fillCellsRGBA paints g into buf, an RGBA image of
// (g.Width()*cell) x (g.Height()*cell) pixels. Each cell is a cell x cell
// square filled with on or off and framed by a one-pixel line.
func fillCellsRGBA(buf []byte, g *life.Grid, cell int, on, off, line color.Color) {
	onPx, offPx, linePx := rgba(on), rgba(off), rgba(line)
	stride := g.Width() * cell
	outline := cell >= minOutlineCell
	for py := 0; py < g.Height()*cell; py++ {
		y, iy := py/cell, py%cell
		edgeY := outline && (iy == 0 || iy == cell-1)
		for px := 0; px < stride; px++ {
			x, ix := px/cell, px%cell
			var c [4]byte
			switch {
			case edgeY || (outline && (ix == 0 || ix == cell-1)):
				c = linePx
			case g.Alive(x, y):
				c = onPx
			default:
				c = offPx
			}
			copy(buf[(py*stride+px)*4:], c[:])
		}
	}
}

func rgba(c color.Color) [4]byte {
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
