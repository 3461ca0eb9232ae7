//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"cgol/pkg/life"
)

// GridPainter keeps one RGBA image in sync with a grid of fixed dimensions.
type GridPainter struct {
	w, h, cell int
	img        *ebiten.Image
	buf        []byte
}

// NewGridPainter allocates a painter for a w x h grid drawn at cell pixels per cell.
func NewGridPainter(w, h, cell int) *GridPainter {
	gp := &GridPainter{w: w, h: h, cell: cell, buf: make([]byte, 4*w*h*cell*cell)}
	gp.img = ebiten.NewImage(w*cell, h*cell)
	return gp
}

// Fits reports whether g can be drawn by this painter.
func (gp *GridPainter) Fits(g *life.Grid) bool {
	return g.Width() == gp.w && g.Height() == gp.h
}

// Blit uploads g into the painter image and draws it at the origin of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, on, off, line color.Color) {
	if !gp.Fits(g) {
		return
	}
	fillCellsRGBA(gp.buf, g, gp.cell, on, off, line)
	gp.img.WritePixels(gp.buf)
	dst.DrawImage(gp.img, &ebiten.DrawImageOptions{})
}

// Size returns the pixel dimensions of the painted image.
func (gp *GridPainter) Size() (int, int) { return gp.w * gp.cell, gp.h * gp.cell }
