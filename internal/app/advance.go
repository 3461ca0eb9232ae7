package app

import (
	"io"

	"cgol/internal/gridfile"
	"cgol/pkg/life"
)

// Advance loads the grid at in, steps it n generations and writes the result
// to out, or to w when out is empty.
func Advance(in string, n int, out string, w io.Writer) (*life.Grid, error) {
	g, err := gridfile.Load(in)
	if err != nil {
		return nil, err
	}
	g = life.StepN(g, n)
	if out != "" {
		return g, gridfile.Save(out, g)
	}
	return g, life.Write(w, g)
}
