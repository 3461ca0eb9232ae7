package life

import "cgol/pkg/core"

// Random returns a grid where each cell is alive with probability density.
// The same seed always produces the same grid.
func Random(w, h int, seed int64, density float64) (*Grid, error) {
	if err := checkDims(w, h); err != nil {
		return nil, err
	}
	rng := core.NewRNG(seed)
	return build(w, h, func(int, int) bool { return rng.Chance(density) }), nil
}
