package life

// Step advances the grid by one generation. Every cell is evaluated against
// g, which is left untouched; the result is a new grid.
func Step(g *Grid) *Grid {
	return build(g.w, g.h, func(x, y int) bool {
		return NextState(g, x, y)
	})
}

// StepN applies Step n times. A non-positive n returns g.
func StepN(g *Grid, n int) *Grid {
	for i := 0; i < n; i++ {
		g = Step(g)
	}
	return g
}
