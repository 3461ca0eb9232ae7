package life

// Wrap maps i onto [0, n) using floored modulo, so negative offsets land on
// the opposite edge.
func Wrap(i, n int) int {
	return ((i % n) + n) % n
}

// Neighbors counts the live cells among the eight toroidal neighbours of
// (x, y). On grids narrower than three cells the same cell can be counted
// more than once, including the cell itself.
func Neighbors(g *Grid, x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		ny := Wrap(y+dy, g.h)
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.cells[ny*g.w+Wrap(x+dx, g.w)] {
				n++
			}
		}
	}
	return n
}

// NextState applies B3/S23 to cell (x, y).
func NextState(g *Grid, x, y int) bool {
	n := Neighbors(g, x, y)
	if g.Alive(x, y) {
		return n == 2 || n == 3
	}
	return n == 3
}
