package life

// Neighbours counts the alive cells around (x, y). Cells past the border
// are absent from the count, the field does not wrap.
func Neighbours(g *Grid, x, y int) int {
	n := 0
	for cx := x - 1; cx <= x+1; cx++ {
		for cy := y - 1; cy <= y+1; cy++ {
			if cx == x && cy == y {
				continue
			}
			if g.Alive(cx, cy) {
				n++
			}
		}
	}
	return n
}

// NextState applies B3/S23 to the cell at (x, y) of g.
func NextState(g *Grid, x, y int) bool {
	n := Neighbours(g, x, y)
	if !g.Alive(x, y) {
		return n == 3
	}
	return n == 2 || n == 3
}

// Step writes the next generation of cur into next. It only reads cur, so
// every cell sees the same snapshot.
func Step(cur, next *Grid) error {
	if !cur.SameShape(next) {
		return ErrDimensionMismatch
	}
	for x := 0; x < cur.width; x++ {
		col := next.cells[x]
		for y := 0; y < cur.height; y++ {
			col[y] = NextState(cur, x, y)
		}
	}
	return nil
}
