package core

// Point is an integer coordinate on the grid.
type Point struct {
	X, Y int
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point { return Point{X: p.X + d.X, Y: p.Y + d.Y} }

// Grid describes a toroidal lattice of W*H cells.
type Grid struct {
	W, H int
}

// NewGrid returns a grid with the given dimensions, clamped to at least one cell per axis.
func NewGrid(w, h int) Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return Grid{W: w, H: h}
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int { return g.W * g.H }

// Contains reports whether p lies inside [0, W) x [0, H).
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap applies toroidal wrapping to p. Each axis is wrapped on its own, so a
// point outside on both axes comes back inside on both.
func (g Grid) Wrap(p Point) Point {
	p.X = (p.X%g.W + g.W) % g.W
	p.Y = (p.Y%g.H + g.H) % g.H
	return p
}
