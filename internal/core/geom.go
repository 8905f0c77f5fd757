// Package core provides the screen, input and geometry types shared by the
// puzzle and its terminal shell.
// It contains no external dependencies (especially no Bubble Tea) so game
// logic stays pure and testable.
package core

// Point is a position in screen cells.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned box in screen cells, used for layout and pointer
// hit-testing. The right and bottom edges are exclusive.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenterRect places a w×h box in the middle of an outerW×outerH screen.
// When the box does not fit it is pinned to the top-left corner instead of
// going negative.
func CenterRect(w, h, outerW, outerH int) Rect {
	return Rect{X: max(0, (outerW-w)/2), Y: max(0, (outerH-h)/2), W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row below the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsPoint is Contains for a Point.
func (r Rect) ContainsPoint(p Point) bool {
	return r.Contains(p.X, p.Y)
}

// Inset returns the rectangle grown by n cells on every side (shrunk when n < 0).
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X - n, Y: r.Y - n, W: r.W + 2*n, H: r.H + 2*n}
}

// Offset returns r moved by (dx, dy).
func (r Rect) Offset(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Tile returns the i-th copy of r in a row-major grid of cols columns, with
// dx and dy the distance between neighbouring copies.
func (r Rect) Tile(i, cols, dx, dy int) Rect {
	return r.Offset((i%cols)*dx, (i/cols)*dy)
}

// Center returns the middle cell of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}
