package engine

import (
	"fmt"
	"strings"
)

// Grid is a rectangular board of color indices.
// Cells are stored in row-major order: index = y*W + x.
type Grid struct {
	W     int
	H     int
	Cells []int
}

// NewGrid creates a W×H grid with every cell set to color 0.
func NewGrid(w, h int) Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", w, h))
	}
	return Grid{W: w, H: h, Cells: make([]int, w*h)}
}

// GridFromRows builds a grid from rows of color indices, rows[y][x].
// All rows must have the same length.
func GridFromRows(rows [][]int) Grid {
	if len(rows) == 0 {
		panic("engine: grid needs at least one row")
	}
	g := NewGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.W {
			panic(fmt.Sprintf("engine: row %d has %d cells, want %d", y, len(row), g.W))
		}
		copy(g.Cells[y*g.W:], row)
	}
	return g
}

// InBounds reports whether (x, y) lies on the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// At returns the color at (x, y).
func (g Grid) At(x, y int) int {
	return g.Cells[y*g.W+x]
}

// Set stores a color at (x, y).
func (g Grid) Set(x, y, color int) {
	g.Cells[y*g.W+x] = color
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	cells := make([]int, len(g.Cells))
	copy(cells, g.Cells)
	return Grid{W: g.W, H: g.H, Cells: cells}
}

// Rows returns the grid as rows of color indices.
func (g Grid) Rows() [][]int {
	rows := make([][]int, g.H)
	for y := range rows {
		rows[y] = make([]int, g.W)
		copy(rows[y], g.Cells[y*g.W:(y+1)*g.W])
	}
	return rows
}

// Uniform reports whether every cell holds the same color.
func (g Grid) Uniform() bool {
	for _, c := range g.Cells {
		if c != g.Cells[0] {
			return false
		}
	}
	return true
}

// Equal reports whether two grids have the same size and contents.
func (g Grid) Equal(other Grid) bool {
	if g.W != other.W || g.H != other.H {
		return false
	}
	for i, c := range g.Cells {
		if c != other.Cells[i] {
			return false
		}
	}
	return true
}

// String renders the grid as rows of digits, one row per line.
func (g Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.H; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.W; x++ {
			sb.WriteByte(byte('0' + g.At(x, y)))
		}
	}
	return sb.String()
}

// point is a pending flood-fill coordinate.
type point struct{ x, y int }

// FloodFill repaints the 4-connected region containing (x, y) that shares its
// color with the color to. It returns the number of cells repainted.
//
// Pending coordinates are kept on an explicit stack; a repainted cell no longer
// matches the source color, so it is never pushed twice.
func (g Grid) FloodFill(x, y, to int) int {
	from := g.At(x, y)
	if from == to {
		return 0
	}

	painted := 0
	stack := []point{{x, y}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if g.At(p.x, p.y) != from {
			continue
		}
		g.Set(p.x, p.y, to)
		painted++

		if p.x+1 < g.W {
			stack = append(stack, point{p.x + 1, p.y})
		}
		if p.x > 0 {
			stack = append(stack, point{p.x - 1, p.y})
		}
		if p.y+1 < g.H {
			stack = append(stack, point{p.x, p.y + 1})
		}
		if p.y > 0 {
			stack = append(stack, point{p.x, p.y - 1})
		}
	}
	return painted
}

// Mask is a boolean grid parallel to a Grid.
type Mask struct {
	W     int
	H     int
	Cells []bool
}

// NewMask creates an all-false W×H mask.
func NewMask(w, h int) Mask {
	return Mask{W: w, H: h, Cells: make([]bool, w*h)}
}

// At reports whether (x, y) is marked.
func (m Mask) At(x, y int) bool {
	return m.Cells[y*m.W+x]
}

// Reset clears every mark.
func (m Mask) Reset() {
	for i := range m.Cells {
		m.Cells[i] = false
	}
}

// Count returns the number of marked cells.
func (m Mask) Count() int {
	n := 0
	for _, v := range m.Cells {
		if v {
			n++
		}
	}
	return n
}
