package floodit

import (
	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
)

// Terminal geometry of the board and the info panel.
const (
	cellW = 2 // Screen columns per grid cell

	boardW = engine.FieldW*cellW + 2 // Grid plus border
	boardH = engine.FieldH + 2

	panelGap = 1
	buttonW  = 6
	buttonH  = 3
	buttonDX = buttonW + 2 // Horizontal pitch between palette columns
	buttonDY = buttonH + 1 // Vertical pitch between palette rows
	buttonY  = 5           // First palette row, relative to the board top

	paletteCols = 2

	// MinWidth and MinHeight are the smallest screen the layout fits in.
	MinWidth  = boardW + panelGap + 1 + paletteCols*buttonDX
	MinHeight = boardH + 2
)

// Layout places the board and palette on a screen. Render and pointer
// hit-testing share one Layout so they always agree.
type Layout struct {
	Board   core.Rect // Board including its border
	Panel   core.Rect // Info panel to the right of the board
	Buttons [engine.ColorCount]core.Rect
	Hint    core.Point // Start of the key hint line
	Fits    bool       // Whether the screen is large enough
}

// NewLayout centers the board and palette on a w×h screen.
func NewLayout(w, h int) Layout {
	l := Layout{Fits: w >= MinWidth && h >= MinHeight}

	frame := core.CenterRect(MinWidth, MinHeight, w, h)

	l.Board = core.NewRect(frame.X, frame.Y, boardW, boardH)
	l.Panel = core.NewRect(l.Board.Right()+panelGap, frame.Y, MinWidth-boardW-panelGap, boardH)

	first := core.NewRect(l.Panel.X+1, frame.Y+buttonY, buttonW, buttonH)
	for i := range l.Buttons {
		l.Buttons[i] = first.Tile(i, paletteCols, buttonDX, buttonDY)
	}

	l.Hint = core.Point{X: frame.X, Y: l.Board.Bottom() + 1}
	return l
}

// Cell returns the screen rectangle of grid cell (x, y).
func (l Layout) Cell(x, y int) core.Rect {
	return core.NewRect(l.Board.X+1+x*cellW, l.Board.Y+1+y, cellW, 1)
}

// ButtonAt returns the palette entry under screen position (x, y), or -1.
func (l Layout) ButtonAt(x, y int) int {
	p := core.Point{X: x, Y: y}
	for i, r := range l.Buttons {
		if r.ContainsPoint(p) {
			return i
		}
	}
	return -1
}

// moveCursor steps a palette cursor in the 2-column grid of buttons.
// A cursor of -1 starts at the first entry.
func moveCursor(cur int, in core.InputFrame) int {
	if cur < 0 {
		return 0
	}
	col, row := cur%paletteCols, cur/paletteCols
	rows := (engine.ColorCount + paletteCols - 1) / paletteCols

	switch {
	case in.Has(core.ActionLeft):
		col = (col + paletteCols - 1) % paletteCols
	case in.Has(core.ActionRight):
		col = (col + 1) % paletteCols
	case in.Has(core.ActionUp):
		row = (row + rows - 1) % rows
	case in.Has(core.ActionDown):
		row = (row + 1) % rows
	}

	next := row*paletteCols + col
	if next >= engine.ColorCount {
		return cur
	}
	return next
}
