package floodit

import (
	"fmt"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
)

const (
	blockRune = '█'
	waveRune  = '▓'
)

// Render draws the board, info panel and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if !g.layout.Fits {
		renderTooSmall(dst)
		return
	}

	l := g.layout
	g.renderBoard(dst, l)
	g.renderPanel(dst, l)

	hint := "1-6/click paint  arrows+enter  q quit"
	if g.eng.IsTerminal() {
		hint = "Click or press R to play again"
	}
	dst.DrawTextColored(l.Hint.X, l.Hint.Y, hint, core.ColorGray)
}

func (g *Game) renderBoard(dst *core.Screen, l Layout) {
	dst.DrawBox(l.Board, core.ColorGray)

	for y := 0; y < g.eng.Height(); y++ {
		for x := 0; x < g.eng.Width(); x++ {
			r := blockRune
			if g.eng.Effect(x, y) {
				r = waveRune
			}
			dst.DrawRect(l.Cell(x, y), r, core.Swatch(g.eng.Cell(x, y)))
		}
	}
}

func (g *Game) renderPanel(dst *core.Screen, l Layout) {
	x := l.Panel.X + 1

	switch {
	case g.eng.IsClear():
		dst.DrawTextColored(x, l.Panel.Y+1, "EXCELLENT!", core.ColorBrightYellow)
	case g.eng.IsOver():
		dst.DrawTextColored(x, l.Panel.Y+1, "GAME OVER", core.ColorBrightRed)
	}

	dst.DrawTextColored(x, l.Panel.Y+3, fmt.Sprintf("MOVES %2d", g.eng.MovesLeft()), core.ColorBrightWhite)

	for i, b := range l.Buttons {
		if i == g.eng.HoverColor() {
			dst.DrawBox(b.Inset(1), core.ColorBrightWhite)
		}
		dst.DrawRect(b, blockRune, core.Swatch(i))
	}
}

func renderTooSmall(dst *core.Screen) {
	y := dst.Height()/2 - 1
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", MinWidth, MinHeight))
}

// RenderASCII returns the grid as rows of color digits followed by a status
// line, for non-interactive output.
func RenderASCII(g *engine.Game) string {
	status := fmt.Sprintf("MOVES %2d", g.MovesLeft())
	switch {
	case g.IsClear():
		status += "  EXCELLENT!"
	case g.IsOver():
		status += "  GAME OVER"
	}
	return g.Grid().String() + "\n" + status
}
