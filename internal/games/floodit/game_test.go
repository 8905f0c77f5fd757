package floodit

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
	"github.com/vovakirdan/floodit/internal/registry"
)

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	g.seeds = func() int64 { return 99 }
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: seed})
	return g
}

// otherColor returns a palette entry different from the anchor.
func otherColor(g *Game) int {
	return (g.Engine().AnchorColor() + 1) % engine.ColorCount
}

// finish plays until the game ends.
func finish(g *Game) {
	e := g.Engine()
	for !e.IsTerminal() {
		e.Update(engine.Paint((e.AnchorColor() + 1) % engine.ColorCount))
		e.Settle()
	}
}

func center(r core.Rect) (int, int) {
	return r.Center()
}

func TestRegistered(t *testing.T) {
	require.True(t, registry.Exists(ID))

	g, err := registry.Create(ID)
	require.NoError(t, err)
	assert.Equal(t, "Flood-It", g.Title())
	assert.Equal(t, ID, g.ID())
}

func TestResetIsDeterministic(t *testing.T) {
	a := newTestGame(t, 1234)
	b := newTestGame(t, 1234)

	assert.True(t, a.Engine().Grid().Equal(b.Engine().Grid()))
	assert.Equal(t, int64(1234), a.State().Seed)
}

func TestZeroSeedComesFromClock(t *testing.T) {
	g := newTestGame(t, 0)
	assert.Equal(t, int64(99), g.Engine().Seed())
}

func TestSelectPaints(t *testing.T) {
	g := newTestGame(t, 7)
	color := otherColor(g)

	in := core.NewInputFrame()
	in.SetSelect(color + 1)
	res := g.Step(in)

	assert.Equal(t, 1, res.State.Moves)
	assert.Equal(t, color, g.Engine().AnchorColor())
	assert.Equal(t, engine.PhasePainting, g.Engine().Phase())
	assert.Empty(t, res.Sounds)
}

func TestSelectAnchorIsRejected(t *testing.T) {
	g := newTestGame(t, 7)

	in := core.NewInputFrame()
	in.SetSelect(g.Engine().AnchorColor() + 1)
	res := g.Step(in)

	assert.Equal(t, 0, res.State.Moves)
	assert.Equal(t, []string{engine.SoundRejected}, res.Sounds)

	// Sounds are reported once.
	res = g.Step(core.NewInputFrame())
	assert.Empty(t, res.Sounds)
}

func TestSelectOutOfRangeIsIgnored(t *testing.T) {
	g := newTestGame(t, 7)

	for _, slot := range []int{0, engine.ColorCount + 1} {
		in := core.NewInputFrame()
		in.SetSelect(slot)
		assert.NotPanics(t, func() { g.Step(in) })
	}
	assert.Equal(t, 0, g.State().Moves)
}

func TestClickOnPalettePaints(t *testing.T) {
	g := newTestGame(t, 11)
	color := otherColor(g)
	x, y := center(g.Layout().Buttons[color])

	in := core.NewInputFrame()
	in.SetPointer(core.ActionClick, x, y)
	g.Step(in)

	assert.Equal(t, 1, g.State().Moves)
	assert.Equal(t, color, g.Engine().AnchorColor())
}

func TestClickOutsidePaletteDoesNothing(t *testing.T) {
	g := newTestGame(t, 11)
	before := g.Engine().Snapshot()

	in := core.NewInputFrame()
	in.SetPointer(core.ActionClick, g.Layout().Board.X+2, g.Layout().Board.Y+2)
	g.Step(in)

	assert.Equal(t, before.Grid, g.Engine().Snapshot().Grid)
	assert.Equal(t, 0, g.State().Moves)
}

func TestHoverFollowsPointer(t *testing.T) {
	g := newTestGame(t, 3)

	x, y := center(g.Layout().Buttons[4])
	in := core.NewInputFrame()
	in.SetPointer(core.ActionHover, x, y)
	g.Step(in)
	assert.Equal(t, 4, g.Engine().HoverColor())

	in.Clear()
	in.SetPointer(core.ActionHover, 0, 0)
	g.Step(in)
	assert.Equal(t, -1, g.Engine().HoverColor())
	assert.Equal(t, 0, g.State().Moves)
}

func TestArrowKeysMoveCursor(t *testing.T) {
	g := newTestGame(t, 3)
	press := func(a core.Action) int {
		in := core.NewInputFrame()
		in.Set(a)
		g.Step(in)
		return g.Engine().HoverColor()
	}

	assert.Equal(t, 0, press(core.ActionRight), "first press selects the first entry")
	assert.Equal(t, 1, press(core.ActionRight))
	assert.Equal(t, 3, press(core.ActionDown))
	assert.Equal(t, 2, press(core.ActionLeft))
	assert.Equal(t, 0, press(core.ActionUp))
	assert.Equal(t, 4, press(core.ActionUp), "cursor wraps around")
}

func TestConfirmPaintsCursor(t *testing.T) {
	g := newTestGame(t, 5)

	in := core.NewInputFrame()
	in.Set(core.ActionConfirm)
	g.Step(in)
	assert.Equal(t, 0, g.State().Moves, "no cursor yet")

	color := otherColor(g)
	g.Engine().SetHoverColor(color)
	g.Step(in)
	assert.Equal(t, 1, g.State().Moves)
	assert.Equal(t, color, g.Engine().AnchorColor())
}

func TestRestartAfterFinish(t *testing.T) {
	for _, action := range []core.Action{core.ActionRestart, core.ActionClick} {
		g := newTestGame(t, 21)
		finish(g)
		require.True(t, g.State().GameOver)

		in := core.NewInputFrame()
		in.SetPointer(action, 0, 0)
		g.Step(in)

		assert.False(t, g.State().GameOver, action.String())
		assert.Equal(t, 0, g.State().Moves)
		assert.Equal(t, int64(99), g.Engine().Seed())
	}
}

func TestRestartIgnoredWhilePlaying(t *testing.T) {
	g := newTestGame(t, 21)

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	assert.Equal(t, int64(21), g.Engine().Seed())
}

func TestStateReportsResult(t *testing.T) {
	g := newTestGame(t, 8)
	finish(g)

	st := g.State()
	assert.True(t, st.GameOver)
	assert.Equal(t, g.Engine().PaintedCount(), st.Moves)
	if st.Won {
		assert.Equal(t, engine.AllowedStepCount-st.Moves, st.Score)
	} else {
		assert.Zero(t, st.Score)
	}
}

func TestTooSmallScreenHoldsGame(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, Seed: 2})
	require.True(t, g.State().Paused)

	in := core.NewInputFrame()
	in.SetSelect(otherColor(g) + 1)
	g.Step(in)
	assert.Equal(t, 0, g.State().Moves)
	assert.Equal(t, -1, g.Engine().Frame())

	scr := core.NewScreen(20, 10)
	g.Render(scr)
	assert.Contains(t, scr.String(), "Window too small")

	g.Resize(80, 24)
	assert.False(t, g.State().Paused)
}

func TestRenderBoardAndPanel(t *testing.T) {
	g := newTestGame(t, 42)
	g.Engine().SetHoverColor(2)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()
	l := g.Layout()

	assert.Contains(t, out, "MOVES 25")
	assert.NotContains(t, out, "EXCELLENT!")
	assert.NotContains(t, out, "GAME OVER")

	for y := 0; y < engine.FieldH; y++ {
		for x := 0; x < engine.FieldW; x++ {
			r := l.Cell(x, y)
			for dx := 0; dx < r.W; dx++ {
				cell := scr.GetCell(r.X+dx, r.Y)
				assert.Equal(t, core.Swatch(g.Engine().Cell(x, y)), cell.Color)
				assert.Equal(t, blockRune, cell.Rune)
			}
		}
	}

	for i, b := range l.Buttons {
		assert.Equal(t, core.Swatch(i), scr.GetCell(b.X, b.Y).Color)
	}
	hovered := l.Buttons[2].Inset(1)
	assert.Equal(t, '┌', scr.GetCell(hovered.X, hovered.Y).Rune)
	plain := l.Buttons[3].Inset(1)
	assert.NotEqual(t, '┌', scr.GetCell(plain.X, plain.Y).Rune)
}

func TestRenderWaveOverlay(t *testing.T) {
	g := newTestGame(t, 42)
	g.Engine().Update(engine.Paint(otherColor(g)))
	g.Engine().Update(engine.NoCommand)
	require.True(t, g.Engine().Effect(0, 0))

	scr := core.NewScreen(80, 24)
	g.Render(scr)

	r := g.Layout().Cell(0, 0)
	assert.Equal(t, waveRune, scr.GetCell(r.X, r.Y).Rune)
}

func TestRenderBanner(t *testing.T) {
	g := newTestGame(t, 42)
	finish(g)

	scr := core.NewScreen(80, 24)
	g.Render(scr)
	out := scr.String()

	if g.Engine().IsClear() {
		assert.Contains(t, out, "EXCELLENT!")
	} else {
		assert.Contains(t, out, "GAME OVER")
		assert.Contains(t, out, "MOVES  0")
	}
	assert.Contains(t, out, "press R to play again")
}

func TestLayoutButtonsAreDisjointAndInside(t *testing.T) {
	l := NewLayout(MinWidth, MinHeight)
	require.True(t, l.Fits)

	screen := core.NewRect(0, 0, MinWidth, MinHeight)
	for i, a := range l.Buttons {
		frame := a.Inset(1)
		assert.True(t, frame.X >= 0 && frame.Right() <= screen.Right(), "button %d frame x", i)
		assert.True(t, frame.Y >= 0 && frame.Bottom() <= screen.Bottom(), "button %d frame y", i)
		assert.False(t, a.Intersects(l.Board), "button %d overlaps board", i)
		for j, b := range l.Buttons {
			if i != j {
				assert.False(t, a.Intersects(b), "buttons %d and %d overlap", i, j)
			}
		}

		x, y := a.Center()
		assert.Equal(t, i, l.ButtonAt(x, y))
	}
	assert.Equal(t, -1, l.ButtonAt(l.Board.X, l.Board.Y))
	assert.Less(t, l.Hint.Y, MinHeight)
	assert.False(t, NewLayout(MinWidth-1, MinHeight).Fits)
	assert.False(t, NewLayout(MinWidth, MinHeight-1).Fits)
}

func TestParseMoves(t *testing.T) {
	moves, err := ParseMoves(" 1, 3,6 ")
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 5}, moves)

	moves, err = ParseMoves("")
	require.NoError(t, err)
	assert.Empty(t, moves)

	for _, bad := range []string{"0", "7", "1,x", "1,,2"} {
		_, err := ParseMoves(bad)
		assert.Error(t, err, bad)
	}
}

func TestReplayMatchesLivePlay(t *testing.T) {
	moves := []int{1, 2, 3, 4, 5, 0, 1}

	got, err := Replay(77, moves)
	require.NoError(t, err)

	want := engine.New(77)
	for _, m := range moves {
		want.Update(engine.Paint(m))
		want.Settle()
	}
	assert.Equal(t, want.Grid().String(), got.Grid().String())
	assert.Equal(t, want.PaintedCount(), got.PaintedCount())
	assert.True(t, strings.HasPrefix(RenderASCII(got), got.Grid().String()))
}

func TestReplayStopsAtEnd(t *testing.T) {
	e := engine.New(5)
	var moves []int
	for !e.IsTerminal() {
		c := (e.AnchorColor() + 1) % engine.ColorCount
		moves = append(moves, c)
		e.Update(engine.Paint(c))
		e.Settle()
	}

	g, err := Replay(5, moves)
	require.NoError(t, err)
	assert.True(t, g.IsTerminal())
	assert.Contains(t, RenderASCII(g), "MOVES")

	_, err = Replay(5, append(moves, 0))
	assert.True(t, errors.Is(err, ErrGameFinished))

	_, err = Replay(5, []int{engine.ColorCount})
	assert.Error(t, err)
}
