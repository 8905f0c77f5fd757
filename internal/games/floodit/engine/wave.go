package engine

import "fmt"

// startWave enters PhasePainting for a repaint with color.
func (g *Game) startWave(color int) {
	if g.phase != PhaseControllable {
		panic(fmt.Sprintf("engine: cannot start painting from phase %s", g.phase))
	}
	g.phase = PhasePainting
	g.lastColor = color
	g.sweepIndex = 0
	g.waitCounter = 0
}

// finishWave leaves PhasePainting.
func (g *Game) finishWave() {
	if g.phase != PhasePainting {
		panic(fmt.Sprintf("engine: cannot finish painting from phase %s", g.phase))
	}
	g.phase = PhaseControllable
}

// stepWave advances the reveal wave by one frame.
//
// Every PaintWait+1 frames the wave lights the cells of the painted color on the
// next anti-diagonal. When a diagonal has no such cell the wave is over and the
// end of the game is evaluated.
func (g *Game) stepWave() {
	if g.waitCounter > 0 {
		g.waitCounter--
		return
	}

	if !g.lightDiagonal() {
		g.settle()
	}

	g.waitCounter = PaintWait
}

// lightDiagonal recomputes the effect mask for the current sweep index and
// advances it. It reports whether any cell was lit.
func (g *Game) lightDiagonal() bool {
	lit := false
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			on := x+y == g.sweepIndex && g.grid.At(x, y) == g.lastColor
			g.effect.Cells[y*g.grid.W+x] = on
			if on {
				lit = true
			}
		}
	}
	g.sweepIndex++
	return lit
}

// settle evaluates win and loss once the wave has passed, then hands control
// back to the player.
func (g *Game) settle() {
	switch {
	case g.grid.Uniform():
		g.isClear = true
		g.sounds = append(g.sounds, SoundCleared)
	case AllowedStepCount-g.paintedCount == 0:
		g.isOver = true
		g.sounds = append(g.sounds, SoundOver)
	}
	g.finishWave()
}
