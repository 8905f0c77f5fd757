package engine

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Seed         int64
	Frame        int
	Phase        Phase
	PaintedCount int
	Clear        bool
	Over         bool
	Hover        int
	Grid         string // Grid.String() form
	Lit          int    // Cells lit by the reveal wave
	Sounds       int    // Queued sound identifiers
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Seed:         g.seed,
		Frame:        g.frame,
		Phase:        g.phase,
		PaintedCount: g.paintedCount,
		Clear:        g.isClear,
		Over:         g.isOver,
		Hover:        g.hoverColor,
		Grid:         g.grid.String(),
		Lit:          g.effect.Count(),
		Sounds:       len(g.sounds),
	}
}

// Settle runs frames without input until the reveal wave has finished and
// returns the number of frames consumed. It returns 0 when the game is already
// controllable or finished.
func (g *Game) Settle() int {
	frames := 0
	for g.phase == PhasePainting && !g.IsTerminal() {
		g.Update(NoCommand)
		frames++
	}
	return frames
}
