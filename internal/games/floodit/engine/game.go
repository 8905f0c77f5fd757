// Package engine implements the Flood-It simulation: the colored grid, the
// anchored repaint, move accounting and the frame-stepped reveal wave.
//
// The engine is pure and single-threaded. A platform drives it by calling
// Update once per frame and then reading the grid, flags and queued sounds.
package engine

import (
	"fmt"
	"math/rand"
)

// Fixed rules of the puzzle.
const (
	FieldW           = 14 // Grid width in cells
	FieldH           = 14 // Grid height in cells
	ColorCount       = 6  // Number of distinct colors
	AllowedStepCount = 25 // Moves available per game
	PaintWait        = 1  // Frames skipped between two wave steps
	FPS              = 30 // Frame rate the wave is paced for
)

// Sound identifiers queued for the platform to play.
const (
	SoundRejected = "ng.wav"
	SoundCleared  = "bravo.wav"
	SoundOver     = "crash.wav"
)

// Command is the per-frame input to Update: either nothing or a paint request.
type Command struct {
	paint bool
	color int
}

// NoCommand is the command for a frame without input.
var NoCommand = Command{}

// Paint returns a command requesting the anchor region be repainted with color.
func Paint(color int) Command {
	return Command{paint: true, color: color}
}

// Color returns the requested color and whether the command is a paint request.
func (c Command) Color() (int, bool) {
	return c.color, c.paint
}

// String returns a readable form of the command.
func (c Command) String() string {
	if !c.paint {
		return "None"
	}
	return fmt.Sprintf("Paint(%d)", c.color)
}

// Phase is the animation sub-state of a game.
type Phase int

const (
	PhaseControllable Phase = iota // Waiting for a paint command
	PhasePainting                  // Revealing the last repaint
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseControllable:
		return "controllable"
	case PhasePainting:
		return "painting"
	default:
		return "unknown"
	}
}

// Game holds the full state of one puzzle session.
// A restart discards the Game and creates a new one.
type Game struct {
	rng  *rand.Rand
	seed int64

	grid   Grid
	effect Mask

	paintedCount int
	isClear      bool
	isOver       bool
	hoverColor   int
	frame        int
	sounds       []string

	// Reveal wave, meaningful only in PhasePainting
	phase       Phase
	lastColor   int
	sweepIndex  int
	waitCounter int
}

// New creates a game on a FieldW×FieldH grid filled with uniform random colors
// drawn from a source seeded with seed.
func New(seed int64) *Game {
	g := newWithGrid(NewGrid(FieldW, FieldH), seed)
	g.fillRandom()
	return g
}

// newWithGrid creates a game around an existing grid without randomizing it.
func newWithGrid(grid Grid, seed int64) *Game {
	for i, c := range grid.Cells {
		if c < 0 || c >= ColorCount {
			panic(fmt.Sprintf("engine: cell %d holds invalid color %d", i, c))
		}
	}
	return &Game{
		rng:        rand.New(rand.NewSource(seed)),
		seed:       seed,
		grid:       grid,
		effect:     NewMask(grid.W, grid.H),
		hoverColor: -1,
		frame:      -1,
		phase:      PhaseControllable,
	}
}

// fillRandom overwrites every cell with an independently drawn color.
func (g *Game) fillRandom() {
	for y := 0; y < g.grid.H; y++ {
		for x := 0; x < g.grid.W; x++ {
			g.grid.Set(x, y, g.rng.Intn(ColorCount))
		}
	}
}

// Update advances the game by one frame.
// Once the game is cleared or over, Update does nothing.
func (g *Game) Update(cmd Command) {
	if g.isClear || g.isOver {
		return
	}

	g.frame++

	switch g.phase {
	case PhaseControllable:
		if color, ok := cmd.Color(); ok {
			g.paint(color)
		}
	case PhasePainting:
		g.stepWave()
	}
}

// paint handles a paint request made while controllable.
func (g *Game) paint(color int) {
	if color < 0 || color >= ColorCount {
		panic(fmt.Sprintf("engine: paint color %d out of range [0,%d)", color, ColorCount))
	}

	if color == g.anchor() {
		g.sounds = append(g.sounds, SoundRejected)
		return
	}

	g.grid.FloodFill(0, 0, color)
	g.paintedCount++
	g.startWave(color)
}

// anchor returns the color of the top-left cell.
func (g *Game) anchor() int {
	return g.grid.At(0, 0)
}

// Seed returns the seed the game was created with.
func (g *Game) Seed() int64 { return g.seed }

// Width returns the grid width.
func (g *Game) Width() int { return g.grid.W }

// Height returns the grid height.
func (g *Game) Height() int { return g.grid.H }

// Cell returns the color at (x, y).
func (g *Game) Cell(x, y int) int { return g.grid.At(x, y) }

// Grid returns a copy of the grid.
func (g *Game) Grid() Grid { return g.grid.Clone() }

// AnchorColor returns the color currently being flooded from the top-left cell.
func (g *Game) AnchorColor() int { return g.anchor() }

// Effect reports whether (x, y) is lit by the reveal wave this frame.
func (g *Game) Effect(x, y int) bool { return g.effect.At(x, y) }

// PaintedCount returns the number of accepted moves.
func (g *Game) PaintedCount() int { return g.paintedCount }

// MovesLeft returns the number of moves still available.
func (g *Game) MovesLeft() int { return AllowedStepCount - g.paintedCount }

// IsClear reports whether the grid was reduced to one color.
func (g *Game) IsClear() bool { return g.isClear }

// IsOver reports whether the moves ran out before a clear.
func (g *Game) IsOver() bool { return g.isOver }

// IsTerminal reports whether the game has ended either way.
func (g *Game) IsTerminal() bool { return g.isClear || g.isOver }

// Phase returns the animation sub-state.
func (g *Game) Phase() Phase { return g.phase }

// Frame returns the index of the last processed frame, -1 before the first.
func (g *Game) Frame() int { return g.frame }

// HoverColor returns the highlighted palette entry, -1 when none.
func (g *Game) HoverColor() int { return g.hoverColor }

// SetHoverColor records the palette entry under the pointer. It is display
// state only and never affects the simulation.
func (g *Game) SetHoverColor(color int) {
	if color < 0 || color >= ColorCount {
		color = -1
	}
	g.hoverColor = color
}

// PendingSounds returns the queued sound identifiers without consuming them.
func (g *Game) PendingSounds() []string {
	out := make([]string, len(g.sounds))
	copy(out, g.sounds)
	return out
}

// DrainSounds returns the queued sound identifiers and empties the queue.
func (g *Game) DrainSounds() []string {
	out := g.sounds
	g.sounds = nil
	return out
}
