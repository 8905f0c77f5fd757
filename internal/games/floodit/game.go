// Package floodit adapts the Flood-It engine to the platform: input mapping,
// restart handling, terminal layout and rendering.
package floodit

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/floodit/internal/core"
	"github.com/vovakirdan/floodit/internal/games/floodit/engine"
	"github.com/vovakirdan/floodit/internal/registry"
)

// Registry identifier and display name.
const (
	ID    = "floodit"
	Title = "Flood-It"
)

// Game implements registry.Game around an engine.Game.
type Game struct {
	eng     *engine.Game
	layout  Layout
	screenW int
	screenH int
	seeds   func() int64
}

// New creates an unstarted game. Call Reset before stepping it.
func New() *Game {
	return &Game{seeds: clockSeed}
}

func init() {
	registry.Register(registry.GameInfo{ID: ID, Title: Title}, func() registry.Game {
		return New()
	})
}

func clockSeed() int64 {
	return time.Now().UnixNano()
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return Title }

// Reset starts a new puzzle. A zero seed is replaced by one derived from the clock.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	seed := cfg.Seed
	if seed == 0 {
		seed = g.seeds()
		log.Debug("random seed", "seed", seed)
	}

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = NewLayout(cfg.ScreenW, cfg.ScreenH)
	g.eng = engine.New(seed)
	log.Info("new game", "seed", seed)
}

// Resize adapts the layout to a new screen size without touching the puzzle.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.layout = NewLayout(w, h)
}

// Engine exposes the running simulation.
func (g *Game) Engine() *engine.Game { return g.eng }

// Layout returns the current screen layout.
func (g *Game) Layout() Layout { return g.layout }

// Step maps one frame of platform input onto the engine and advances it.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.eng.IsTerminal() && (in.Has(core.ActionRestart) || in.Has(core.ActionClick)) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}

	// Hold the simulation while the board cannot be seen.
	if !g.layout.Fits {
		return core.StepResult{State: g.State()}
	}

	g.trackHover(in)
	cmd := g.command(in)

	g.eng.Update(cmd)

	return core.StepResult{
		State:  g.State(),
		Sounds: g.eng.DrainSounds(),
	}
}

// trackHover updates the highlighted palette entry from pointer motion and
// cursor keys.
func (g *Game) trackHover(in core.InputFrame) {
	switch {
	case in.Has(core.ActionHover) || in.Has(core.ActionClick):
		g.eng.SetHoverColor(g.layout.ButtonAt(in.Pointer.X, in.Pointer.Y))
	case in.Has(core.ActionUp), in.Has(core.ActionDown),
		in.Has(core.ActionLeft), in.Has(core.ActionRight):
		g.eng.SetHoverColor(moveCursor(g.eng.HoverColor(), in))
	}
}

// command picks the paint request for this frame, if any.
func (g *Game) command(in core.InputFrame) engine.Command {
	switch {
	case in.Has(core.ActionSelect):
		if in.Select >= 1 && in.Select <= engine.ColorCount {
			return engine.Paint(in.Select - 1)
		}
	case in.Has(core.ActionClick):
		if c := g.layout.ButtonAt(in.Pointer.X, in.Pointer.Y); c >= 0 {
			return engine.Paint(c)
		}
	case in.Has(core.ActionConfirm):
		if c := g.eng.HoverColor(); c >= 0 {
			return engine.Paint(c)
		}
	}
	return engine.NoCommand
}

// State returns the platform view of the game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		GameOver: g.eng.IsTerminal(),
		Won:      g.eng.IsClear(),
		Paused:   !g.layout.Fits,
		Moves:    g.eng.PaintedCount(),
		Seed:     g.eng.Seed(),
	}
	if st.Won {
		st.Score = g.eng.MovesLeft()
	}
	return st
}
