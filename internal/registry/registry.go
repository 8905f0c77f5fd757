// Package registry maps game IDs to factories. Games register themselves in
// init(), so commands and the SSH server find them by ID alone.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/floodit/internal/core"
)

// Game is the contract between a puzzle and the terminal shell.
// Games contain pure logic with no external dependencies (especially no Bubble Tea).
// The shell owns input mapping, timing, sound and rendering to the terminal.
type Game interface {
	// ID returns the identifier used on the command line and in stored results.
	ID() string

	// Title returns a human-readable name for display (e.g., "Flood-It").
	Title() string

	// Reset starts a new game. A zero cfg.Seed asks the game to pick its own.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one frame with this frame's input and
	// returns the state plus the sounds requested during the frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst. dst is cleared beforehand.
	Render(dst *core.Screen)

	// State returns the current state without advancing the simulation.
	State() core.GameState
}

// Resizer is implemented by games that follow the terminal size without
// restarting. Games without it see the new size on their next Reset.
type Resizer interface {
	Resize(w, h int)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new, unstarted game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. Typically called from the game's init().
// Panics on an empty or duplicate ID.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if info.ID == "" {
		panic("registry: empty game ID")
	}
	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	if info.Title == "" {
		info.Title = info.ID
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns all registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	slices.SortFunc(result, func(a, b GameInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return result
}

// Create instantiates a new game by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Title returns the display name of a registered game.
func Title(id string) (string, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info.Title, ok
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Title(id)
	return ok
}
