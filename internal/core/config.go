package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultTickRate is the fixed frame rate the puzzle is paced for.
const DefaultTickRate = 30

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
		Seed:     0, // 0 means derive from the clock
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score (moves left over on a clear)
	GameOver bool  // Whether the game has ended, won or lost
	Won      bool  // Whether the game ended with a clear
	Paused   bool  // Whether the simulation is held by the platform (e.g. window too small)
	Moves    int   // Moves used so far
	Seed     int64 // Seed the current game was generated from
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState

	// Sounds lists the sound identifiers requested during this tick, in order.
	// The platform plays each exactly once.
	Sounds []string
}
