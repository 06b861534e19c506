package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Cosmetic animation frames per second (default 30)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 30,
		Seed:      0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score       int  // Current score
	SecondsLeft int  // Countdown seconds remaining
	Waiting     bool // Instructions shown, countdown not started yet
	GameOver    bool // Whether the game has ended
}

// Running reports whether the countdown should be ticking.
func (s GameState) Running() bool {
	return !s.Waiting && !s.GameOver
}

// StepResult is returned by Game.Step() and Game.Tick().
type StepResult struct {
	State GameState

	// Started is true when this call moved the game from waiting
	// (or game over) into a fresh running session.
	Started bool

	// Ended is true when this call moved the game into game over.
	Ended bool
}
