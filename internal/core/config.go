package core

// TickRate is the fixed simulation rate in ticks per second. Game tuning is
// expressed per tick, so every platform steps games at exactly this rate.
const TickRate = 60

// RuntimeConfig contains settings the platform passes to the game loop.
type RuntimeConfig struct {
	ScreenW   int // Screen width in characters (terminal) or pixels (window)
	ScreenH   int // Screen height in characters (terminal) or pixels (window)
	FrameRate int // Redraws per second; does not change the simulation rate
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: TickRate,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the player lost (or hit the score threshold)
	Won      bool // Whether the player reached the goal
}

// Terminal reports whether the session has ended and waits for a restart.
func (s GameState) Terminal() bool {
	return s.GameOver || s.Won
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
