package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic level generation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickDuration returns the simulated time covered by one tick.
// A non-positive tick rate falls back to 60 ticks per second.
func (c RuntimeConfig) TickDuration() time.Duration {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return time.Second / time.Duration(rate)
}

// GameState represents the current state of a game as seen by the platform.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int    // Current cumulative score
	HighScore int    // Best score known to the game
	Level     int    // Current level number
	GameOver  bool   // Whether the run has ended
	Paused    bool   // Whether the game is paused
	Outcome   string // Why the run ended, empty while it is going
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
