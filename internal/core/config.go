package core

import "time"

// RuntimeConfig contains configuration passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic target placement
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState is a read-only summary of the session for the platform.
type GameState struct {
	Score      int           // Current player score
	Remaining  time.Duration // Time left in the round
	RoundOver  bool          // Round ended and leaderboard is showing
	Terminated bool          // Session finished; platform should exit
}

// StepResult is returned by Session.Step after each frame.
type StepResult struct {
	State GameState
}
