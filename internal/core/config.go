package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and step length.
type RuntimeConfig struct {
	ScreenW  int // Screen width in cells
	ScreenH  int // Screen height in cells
	TickRate int // Simulation ticks per second (default 60)

	// CellW and CellH are the world units covered by one screen cell.
	// Sprite hosts use 1x1 (one cell per pixel); zero selects the game default.
	CellW int
	CellH int
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Bonus    int  // Bonus items collected or spawned (stars)
	GameOver bool // Whether the game is in its game-over phase
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
