package core

// RuntimeConfig contains configuration passed to games at initialization.
// The platform layer fills it from flags and the YAML config.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second driving animation (default 30)
	Seed     int64 // Board seed; 0 means pick one from the clock in the platform layer
	// FixedSeed keeps Seed across restarts instead of drawing a new one.
	FixedSeed bool

	BoardW int // Board columns
	BoardH int // Board rows

	// Level selects a level by ID. Empty means a generated board, or the
	// first level in campaign mode.
	Level string
	// LevelsDir overrides the built-in level pack with a directory of YAML files.
	LevelsDir string

	HistoryLimit     int  // Undo depth, 0 for unbounded
	FrameTicks       int  // Frames between animation ticks
	EndWhenContained bool // Finish the game once the fire cannot spread
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:          80,
		ScreenH:          24,
		TickRate:         30,
		Seed:             0,
		BoardW:           8,
		BoardH:           8,
		HistoryLimit:     0,
		FrameTicks:       1,
		EndWhenContained: true,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Houses still standing
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
	// Status is a short line describing what the last input did, if anything.
	Status string
}

// Report describes a finished game for persistence.
type Report struct {
	Score         int
	InitialHouses int
	Swaps         int
	Turns         int
	Seed          int64
	Width         int
	Height        int
	Level         string
}
