package core

// RuntimeConfig contains configuration passed to a game at reset.
// Hosts use it to share screen size and the RNG seed.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed, 0 means the host picks one from the clock
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is what a host needs to know about a running game.
type GameState struct {
	Score    int  // Current score
	MaxTile  int  // Largest tile on the board
	Moves    int  // Moves that changed the board
	GameOver bool // Whether the game has ended (won or lost)
	Won      bool // Whether the game ended with a win
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Step after each tick.
type StepResult struct {
	State GameState
	Moved bool // A move changed the board during this tick
}
