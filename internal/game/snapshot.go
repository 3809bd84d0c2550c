package game

import "github.com/vovakirdan/term2048/internal/engine"

// StateLabel names the game state for snapshots and logs.
type StateLabel string

const (
	StatePlaying     StateLabel = "playing"
	StatePaused      StateLabel = "paused"
	StateWin         StateLabel = "win"
	StateGameOver    StateLabel = "game_over"
	StatePausedSmall StateLabel = "paused_small_window"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick   uint64
	Seed   int64
	Engine engine.Snapshot
	State  StateLabel
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.eng.Status() == engine.Won:
		state = StateWin
	case g.eng.Status() == engine.Lost:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:   g.tick,
		Seed:   g.seed,
		Engine: g.eng.Snapshot(),
		State:  state,
	}
}
