package engine

import (
	"math/rand"
	"time"
)

// Rand is the random source used for spawning. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Option configures an Engine.
type Option func(*Engine)

// WithRand sets the random source.
func WithRand(r Rand) Option {
	return func(e *Engine) {
		e.rng = r
	}
}

// WithSeed seeds a math/rand source. Useful for reproducible games.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWinTile sets the tile value that wins the game.
// Values that are not a power of two >= MinWinTile are ignored.
func WithWinTile(v int) Option {
	return func(e *Engine) {
		if v >= MinWinTile && IsPowerOfTwo(v) {
			e.winTile = v
		}
	}
}

// WithFourPercent sets the chance in percent [0, 100] that a spawned tile is a 4.
func WithFourPercent(p int) Option {
	return func(e *Engine) {
		if p >= 0 && p <= 100 {
			e.fourPercent = p
		}
	}
}

// Engine owns the grid, score and status of a single game session.
// It is not safe for concurrent use.
type Engine struct {
	grid        Grid
	score       int
	moves       int
	status      Status
	rng         Rand
	winTile     int
	fourPercent int
}

// New creates an engine. NewGame must be called before the first Move.
func New(opts ...Option) *Engine {
	e := &Engine{
		winTile:     DefaultWinTile,
		fourPercent: DefaultFourPercent,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return e
}

// NewGame zeroes the grid, resets score and status, and spawns two tiles.
func (e *Engine) NewGame() {
	e.grid = Grid{}
	e.score = 0
	e.moves = 0
	e.status = Playing
	e.spawn()
	e.spawn()
}

// Move applies one turn in dir.
//
// If no legal move exists the status becomes Lost and nothing else changes.
// Otherwise the grid is slid; when any row changed, the score is updated
// and a new tile is spawned (or the status becomes Won if the win tile is
// on the board). Move does not refuse input in a terminal status.
func (e *Engine) Move(dir Direction) MoveResult {
	if !CanMove(e.grid) {
		e.status = Lost
		return MoveResult{}
	}

	grid, gained, changed := Slide(e.grid, dir)
	if !changed {
		return MoveResult{}
	}

	e.grid = grid
	e.score += gained
	e.moves++

	return MoveResult{
		Moved:   true,
		Gained:  gained,
		Spawned: e.spawn(),
	}
}

// spawn places a 2 or 4 in a random empty cell. The win check runs first:
// if the win tile is on the board the status becomes Won and nothing spawns.
func (e *Engine) spawn() *Tile {
	if MaxTile(e.grid) >= e.winTile {
		e.status = Won
		return nil
	}
	if CountTiles(e.grid) == Side*Side {
		return nil
	}

	for {
		x := e.rng.Intn(Side)
		y := e.rng.Intn(Side)
		if e.grid[y][x] != 0 {
			continue
		}
		value := 2
		if e.rng.Intn(100) < e.fourPercent {
			value = 4
		}
		e.grid[y][x] = value
		return &Tile{X: x, Y: y, Value: value}
	}
}

// Grid returns a copy of the board.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the sum of all merged tile values in this game.
func (e *Engine) Score() int {
	return e.score
}

// Status returns the current game status.
func (e *Engine) Status() Status {
	return e.status
}

// Moves returns the number of moves that changed the board.
func (e *Engine) Moves() int {
	return e.moves
}

// WinTile returns the configured win tile.
func (e *Engine) WinTile() int {
	return e.winTile
}

// Restore replaces the engine state with a snapshot, e.g. to set up a
// position. MaxTile is derived from the grid and ignored.
func (e *Engine) Restore(s Snapshot) {
	e.grid = s.Grid
	e.score = s.Score
	e.status = s.Status
	e.moves = s.Moves
}

// Snapshot returns the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Grid:    e.grid,
		Score:   e.score,
		Status:  e.status,
		Moves:   e.moves,
		MaxTile: MaxTile(e.grid),
	}
}
