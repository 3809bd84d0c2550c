// Package engine implements the 2048 board-state engine: the grid, the
// rotate-and-slide move algorithm, random tile spawning and win/loss
// detection. It has no dependencies on any UI or storage layer.
package engine

import (
	"errors"
	"fmt"
	"strings"
)

// Side is the board dimension.
const Side = 4

// DefaultWinTile is the tile value that wins the game.
const DefaultWinTile = 2048

// MinWinTile is the smallest accepted win tile. The two opening spawns
// (at most 4 each, never merged) can not reach it.
const MinWinTile = 8

// DefaultFourPercent is the chance (in percent) that a spawned tile is a 4.
const DefaultFourPercent = 10

// Grid is a Side x Side board indexed as grid[y][x]. Zero is an empty cell.
type Grid [Side][Side]int

// Direction represents a move direction.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists all directions in declaration order.
var Directions = []Direction{Up, Down, Left, Right}

// ErrUnknownDirection is returned by ParseDirection for unrecognized input.
var ErrUnknownDirection = errors.New("engine: unknown direction")

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// quarterTurns is the number of clockwise rotations that bring a slide in
// direction d onto the "slide left" orientation.
func (d Direction) quarterTurns() int {
	switch d {
	case Up:
		return 3
	case Right:
		return 2
	case Down:
		return 1
	default:
		return 0
	}
}

// ParseDirection converts user input such as "up", "L" or "Right" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Status is the game status.
type Status int

const (
	Playing Status = iota
	Won
	Lost
)

// String returns the lowercase status name.
func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == Won || s == Lost
}

// Tile is a single placed tile.
type Tile struct {
	X, Y  int
	Value int
}

// MoveResult describes the effect of a single Move call.
type MoveResult struct {
	Moved   bool  // At least one row changed
	Gained  int   // Score added by merges
	Spawned *Tile // Tile placed after the move, nil if none
}

// Snapshot captures the complete engine state.
type Snapshot struct {
	Grid    Grid
	Score   int
	Status  Status
	Moves   int
	MaxTile int
}
