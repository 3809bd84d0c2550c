package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/storage"
)

func TestParsePattern(t *testing.T) {
	dirs, err := parsePattern("up, left,,Down,r")
	if err != nil {
		t.Fatalf("parsePattern: %v", err)
	}
	want := []engine.Direction{engine.Up, engine.Left, engine.Down, engine.Right}
	if len(dirs) != len(want) {
		t.Fatalf("got %v, want %v", dirs, want)
	}
	for i := range want {
		if dirs[i] != want[i] {
			t.Errorf("dirs[%d] = %v, want %v", i, dirs[i], want[i])
		}
	}

	if _, err := parsePattern("up,sideways"); !errors.Is(err, engine.ErrUnknownDirection) {
		t.Errorf("expected ErrUnknownDirection, got %v", err)
	}
	if _, err := parsePattern(" , "); err == nil {
		t.Error("expected error for empty pattern")
	}
}

func TestSimulateGameDeterministic(t *testing.T) {
	rules := config.Default().Game
	pattern := []engine.Direction{engine.Up, engine.Left, engine.Down, engine.Right}

	for _, seed := range []int64{1, 42, 2048} {
		a := simulateGame(rules, seed, pattern)
		b := simulateGame(rules, seed, pattern)
		if a != b {
			t.Errorf("seed %d: results differ: %+v vs %+v", seed, a, b)
		}
	}
}

func TestSimulateGameEnds(t *testing.T) {
	rules := config.Default().Game
	pattern := []engine.Direction{engine.Up, engine.Left, engine.Down, engine.Right}

	r := simulateGame(rules, 7, pattern)
	if r.Stalled {
		t.Fatal("a cycle over all four directions cannot stall")
	}
	if !r.Status.Terminal() {
		t.Errorf("status = %v, want terminal", r.Status)
	}
	if r.Score <= 0 || r.Moves <= 0 {
		t.Errorf("score %d moves %d, want both positive", r.Score, r.Moves)
	}
	if !engine.IsPowerOfTwo(r.MaxTile) {
		t.Errorf("max tile %d is not a power of two", r.MaxTile)
	}
}

func TestSimulateGameStalls(t *testing.T) {
	rules := config.Default().Game

	// Sliding only left packs every row, after which nothing changes
	for _, seed := range []int64{1, 2, 3, 4, 5} {
		r := simulateGame(rules, seed, []engine.Direction{engine.Left})
		if r.Stalled && r.Status != engine.Playing {
			t.Errorf("seed %d: stalled with status %v", seed, r.Status)
		}
		if !r.Stalled && r.Status != engine.Lost {
			t.Errorf("seed %d: expected stall or loss, got %+v", seed, r)
		}
	}
}

func TestSimResultLabels(t *testing.T) {
	tests := []struct {
		res     simResult
		label   string
		outcome storage.Outcome
	}{
		{simResult{Status: engine.Won}, "won", storage.OutcomeWon},
		{simResult{Status: engine.Lost}, "lost", storage.OutcomeLost},
		{simResult{Status: engine.Playing, Stalled: true}, "stalled", storage.OutcomeAborted},
	}

	for _, tt := range tests {
		if got := tt.res.statusLabel(); got != tt.label {
			t.Errorf("statusLabel() = %q, want %q", got, tt.label)
		}
		if got := tt.res.outcome(); got != tt.outcome {
			t.Errorf("outcome() = %q, want %q", got, tt.outcome)
		}
	}
}

func TestSimulateGameLowWinTile(t *testing.T) {
	rules := config.Default().Game
	rules.WinTile = 8
	pattern := []engine.Direction{engine.Up, engine.Left, engine.Down, engine.Right}

	r := simulateGame(rules, 11, pattern)
	if r.Status != engine.Won {
		t.Fatalf("status = %v, want won", r.Status)
	}
	if r.MaxTile < 8 {
		t.Errorf("max tile %d, want >= 8", r.MaxTile)
	}
	if r.outcome() != storage.OutcomeWon {
		t.Errorf("outcome = %q, want won", r.outcome())
	}
}
