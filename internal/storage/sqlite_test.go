package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenExpandsHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.term2048/scores.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".term2048", "scores.db")); err != nil {
		t.Errorf("expected database under home: %v", err)
	}
}

func TestStoreSaveAndTopScores(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{Player: "ann", Score: 100, MaxTile: 64, Moves: 40, Outcome: OutcomeLost},
		{Player: "bob", Score: 50, MaxTile: 32, Moves: 20, Outcome: OutcomeLost},
		{Player: "ann", Score: 20000, MaxTile: 2048, Moves: 900, Outcome: OutcomeWon},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult() failed: %v", err)
		}
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	if scores[0].Score != 20000 || scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not in descending order: %+v", scores)
	}
	if scores[0].Outcome != OutcomeWon || scores[0].MaxTile != 2048 || scores[0].Moves != 900 {
		t.Errorf("Top result fields not persisted: %+v", scores[0])
	}
	if scores[0].RunID == "" || scores[0].RunID == scores[1].RunID {
		t.Error("Each result should get a unique run ID")
	}
	if scores[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		store.SaveResult(Result{Score: (i + 1) * 100, Outcome: OutcomeLost})
	}

	scores, err := store.TopScores(3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %+v", scores)
	}
	if scores[0].Player != DefaultPlayer {
		t.Errorf("Player = %q, want default", scores[0].Player)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected 0 for empty store, got %d", high)
	}

	store.SaveResult(Result{Score: 300, Outcome: OutcomeLost})
	store.SaveResult(Result{Score: 700, Outcome: OutcomeLost})

	high, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 700 {
		t.Errorf("Expected 700, got %d", high)
	}
}

func TestStoreDuplicateRunID(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveResult(Result{RunID: "run-1", Score: 10, Outcome: OutcomeLost}); err != nil {
		t.Fatalf("SaveResult() failed: %v", err)
	}
	if _, err := store.SaveResult(Result{RunID: "run-1", Score: 20, Outcome: OutcomeLost}); err == nil {
		t.Error("Saving the same run twice should fail")
	}
}

func TestStorePlayerBest(t *testing.T) {
	store := openTestStore(t)

	best, err := store.PlayerBest("ann")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best != nil {
		t.Errorf("Expected nil for unknown player, got %+v", best)
	}

	store.SaveResult(Result{Player: "ann", Score: 120, Outcome: OutcomeLost})
	store.SaveResult(Result{Player: "ann", Score: 480, MaxTile: 64, Outcome: OutcomeLost})
	store.SaveResult(Result{Player: "bob", Score: 9000, Outcome: OutcomeLost})

	best, err = store.PlayerBest("ann")
	if err != nil {
		t.Fatalf("PlayerBest() failed: %v", err)
	}
	if best == nil || best.Score != 480 || best.MaxTile != 64 {
		t.Errorf("PlayerBest(ann) = %+v, want score 480", best)
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 0 || stats.HighScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("Empty stats = %+v", stats)
	}

	store.SaveResult(Result{Score: 100, MaxTile: 64, Outcome: OutcomeLost})
	store.SaveResult(Result{Score: 300, MaxTile: 2048, Outcome: OutcomeWon})

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Games != 2 || stats.Wins != 1 {
		t.Errorf("Games/Wins = %d/%d, want 2/1", stats.Games, stats.Wins)
	}
	if stats.HighScore != 300 || stats.BestTile != 2048 {
		t.Errorf("HighScore/BestTile = %d/%d", stats.HighScore, stats.BestTile)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %v, want 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	store.SaveResult(Result{Score: 100, Outcome: OutcomeLost})
	if err := store.ClearScores(); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	scores, err := store.TopScores(10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("Expected no scores after clear, got %d", len(scores))
	}
}
