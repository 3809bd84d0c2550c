package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagGames   int
	flagPattern string
	flagRecord  bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless games with a fixed move cycle",
	Long: `Play games without a terminal UI by repeating a cycle of moves.

Game i uses seed+i, so a fixed --seed reproduces every game.
A game that makes no progress for a whole cycle is reported as stalled.

Examples:
  term2048 simulate
  term2048 simulate --games 100 --seed 7
  term2048 simulate --pattern up,right --record`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagGames, "games", 1, "Number of games to play")
	simulateCmd.Flags().StringVar(&flagPattern, "pattern", "up,left,down,right", "Comma separated move cycle")
	simulateCmd.Flags().BoolVar(&flagRecord, "record", false, "Record results in the scores database")
}

// simResult is the outcome of one headless game.
type simResult struct {
	Seed    int64
	Score   int
	MaxTile int
	Moves   int
	Status  engine.Status
	Stalled bool // Still playing but the cycle no longer moves anything
}

func (r simResult) outcome() storage.Outcome {
	switch r.Status {
	case engine.Won:
		return storage.OutcomeWon
	case engine.Lost:
		return storage.OutcomeLost
	default:
		return storage.OutcomeAborted
	}
}

func (r simResult) statusLabel() string {
	if r.Stalled {
		return "stalled"
	}
	return r.Status.String()
}

// parsePattern parses a comma separated list of directions.
func parsePattern(s string) ([]engine.Direction, error) {
	var dirs []engine.Direction
	for _, part := range strings.Split(s, ",") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		dir, err := engine.ParseDirection(part)
		if err != nil {
			return nil, err
		}
		dirs = append(dirs, dir)
	}
	if len(dirs) == 0 {
		return nil, fmt.Errorf("pattern %q has no directions", s)
	}
	return dirs, nil
}

// simulateGame plays one game by cycling through pattern until the game
// ends or a full cycle passes without a change.
func simulateGame(rules config.GameConfig, seed int64, pattern []engine.Direction) simResult {
	eng := engine.New(
		engine.WithSeed(seed),
		engine.WithWinTile(rules.WinTile),
		engine.WithFourPercent(rules.SpawnFourPercent),
	)
	eng.NewGame()

	res := simResult{Seed: seed}
	idle := 0
	for i := 0; !eng.Status().Terminal(); i++ {
		if eng.Move(pattern[i%len(pattern)]).Moved {
			idle = 0
			continue
		}
		idle++
		if idle >= len(pattern) && !eng.Status().Terminal() {
			res.Stalled = true
			break
		}
	}

	snap := eng.Snapshot()
	res.Score = snap.Score
	res.MaxTile = snap.MaxTile
	res.Moves = snap.Moves
	res.Status = snap.Status
	return res
}

func runSimulate(_ *cobra.Command, _ []string) error {
	if flagGames < 1 {
		return fmt.Errorf("--games must be at least 1")
	}
	pattern, err := parsePattern(flagPattern)
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagRecord {
		store, err = storage.Open(appConfig.Storage.DBPath)
		if err != nil {
			return fmt.Errorf("error opening scores database: %w", err)
		}
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	player := flagPlayer
	if player == "" {
		player = "simulate"
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %s\n", "Game", "Seed", "Score", "Tile", "Moves", "Status")
	fmt.Printf("  %-4s  %-20s  %-8s  %-6s  %-6s  %s\n", "----", "----", "-----", "----", "-----", "------")

	var total, best, wins int
	for i := 0; i < flagGames; i++ {
		r := simulateGame(appConfig.Game, seed+int64(i), pattern)
		fmt.Printf("  %-4d  %-20d  %-8d  %-6d  %-6d  %s\n", i+1, r.Seed, r.Score, r.MaxTile, r.Moves, r.statusLabel())

		total += r.Score
		best = max(best, r.Score)
		if r.Status == engine.Won {
			wins++
		}

		if store != nil && r.Score > 0 {
			if _, err := store.SaveResult(storage.Result{
				RunID:   uuid.NewString(),
				Player:  player,
				Score:   r.Score,
				MaxTile: r.MaxTile,
				Moves:   r.Moves,
				Outcome: r.outcome(),
			}); err != nil {
				logger.Warn("result was not saved", "game", i+1, "error", err)
			}
		}
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Average: %.0f\n",
		flagGames, wins, best, float64(total)/float64(flagGames))
	return nil
}
