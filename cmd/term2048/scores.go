package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores and overall statistics.

Examples:
  term2048 scores
  term2048 scores --limit 20
  term2048 scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Println("All scores cleared.")
		return nil
	}

	scores, err := store.TopScores(flagLimit)
	if err != nil {
		return fmt.Errorf("error retrieving scores: %w", err)
	}

	fmt.Println("High Scores - 2048")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'term2048 play' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %-12s  %s\n", "Rank", "Score", "Tile", "Moves", "Result", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "----", "-----", "------", "------", "----")

	for i, r := range scores {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6d  %-8s  %-12s  %s\n",
			i+1, r.Score, r.MaxTile, r.Moves, r.Outcome, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats()
	if err != nil {
		return fmt.Errorf("error retrieving stats: %w", err)
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.Games, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}
