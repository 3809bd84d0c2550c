package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/platform/tui"
	"github.com/vovakirdan/term2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a single game",
	Long: `Start a single game of 2048.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  Mouse drag       - Slide tiles
  P                - Pause
  R                - Restart
  B/Esc            - Leave (when paused or over)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Examples:
  term2048 play
  term2048 play --seed 42
  term2048 play --config ./my-2048.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	store := openStore()

	opts := tui.GameOptions{
		Rules:   appConfig.Game,
		Gesture: appConfig.UI.Gesture,
		Player:  playerName(),
	}
	// A nil *storage.Store must not become a non-nil interface
	if store != nil {
		opts.Recorder = store
	}

	final, runErr := tui.Run(runtimeConfig(), opts)
	if runErr == nil {
		if err := final.SaveErr(); err != nil {
			logger.Warn("result was not saved", "error", err)
		}
		printSummary(final.State(), store, opts.Player)
	}

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// printSummary prints the final score and how it compares to the records.
func printSummary(state core.GameState, store *storage.Store, player string) {
	if state.Score == 0 {
		return
	}
	fmt.Printf("Score: %d  Best tile: %d  Moves: %d\n", state.Score, state.MaxTile, state.Moves)
	if store == nil {
		return
	}

	if high, err := store.HighScore(); err == nil && high > 0 && state.Score >= high {
		fmt.Println("New high score!")
		return
	}
	if player == "" {
		player = storage.DefaultPlayer
	}
	if best, err := store.PlayerBest(player); err == nil && best != nil {
		fmt.Printf("Your best: %d\n", best.Score)
	}
}

// runtimeConfig builds the host config from the terminal and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = appConfig.UI.TickRate
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. Games still work without it.
func openStore() *storage.Store {
	store, err := storage.Open(appConfig.Storage.DBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
