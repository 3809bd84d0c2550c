package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the interactive menu",
	Long: `Start term2048 in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select.
After a game you return to the menu to play again or see the scores.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  term2048 menu
  term2048 menu --fps 60
  term2048 menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	defer func() {
		if store == nil {
			return
		}
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}()

	opts := tui.SessionOptions{
		Rules:   appConfig.Game,
		Gesture: appConfig.UI.Gesture,
		Player:  playerName(),
	}
	if store != nil {
		opts.Store = store
	}

	if err := tui.RunSession(runtimeConfig(), opts); err != nil {
		return fmt.Errorf("error running menu: %w", err)
	}
	return nil
}
