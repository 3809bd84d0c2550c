// term2048 plays 2048 in the terminal, over SSH, or through MCP tools.
//
// Usage:
//
//	term2048 play            - Play a single game
//	term2048 menu            - Menu with new game and high scores
//	term2048 serve           - Start SSH server for remote play
//	term2048 mcp             - Serve MCP tools over stdio
//	term2048 scores          - Show high scores
//	term2048 simulate        - Play headless games with a fixed move cycle
//	term2048 config          - Print the default config file
//
// Global flags:
//
//	--config <path> - Config file (default: search ~/.term2048, ./configs)
//	--fps <rate>    - Set tick rate
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.term2048/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPlayer string

	// Loaded by the root PersistentPreRunE
	appConfig config.Config
	logger    = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "term2048",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "term2048",
	Short: "2048 in your terminal",
	Long: `term2048 is the 2048 sliding tile game for the terminal.

Available commands:
  play      - Play a single game
  menu      - Interactive menu with high scores
  serve     - Start SSH server for remote play
  mcp       - Serve the game as MCP tools over stdio
  scores    - View high scores
  simulate  - Run headless games with a fixed move cycle
  config    - Print the default config file

Examples:
  term2048 play
  term2048 play --seed 42
  term2048 menu
  term2048 serve --ssh :2222
  term2048 scores --limit 20
  term2048 simulate --games 10 --pattern up,left,down,right`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to scores database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name recorded with results")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config file and applies flags that were set.
func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.UI.TickRate = flagFPS
	}
	if flags.Changed("db") {
		cfg.Storage.DBPath = flagDBPath
	}

	if err := cfg.Validate(); err != nil {
		return err
	}
	appConfig = cfg
	return nil
}

// playerName picks the name recorded with local results.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	return os.Getenv("USER") // Empty falls back to storage.DefaultPlayer
}
