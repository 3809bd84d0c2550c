package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in configuration file.

Examples:
  mkdir -p ~/.term2048
  term2048 config > ~/.term2048/config.yaml`,
	Args: cobra.NoArgs,
	// The default file needs no loaded config
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE:              runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
	return err
}
