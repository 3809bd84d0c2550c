package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/term2048/internal/transport/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve 2048 as MCP tools over stdio",
	Long: `Run a Model Context Protocol server on stdin/stdout.

Agents get the tools new_game, move, bulk_move, game_state,
list_sessions and end_session. Finished games are recorded in the
scores database under the --player name (default "mcp").

Logs are written to stderr so stdout stays a clean protocol stream.

Example client entry:
  {"command": "term2048", "args": ["mcp"]}`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func runMCP(_ *cobra.Command, _ []string) error {
	mcpLogger := logger.WithPrefix("term2048-mcp")

	player := flagPlayer
	if player == "" {
		player = mcp.DefaultPlayer
	}
	opts := []mcp.ManagerOption{
		mcp.WithPlayer(player),
		mcp.WithLogger(mcpLogger),
	}

	store := openStore()
	if store != nil {
		defer func() {
			if err := store.Close(); err != nil {
				mcpLogger.Warn("could not close scores database", "error", err)
			}
		}()
		opts = append(opts, mcp.WithResultSaver(store))
	}

	sessions := mcp.NewManager(appConfig.Game, opts...)
	return mcp.NewServer(sessions, mcpLogger).ServeStdio()
}
