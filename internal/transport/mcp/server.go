// Package mcp exposes 2048 as Model Context Protocol tools so agents can
// play over stdio.
//
// Tools:
//   - new_game: start a session, optionally seeded
//   - move: apply one direction
//   - bulk_move: apply several directions, stopping once the game ends
//   - game_state: show the board of a session
//   - list_sessions: list live sessions
//   - end_session: drop a session, recording unfinished games as aborted
//
// Every board-returning tool answers with two text parts: a readable board
// and a JSON snapshot of the same state.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vovakirdan/term2048/internal/engine"
)

const (
	serverName    = "term2048"
	serverVersion = "1.0.0"
	maxBulkMoves  = 500

	// maxSeed bounds seeds to integers a JSON number carries exactly.
	maxSeed = 1<<53 - 1
)

const instructions = `2048 - MCP Interface

Slide numbered tiles on a 4x4 board. Equal tiles that collide merge into
their sum and the merged value is added to the score. After every move that
changes the board a new 2 (or sometimes 4) appears in an empty cell.
Reach the 2048 tile to win. The game is lost when no move can change the board.

AVAILABLE TOOLS:
- new_game: Start a session (optional seed for reproducible games)
- move: One move (up/down/left/right)
- bulk_move: Several moves at once, stops when the game ends
- game_state: Current board, score and status
- list_sessions: All live sessions
- end_session: Drop a session`

var directionEnum = []string{"up", "down", "left", "right"}

// Server wraps an MCP server around a session manager.
type Server struct {
	sessions  *Manager
	mcpServer *server.MCPServer
	logger    *log.Logger
}

// NewServer creates the MCP server and registers all tools.
func NewServer(sessions *Manager, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{
		sessions: sessions,
		logger:   logger,
		mcpServer: server.NewMCPServer(
			serverName,
			serverVersion,
			server.WithToolCapabilities(true),
			server.WithInstructions(instructions),
		),
	}
	s.registerTools()
	return s
}

// registerTools registers all MCP tools.
func (s *Server) registerTools() {
	sessionID := map[string]interface{}{
		"type":        "string",
		"description": "Session ID returned by new_game",
	}

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new 2048 game session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"seed": map[string]interface{}{
					"type":        "integer",
					"minimum":     -maxSeed,
					"maximum":     maxSeed,
					"description": "RNG seed for a reproducible game (optional, 0 or absent picks one)",
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Slide all tiles in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"direction": map[string]interface{}{
					"type":        "string",
					"enum":        directionEnum,
					"description": "Direction to slide",
				},
			},
			Required: []string{"session_id", "direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Apply several moves in order; stops early when the game ends",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
				"directions": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
						"enum": directionEnum,
					},
					"description": fmt.Sprintf("Directions to apply (at most %d)", maxBulkMoves),
				},
			},
			Required: []string{"session_id", "directions"},
		},
	}, s.handleBulkMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the board, score and status of a session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
			},
			Required: []string{"session_id"},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all live game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListSessions)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "end_session",
		Description: "End a session and free it",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionID,
			},
			Required: []string{"session_id"},
		},
	}, s.handleEndSession)
}

// MCPServer returns the underlying MCP server.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin/stdout until the input closes.
func (s *Server) ServeStdio() error {
	s.logger.Info("serving MCP over stdio", "tools", 6)
	if err := server.ServeStdio(s.mcpServer); err != nil {
		return fmt.Errorf("mcp: stdio: %w", err)
	}
	return nil
}

// Tool handlers

func (s *Server) handleNewGame(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	seed, err := parseSeed(arguments(request)["seed"])
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info := s.sessions.Create(seed)
	header := fmt.Sprintf("Created session: %s\nSeed: %d", info.ID, info.Seed)
	return boardResult(header, info, nil)
}

func (s *Server) handleMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, _ := args["session_id"].(string)
	raw, _ := args["direction"].(string)

	dir, err := engine.ParseDirection(raw)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res, info, err := s.sessions.Move(id, dir)
	switch {
	case errors.Is(err, ErrGameOver):
		return mcp.NewToolResultError(fmt.Sprintf("game is over (%s), start a new game", info.State.Status)), nil
	case err != nil:
		return mcp.NewToolResultError(err.Error()), nil
	}

	header := formatMove(dir, res)
	return boardResult(header, info, []moveView{newMoveView(dir, res)})
}

func (s *Server) handleBulkMove(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, _ := args["session_id"].(string)
	rawDirs, _ := args["directions"].([]interface{})

	if len(rawDirs) == 0 {
		return mcp.NewToolResultError("directions must not be empty"), nil
	}
	if len(rawDirs) > maxBulkMoves {
		return mcp.NewToolResultError(fmt.Sprintf("at most %d directions per call", maxBulkMoves)), nil
	}

	// Validate everything before touching the board
	dirs := make([]engine.Direction, 0, len(rawDirs))
	for i, raw := range rawDirs {
		str, _ := raw.(string)
		dir, err := engine.ParseDirection(str)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("directions[%d]: %v", i, err)), nil
		}
		dirs = append(dirs, dir)
	}

	steps, info, err := s.sessions.BulkMove(id, dirs)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return boardResult(formatSteps(len(dirs), steps, info), info, stepViews(steps))
}

func (s *Server) handleGameState(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, _ := args["session_id"].(string)

	info, err := s.sessions.Info(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return boardResult(fmt.Sprintf("Session: %s", info.ID), info, nil)
}

func (s *Server) handleListSessions(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	infos := s.sessions.List()

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n", len(infos))
	for _, info := range infos {
		fmt.Fprintf(&b, "- %s (Score: %d, Best tile: %d, Status: %s, Created: %s)\n",
			info.ID, info.State.Score, info.State.MaxTile, info.State.Status, info.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleEndSession(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	id, _ := args["session_id"].(string)

	info, err := s.sessions.End(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Ended session %s\nFinal score: %d\nBest tile: %d\nStatus: %s",
		info.ID, info.State.Score, info.State.MaxTile, info.State.Status)), nil
}

// parseSeed accepts an absent seed, an integral JSON number within
// +-maxSeed, or a decimal string. Anything else would not reproduce the
// reported game.
func parseSeed(v interface{}) (int64, error) {
	switch seed := v.(type) {
	case nil:
		return 0, nil
	case float64:
		if seed != math.Trunc(seed) || math.Abs(seed) > maxSeed {
			return 0, fmt.Errorf("seed must be an integer between %d and %d", int64(-maxSeed), int64(maxSeed))
		}
		return int64(seed), nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(seed), 10, 64)
		if err != nil || n > maxSeed || n < -maxSeed {
			return 0, fmt.Errorf("seed %q must be an integer between %d and %d", seed, int64(-maxSeed), int64(maxSeed))
		}
		return n, nil
	default:
		return 0, fmt.Errorf("seed must be an integer, got %T", v)
	}
}

// arguments returns the tool arguments, empty when absent.
func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return map[string]interface{}{}
	}
	return args
}
