package mcp

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/vovakirdan/term2048/internal/engine"
)

// stateView is the JSON snapshot attached to board results.
type stateView struct {
	SessionID string      `json:"session_id"`
	Seed      int64       `json:"seed"`
	Grid      engine.Grid `json:"grid"`
	Score     int         `json:"score"`
	Moves     int         `json:"moves"`
	MaxTile   int         `json:"max_tile"`
	Status    string      `json:"status"`
	CanMove   bool        `json:"can_move"`
	Steps     []moveView  `json:"steps,omitempty"`
}

type moveView struct {
	Direction string    `json:"direction"`
	Moved     bool      `json:"moved"`
	Gained    int       `json:"gained"`
	Spawned   *tileView `json:"spawned,omitempty"`
}

type tileView struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Value int `json:"value"`
}

func newMoveView(dir engine.Direction, res engine.MoveResult) moveView {
	v := moveView{
		Direction: dir.String(),
		Moved:     res.Moved,
		Gained:    res.Gained,
	}
	if res.Spawned != nil {
		v.Spawned = &tileView{X: res.Spawned.X, Y: res.Spawned.Y, Value: res.Spawned.Value}
	}
	return v
}

func stepViews(steps []Step) []moveView {
	views := make([]moveView, len(steps))
	for i, st := range steps {
		views[i] = newMoveView(st.Direction, st.Result)
	}
	return views
}

// boardResult renders a board result: header and grid text, then JSON.
func boardResult(header string, info SessionInfo, steps []moveView) (*mcp.CallToolResult, error) {
	view := stateView{
		SessionID: info.ID,
		Seed:      info.Seed,
		Grid:      info.State.Grid,
		Score:     info.State.Score,
		Moves:     info.State.Moves,
		MaxTile:   info.State.MaxTile,
		Status:    info.State.Status.String(),
		CanMove:   engine.CanMove(info.State.Grid),
		Steps:     steps,
	}

	data, err := json.Marshal(view)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("cannot encode state: %v", err)), nil
	}

	text := header + "\n\n" + formatState(info.State)
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
			mcp.NewTextContent(string(data)),
		},
	}, nil
}

// formatState renders score, status and the grid.
func formatState(snap engine.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Score: %d | Moves: %d | Best tile: %d | Status: %s\n\n",
		snap.Score, snap.Moves, snap.MaxTile, snap.Status)
	b.WriteString(FormatGrid(snap.Grid))

	if snap.Status == engine.Playing && !engine.CanMove(snap.Grid) {
		b.WriteString("\nNo moves left: the next move ends the game.\n")
	}
	return b.String()
}

// FormatGrid renders the grid as fixed-width rows. Empty cells show a dot.
func FormatGrid(g engine.Grid) string {
	const width = 5

	var b strings.Builder
	for _, row := range g {
		for x, v := range row {
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			if x > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(&b, "%*s", width, cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func formatMove(dir engine.Direction, res engine.MoveResult) string {
	if !res.Moved {
		return fmt.Sprintf("Move %s: nothing moved", dir)
	}
	line := fmt.Sprintf("Move %s: +%d", dir, res.Gained)
	if res.Spawned != nil {
		line += fmt.Sprintf(", new %d at (%d, %d)", res.Spawned.Value, res.Spawned.X, res.Spawned.Y)
	}
	return line
}

func formatSteps(requested int, steps []Step, info SessionInfo) string {
	moved, gained := 0, 0
	for _, st := range steps {
		if st.Result.Moved {
			moved++
		}
		gained += st.Result.Gained
	}

	line := fmt.Sprintf("Executed %d/%d moves (%d changed the board, +%d points)", len(steps), requested, moved, gained)
	if len(steps) < requested {
		line += fmt.Sprintf("\nStopped early: game %s", info.State.Status)
	}
	return line
}
