// Package game adapts the 2048 engine to the tick-driven platform contract:
// Reset, Step, Render and State. Input gating on terminal status lives here,
// not in the engine.
package game

import (
	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

// ID is the game identifier used for storage and CLI output.
const ID = "2048"

// Minimum screen size: board (29 wide, 9 tall) + HUD and hint lines
const (
	minScreenW = 31
	minScreenH = 15
)

// Game is a playable 2048 session.
type Game struct {
	cfg    config.GameConfig
	eng    *engine.Engine
	tick   uint64
	last   engine.MoveResult
	seed   int64
	paused bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a game with the given rules. Call Reset before Step.
func New(cfg config.GameConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset starts a new game seeded from cfg.Seed.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.seed = cfg.Seed
	g.eng = engine.New(
		engine.WithSeed(cfg.Seed),
		engine.WithWinTile(g.cfg.WinTile),
		engine.WithFourPercent(g.cfg.SpawnFourPercent),
	)
	g.eng.NewGame()
	g.tick = 0
	g.last = engine.MoveResult{}
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize updates the screen dimensions without touching the board.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Step advances the game by one tick. At most one move is applied.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || in.Empty() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.eng.Status().Terminal() {
		g.paused = !g.paused
	}
	if g.paused || g.eng.Status().Terminal() {
		return core.StepResult{State: g.State()}
	}

	dir, ok := directionFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.last = g.eng.Move(dir)
	return core.StepResult{State: g.State(), Moved: g.last.Moved}
}

// directionFor picks the move requested in this frame, if any.
func directionFor(in core.InputFrame) (engine.Direction, bool) {
	switch {
	case in.Has(core.ActionUp):
		return engine.Up, true
	case in.Has(core.ActionDown):
		return engine.Down, true
	case in.Has(core.ActionLeft):
		return engine.Left, true
	case in.Has(core.ActionRight):
		return engine.Right, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.eng.Status()
	return core.GameState{
		Score:    g.eng.Score(),
		MaxTile:  engine.MaxTile(g.eng.Grid()),
		Moves:    g.eng.Moves(),
		GameOver: status.Terminal(),
		Won:      status == engine.Won,
		Paused:   g.paused || g.tooSmall,
	}
}

// Engine exposes the underlying engine for read access by hosts.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/drag: Move | P: Pause | R: Restart | Q: Quit"
}
