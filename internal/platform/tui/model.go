package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/game"
	"github.com/vovakirdan/term2048/internal/storage"
)

// ResultRecorder persists finished games. *storage.Store satisfies it.
type ResultRecorder interface {
	SaveResult(r storage.Result) (int64, error)
}

// GameOptions configures a GameModel.
type GameOptions struct {
	Rules    config.GameConfig
	Gesture  config.GestureConfig
	Recorder ResultRecorder // May be nil
	Player   string         // Recorded with every result

	// Standalone makes back-to-menu end the program. Set it when the
	// model is the program root.
	Standalone bool
}

// GameModel is the Bubble Tea model for one 2048 board.
type GameModel struct {
	game       *game.Game
	screen     *core.Screen
	opts       GameOptions
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	gestures   *GestureTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	runID      string
	resultSent bool
	saveErr    error
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model. A zero seed picks one from the clock.
func NewGameModel(cfg core.RuntimeConfig, opts GameOptions) GameModel {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	return GameModel{
		game:       game.New(opts.Rules),
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		opts:       opts,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		gestures:   NewGestureTracker(opts.Gesture),
		inputFrame: core.NewInputFrame(),
		runID:      uuid.NewString(),
	}
}

// Init starts the game and the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if action := m.gestures.Track(msg); action != core.ActionNone {
			m.inputFrame.Set(action)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame) {
		m.finish(storage.OutcomeAborted)
		m.quitting = true
		return m, tea.Quit
	}

	// Back is only honoured when nothing is in motion
	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.finish(storage.OutcomeAborted)
		m.backToMenu = true
		if m.opts.Standalone {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		m.finish(storage.OutcomeAborted)
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.runID = uuid.NewString()
		m.resultSent = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver {
		outcome := storage.OutcomeLost
		if m.gameState.Won {
			outcome = storage.OutcomeWon
		}
		m.finish(outcome)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finish records the current game once. Empty games are never recorded.
func (m *GameModel) finish(outcome storage.Outcome) {
	if m.resultSent {
		return
	}
	state := m.game.State()
	if state.Score == 0 {
		return
	}
	m.resultSent = true

	if m.opts.Recorder == nil {
		return
	}
	_, m.saveErr = m.opts.Recorder.SaveResult(storage.Result{
		RunID:   m.runID,
		Player:  m.opts.Player,
		Score:   state.Score,
		MaxTile: state.MaxTile,
		Moves:   state.Moves,
		Outcome: outcome,
	})
}

// saveScreenshot writes the current screen to ~/.term2048/screenshots.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir, err := config.ExpandHome(filepath.Join("~", ".term2048", "screenshots"))
	if err != nil {
		return
	}
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", game.ID, time.Now().Format("20060102_150405"))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state as of the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// Game exposes the underlying game.
func (m GameModel) Game() *game.Game {
	return m.game
}

// SaveErr returns the last error from the result recorder, if any.
func (m GameModel) SaveErr() error {
	return m.saveErr
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone game program.
func Run(cfg core.RuntimeConfig, opts GameOptions) (GameModel, error) {
	opts.Standalone = true
	model := NewGameModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return model, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm, nil
	}
	return model, nil
}
