package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

// ResultStore records results and serves the scoreboard.
// *storage.Store satisfies it.
type ResultStore interface {
	ResultRecorder
	ScoreSource
}

// SessionOptions configures a SessionModel.
type SessionOptions struct {
	Rules   config.GameConfig
	Gesture config.GestureConfig
	Store   ResultStore // May be nil
	Player  string
}

type screen int

const (
	screenMenu screen = iota
	screenGame
	screenScores
)

// SessionModel manages the full flow: menu -> game or scores -> menu.
// It is the root model for the menu command and for SSH sessions.
type SessionModel struct {
	opts       SessionOptions
	config     core.RuntimeConfig
	current    screen
	menu       MenuModel
	gameModel  GameModel
	scoreboard ScoreboardModel
	quitting   bool
}

// NewSessionModel creates a session that starts on the menu.
func NewSessionModel(cfg core.RuntimeConfig, opts SessionOptions) SessionModel {
	m := SessionModel{
		opts:   opts,
		config: cfg,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	best := 0
	if m.opts.Store != nil {
		if stats, err := m.opts.Store.Stats(); err == nil {
			best = stats.HighScore
		}
	}
	return NewMenuModel(m.config.ScreenW, m.config.ScreenH, best)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.current {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case MenuQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuNewGame:
		runtime := m.config
		// A fixed seed only applies to the first game of the session
		m.config.Seed = 0

		m.gameModel = NewGameModel(runtime, GameOptions{
			Rules:    m.opts.Rules,
			Gesture:  m.opts.Gesture,
			Recorder: m.recorder(),
			Player:   m.opts.Player,
		})
		m.current = screenGame
		return m, m.gameModel.Init()

	case MenuHighScores:
		var source ScoreSource
		if m.opts.Store != nil {
			source = m.opts.Store
		}
		m.scoreboard = NewScoreboardModel(source, m.config.ScreenW, m.config.ScreenH)
		m.current = screenScores
		return m, m.scoreboard.Init()
	}

	return m, cmd
}

// recorder returns the store as a recorder, keeping a nil store a nil interface.
func (m SessionModel) recorder() ResultRecorder {
	if m.opts.Store == nil {
		return nil
	}
	return m.opts.Store
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scoreboard.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scoreboard = sb
	}

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scoreboard.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.current = screenMenu
	m.menu = m.newMenu()
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.current {
	case screenGame:
		return m.gameModel.View()
	case screenScores:
		return m.scoreboard.View()
	default:
		return m.menu.View()
	}
}

// RunSession runs a local session program until the user quits.
func RunSession(cfg core.RuntimeConfig, opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(cfg, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
