package mcp

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/engine"
	"github.com/vovakirdan/term2048/internal/storage"
)

var (
	// ErrSessionNotFound is returned for unknown or ended session IDs.
	ErrSessionNotFound = errors.New("mcp: session not found")

	// ErrGameOver is returned when moving in a won or lost game.
	ErrGameOver = errors.New("mcp: game is over")
)

// DefaultPlayer is recorded for results of MCP sessions.
const DefaultPlayer = "mcp"

// ResultSaver persists finished games. *storage.Store satisfies it.
type ResultSaver interface {
	SaveResult(r storage.Result) (int64, error)
}

// Session is one game played through MCP tools.
type Session struct {
	ID        string
	Seed      int64
	CreatedAt time.Time

	mu       sync.Mutex
	eng      *engine.Engine
	recorded bool
}

// SessionInfo is a point-in-time view of a session.
type SessionInfo struct {
	ID        string
	Seed      int64
	CreatedAt time.Time
	State     engine.Snapshot
}

// Step is the outcome of one move in a bulk move.
type Step struct {
	Direction engine.Direction
	Result    engine.MoveResult
}

// Manager owns the live sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	rules  config.GameConfig
	saver  ResultSaver
	player string
	logger *log.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithResultSaver records finished games.
func WithResultSaver(s ResultSaver) ManagerOption {
	return func(m *Manager) {
		m.saver = s
	}
}

// WithPlayer sets the player name recorded with results.
func WithPlayer(name string) ManagerOption {
	return func(m *Manager) {
		if name != "" {
			m.player = name
		}
	}
}

// WithLogger sets the logger for session events.
func WithLogger(l *log.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a session manager playing by the given rules.
func NewManager(rules config.GameConfig, opts ...ManagerOption) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		rules:    rules,
		player:   DefaultPlayer,
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Create starts a new session. A zero seed picks one from the clock,
// kept within the 53 bits a JSON number holds exactly.
func (m *Manager) Create(seed int64) SessionInfo {
	for seed == 0 {
		seed = time.Now().UnixNano() & maxSeed
	}

	s := &Session{
		ID:        uuid.NewString(),
		Seed:      seed,
		CreatedAt: time.Now(),
		eng: engine.New(
			engine.WithSeed(seed),
			engine.WithWinTile(m.rules.WinTile),
			engine.WithFourPercent(m.rules.SpawnFourPercent),
		),
	}
	s.eng.NewGame()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	m.logger.Info("session created", "session", s.ID, "seed", seed)
	return s.info()
}

// Get returns a live session.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}
	return s, nil
}

// Info returns the current state of a session.
func (m *Manager) Info(id string) (SessionInfo, error) {
	s, err := m.Get(id)
	if err != nil {
		return SessionInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.info(), nil
}

// List returns all live sessions, oldest first.
func (m *Manager) List() []SessionInfo {
	m.mu.Lock()
	sessions := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		sessions = append(sessions, s)
	}
	m.mu.Unlock()

	infos := make([]SessionInfo, 0, len(sessions))
	for _, s := range sessions {
		s.mu.Lock()
		infos = append(infos, s.info())
		s.mu.Unlock()
	}

	slices.SortFunc(infos, func(a, b SessionInfo) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return infos
}

// Move applies one move to a session. Finished games return ErrGameOver
// along with their final state.
func (m *Manager) Move(id string, dir engine.Direction) (engine.MoveResult, SessionInfo, error) {
	s, err := m.Get(id)
	if err != nil {
		return engine.MoveResult{}, SessionInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.eng.Status().Terminal() {
		return engine.MoveResult{}, s.info(), ErrGameOver
	}

	res := s.eng.Move(dir)
	m.recordIfFinished(s)
	return res, s.info(), nil
}

// BulkMove applies moves in order and stops once the game is over.
func (m *Manager) BulkMove(id string, dirs []engine.Direction) ([]Step, SessionInfo, error) {
	s, err := m.Get(id)
	if err != nil {
		return nil, SessionInfo{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	steps := make([]Step, 0, len(dirs))
	for _, dir := range dirs {
		if s.eng.Status().Terminal() {
			break
		}
		steps = append(steps, Step{Direction: dir, Result: s.eng.Move(dir)})
	}
	m.recordIfFinished(s)
	return steps, s.info(), nil
}

// End removes a session. An unfinished game with points is recorded as aborted.
func (m *Manager) End(id string) (SessionInfo, error) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if !ok {
		return SessionInfo{}, fmt.Errorf("%w: %q", ErrSessionNotFound, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	m.record(s, storage.OutcomeAborted)
	m.logger.Info("session ended", "session", s.ID, "score", s.eng.Score())
	return s.info(), nil
}

// Len returns the number of live sessions.
func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// recordIfFinished saves won and lost games. Caller holds s.mu.
func (m *Manager) recordIfFinished(s *Session) {
	switch s.eng.Status() {
	case engine.Won:
		m.record(s, storage.OutcomeWon)
	case engine.Lost:
		m.record(s, storage.OutcomeLost)
	}
}

// record saves the session once. Caller holds s.mu.
func (m *Manager) record(s *Session, outcome storage.Outcome) {
	if s.recorded || s.eng.Score() == 0 {
		return
	}
	s.recorded = true

	if m.saver == nil {
		return
	}
	snap := s.eng.Snapshot()
	_, err := m.saver.SaveResult(storage.Result{
		RunID:   s.ID,
		Player:  m.player,
		Score:   snap.Score,
		MaxTile: snap.MaxTile,
		Moves:   snap.Moves,
		Outcome: outcome,
	})
	if err != nil {
		m.logger.Warn("could not save result", "session", s.ID, "error", err)
	}
}

// info snapshots the session. Caller holds s.mu or owns s exclusively.
func (s *Session) info() SessionInfo {
	return SessionInfo{
		ID:        s.ID,
		Seed:      s.Seed,
		CreatedAt: s.CreatedAt,
		State:     s.eng.Snapshot(),
	}
}
