package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

// GestureTracker turns left-button mouse drags into move actions.
// A drag fires at most once: as soon as it crosses the threshold during
// motion, or on release.
type GestureTracker struct {
	minDistance int
	ratio       float64

	active bool
	fired  bool
	startX int
	startY int
}

// NewGestureTracker creates a tracker with the given thresholds.
func NewGestureTracker(cfg config.GestureConfig) *GestureTracker {
	return &GestureTracker{
		minDistance: cfg.MinDistance,
		ratio:       cfg.DominanceRatio,
	}
}

// Track feeds a mouse event and returns the resulting move, if any.
func (g *GestureTracker) Track(msg tea.MouseMsg) core.Action {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return core.ActionNone
	}

	switch msg.Action {
	case tea.MouseActionPress:
		g.active = true
		g.fired = false
		g.startX, g.startY = msg.X, msg.Y
		return core.ActionNone

	case tea.MouseActionMotion:
		if !g.active || g.fired {
			return core.ActionNone
		}
		action := g.classify(msg.X-g.startX, msg.Y-g.startY)
		if action != core.ActionNone {
			g.fired = true
		}
		return action

	case tea.MouseActionRelease:
		if !g.active {
			return core.ActionNone
		}
		action := core.ActionNone
		if !g.fired {
			action = g.classify(msg.X-g.startX, msg.Y-g.startY)
		}
		g.active = false
		g.fired = false
		return action
	}

	return core.ActionNone
}

// classify maps a drag vector to a direction. The dominant axis must cover
// more than minDistance cells and more than ratio times the other axis.
func (g *GestureTracker) classify(dx, dy int) core.Action {
	ax, ay := core.Abs(dx), core.Abs(dy)

	switch {
	case ax > g.minDistance && float64(ax) > g.ratio*float64(ay):
		if dx > 0 {
			return core.ActionRight
		}
		return core.ActionLeft
	case ay > g.minDistance && float64(ay) > g.ratio*float64(ax):
		if dy > 0 {
			return core.ActionDown
		}
		return core.ActionUp
	}
	return core.ActionNone
}
