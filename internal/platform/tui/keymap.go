package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/core"
)

type actionBinding struct {
	binding key.Binding
	action  core.Action
}

type menuBinding struct {
	binding key.Binding
	action  MenuAction
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	quit key.Binding
	game []actionBinding
	menu []menuBinding
}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	up := key.NewBinding(key.WithKeys("w", "k", "up"), key.WithHelp("↑/w/k", "up"))
	down := key.NewBinding(key.WithKeys("s", "j", "down"), key.WithHelp("↓/s/j", "down"))
	back := key.NewBinding(key.WithKeys("b", "esc"), key.WithHelp("b/esc", "back"))

	return &KeyMapper{
		quit: key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		game: []actionBinding{
			{up, core.ActionUp},
			{down, core.ActionDown},
			{key.NewBinding(key.WithKeys("a", "h", "left"), key.WithHelp("←/a/h", "left")), core.ActionLeft},
			{key.NewBinding(key.WithKeys("d", "l", "right"), key.WithHelp("→/d/l", "right")), core.ActionRight},
			{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")), core.ActionConfirm},
			{back, core.ActionBack},
			{key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")), core.ActionPause},
			{key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")), core.ActionRestart},
		},
		menu: []menuBinding{
			{up, MenuActionUp},
			{down, MenuActionDown},
			{key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")), MenuActionSelect},
			{back, MenuActionBack},
		},
	}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	if key.Matches(msg, km.quit) {
		return core.ActionQuit, true
	}
	for _, b := range km.game {
		if key.Matches(msg, b.binding) {
			return b.action, false
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	if key.Matches(msg, km.quit) {
		return MenuActionQuit
	}
	for _, b := range km.menu {
		if key.Matches(msg, b.binding) {
			return b.action
		}
	}
	return MenuActionNone
}

