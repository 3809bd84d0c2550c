package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/term2048/internal/config"
	"github.com/vovakirdan/term2048/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown, false},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"w", runeKey("w"), core.ActionUp, false},
		{"a", runeKey("a"), core.ActionLeft, false},
		{"s", runeKey("s"), core.ActionDown, false},
		{"d", runeKey("d"), core.ActionRight, false},
		{"k", runeKey("k"), core.ActionUp, false},
		{"h", runeKey("h"), core.ActionLeft, false},
		{"j", runeKey("j"), core.ActionDown, false},
		{"l", runeKey("l"), core.ActionRight, false},
		{"pause", runeKey("p"), core.ActionPause, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"back", runeKey("b"), core.ActionBack, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey("a"), &frame) {
		t.Error("a should not quit")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should contain Left")
	}

	km.MapKeyToFrame(runeKey("x"), &frame)
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not set ActionNone")
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("k"), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{runeKey(" "), MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("z"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func mouse(action tea.MouseAction, button tea.MouseButton, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

func press(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionPress, tea.MouseButtonLeft, x, y)
}

func motion(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionMotion, tea.MouseButtonLeft, x, y)
}

func release(x, y int) tea.MouseMsg {
	return mouse(tea.MouseActionRelease, tea.MouseButtonNone, x, y)
}

func TestGestureRelease(t *testing.T) {
	cfg := config.Default().UI.Gesture // min 3, ratio 2

	tests := []struct {
		name   string
		dx, dy int
		want   core.Action
	}{
		{"right", 5, 0, core.ActionRight},
		{"left", -5, 1, core.ActionLeft},
		{"down", 0, 4, core.ActionDown},
		{"up", 1, -4, core.ActionUp},
		{"exact threshold", 3, 0, core.ActionNone},
		{"just past threshold", 4, 0, core.ActionRight},
		{"too short", 2, 0, core.ActionNone},
		{"exact ratio", 6, 3, core.ActionNone},
		{"just past ratio", 7, 3, core.ActionRight},
		{"exact ratio vertical", 2, -4, core.ActionNone},
		{"diagonal", 5, 4, core.ActionNone},
		{"no movement", 0, 0, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGestureTracker(cfg)
			if got := g.Track(press(10, 10)); got != core.ActionNone {
				t.Fatalf("press returned %v", got)
			}
			if got := g.Track(release(10+tt.dx, 10+tt.dy)); got != tt.want {
				t.Errorf("drag (%d, %d) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestGestureFiresOncePerDrag(t *testing.T) {
	g := NewGestureTracker(config.Default().UI.Gesture)

	g.Track(press(0, 0))
	if got := g.Track(motion(3, 0)); got != core.ActionNone {
		t.Errorf("motion at threshold = %v", got)
	}
	if got := g.Track(motion(4, 0)); got != core.ActionRight {
		t.Errorf("motion past threshold = %v, want Right", got)
	}
	if got := g.Track(motion(8, 0)); got != core.ActionNone {
		t.Errorf("second motion = %v, want None", got)
	}
	if got := g.Track(release(10, 0)); got != core.ActionNone {
		t.Errorf("release after firing = %v, want None", got)
	}

	// A new drag fires again
	g.Track(press(10, 10))
	if got := g.Track(release(10, 4)); got != core.ActionUp {
		t.Errorf("second drag = %v, want Up", got)
	}
}

func TestGestureIgnoresOtherInput(t *testing.T) {
	g := NewGestureTracker(config.Default().UI.Gesture)

	if got := g.Track(release(20, 0)); got != core.ActionNone {
		t.Errorf("release without press = %v", got)
	}
	if got := g.Track(motion(20, 0)); got != core.ActionNone {
		t.Errorf("motion without press = %v", got)
	}
	g.Track(mouse(tea.MouseActionPress, tea.MouseButtonRight, 0, 0))
	if got := g.Track(release(20, 0)); got != core.ActionNone {
		t.Errorf("right button drag = %v", got)
	}
}
