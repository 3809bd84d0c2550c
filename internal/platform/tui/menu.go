package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is an entry of the main menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuNewGame
	MenuHighScores
	MenuQuit
)

// String returns the menu label.
func (c MenuChoice) String() string {
	switch c {
	case MenuNewGame:
		return "New game"
	case MenuHighScores:
		return "High scores"
	case MenuQuit:
		return "Quit"
	default:
		return ""
	}
}

var menuChoices = []MenuChoice{MenuNewGame, MenuHighScores, MenuQuit}

// MenuModel is the Bubble Tea model for the main menu.
type MenuModel struct {
	cursor    int
	width     int
	height    int
	best      int
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates a menu. best is shown under the title when positive.
func NewMenuModel(width, height, best int) MenuModel {
	return MenuModel{
		width:     width,
		height:    height,
		best:      best,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.selected = MenuQuit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuChoices)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.selected = menuChoices[m.cursor]

	case MenuActionBack:
		// Top level, nothing to go back to
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("2 0 4 8"), m.width))
	b.WriteString("\n\n")

	if m.best > 0 {
		best := dimStyle.Render(fmt.Sprintf("Best score: %d", m.best))
		b.WriteString(centerText(best, m.width))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for i, choice := range menuChoices {
		line := "  " + choice.String()
		if i == m.cursor {
			line = activeStyle.Render("> " + choice.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone while choosing.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Cursor returns the highlighted entry index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// centerText centers text within given width. Styled text is measured
// by its visible width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
