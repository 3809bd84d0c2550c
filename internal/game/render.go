package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/term2048/internal/core"
	"github.com/vovakirdan/term2048/internal/engine"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
	hudHeight  = 3
)

// tileColors maps tile values to display colors. Larger tiles use ColorBrightRed.
var tileColors = map[int]core.Color{
	2:    core.ColorWhite,
	4:    core.ColorYellow,
	8:    core.ColorOrange,
	16:   core.ColorRed,
	32:   core.ColorMagenta,
	64:   core.ColorBlue,
	128:  core.ColorCyan,
	256:  core.ColorGreen,
	512:  core.ColorBrightYellow,
	1024: core.ColorBrightMagenta,
	2048: core.ColorBrightCyan,
}

// TileColor returns the display color for a tile value.
func TileColor(v int) core.Color {
	if c, ok := tileColors[v]; ok {
		return c
	}
	return core.ColorBrightRed
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := engine.Side*cellWidth + 1
	boardH := engine.Side*cellHeight + 1
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	g.renderFooter(dst, boardY+boardH+1)
	g.renderOverlays(dst, boardX+boardW/2, boardY+boardH/2)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score, best tile, move count and win target.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawTextColor(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.eng.Score()))

	info := fmt.Sprintf("Best: %d", engine.MaxTile(g.eng.Grid()))
	infoX := max(boardX+boardW-len(info), boardX)
	dst.DrawText(infoX, 1, info)

	moves := fmt.Sprintf("Moves: %d", g.eng.Moves())
	if g.last.Gained > 0 {
		moves = fmt.Sprintf("Moves: %d  +%d", g.eng.Moves(), g.last.Gained)
	}
	dst.DrawTextColor(boardX, 2, moves, core.ColorGray)

	goal := fmt.Sprintf("Goal: %d", g.eng.WinTile())
	dst.DrawTextColor(max(boardX+boardW-len(goal), boardX), 2, goal, core.ColorGray)
}

// renderBoard draws the grid borders and the tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range engine.Side + 1 {
		for x := range engine.Side + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetColor(px, py, junction(x, y), core.ColorGray)

			if x < engine.Side {
				for i := 1; i < cellWidth; i++ {
					dst.SetColor(px+i, py, '─', core.ColorGray)
				}
			}
			if y < engine.Side {
				for i := 1; i < cellHeight; i++ {
					dst.SetColor(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}

	grid := g.eng.Grid()
	for y := range engine.Side {
		for x := range engine.Side {
			val := grid[y][x]
			if val == 0 {
				continue
			}

			cellX := boardX + x*cellWidth + 1
			cellY := boardY + y*cellHeight + 1

			label := strconv.Itoa(val)
			pad := max((cellWidth-1-len(label))/2, 0)
			dst.DrawTextColor(cellX+pad, cellY, label, TileColor(val))
		}
	}
}

// junction returns the box-drawing rune at grid intersection (x, y).
func junction(x, y int) rune {
	last := engine.Side
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == last:
		return '┐'
	case y == last && x == 0:
		return '└'
	case y == last && x == last:
		return '┘'
	case y == 0:
		return '┬'
	case y == last:
		return '┴'
	case x == 0:
		return '├'
	case x == last:
		return '┤'
	default:
		return '┼'
	}
}

func (g *Game) renderFooter(dst *core.Screen, y int) {
	if g.eng.Status() == engine.Playing && !engine.CanMove(g.eng.Grid()) {
		dst.DrawTextCentered(y, "No moves left - press any direction")
		return
	}
	dst.DrawTextCentered(y, g.Controls())
}

// renderOverlays draws pause and end-of-game boxes.
func (g *Game) renderOverlays(dst *core.Screen, centerX, centerY int) {
	switch {
	case g.eng.Status() == engine.Won:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.eng.Score()), "R: new game  B: menu")
	case g.eng.Status() == engine.Lost:
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", fmt.Sprintf("Best tile: %d", engine.MaxTile(g.eng.Grid())), "R: new game  B: menu")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	}
}

// drawOverlay draws a centered text box.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.CenteredRect(centerX, centerY, maxLen+4, len(lines)+2)

	dst.FillRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
