package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW := Size*cellWidth + 1
	boardH := Size*cellHeight + 1
	hudHeight := 3

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	g.renderBoard(dst, boardX, boardY)
	dst.DrawTextColored(core.Max(0, (g.screenW-len(g.Controls()))/2), boardY+boardH+1, g.Controls(), core.ColorGray)
	g.renderOverlays(dst, boardX, boardY, boardW, boardH)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	st := g.State()

	title := "2048"
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	score := fmt.Sprintf("Score: %d", st.Score)
	dst.DrawText(boardX, 1, score)
	if last := g.LastMove(); last.Delta > 0 {
		dst.DrawTextColored(boardX+len(score)+1, 1, fmt.Sprintf("+%d", last.Delta), core.ColorBrightGreen)
	}

	var info string
	if g.currentTarget > 0 {
		info = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, g.cfg.LevelCount(), g.currentTarget)
	} else {
		info = fmt.Sprintf("Max: %d", st.MaxTile)
	}
	dst.DrawText(core.Max(boardX, boardX+boardW-len(info)), 1, info)

	modeStr := "Campaign"
	if g.mode == ModeEndless {
		modeStr = "Endless"
	}
	status := fmt.Sprintf("%s  Moves: %d", modeStr, st.Moves)
	dst.DrawTextColored(boardX+(boardW-len(status))/2, 2, status, core.ColorGray)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < Size+1; y++ {
		for x := 0; x < Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight
			dst.Set(px, py, gridJoint(x, y))

			if x < Size {
				dst.DrawHLine(px+1, py, cellWidth-1, '─')
			}
			if y < Size {
				dst.DrawVLine(px, py+1, cellHeight-1, '│')
			}
		}
	}

	grid := g.Grid()
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			val := grid.At(row, col)
			color := TileColor(val)

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			for i := 0; i < cellWidth-1; i++ {
				dst.SetColored(cellX+i, cellY, ' ', color)
			}
			if val == 0 {
				continue
			}

			valStr := strconv.FormatUint(uint64(val), 10)
			padLeft := core.Max(0, (cellWidth-1-len(valStr))/2)
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, color)
		}
	}
}

// gridJoint picks the box-drawing rune for a grid intersection.
func gridJoint(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY, boardW, boardH int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget)
		if g.levelIndex >= g.cfg.LevelCount()-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!")
		} else {
			g.drawOverlay(dst, centerX, centerY, targetStr, fmt.Sprintf("Next: Level %d", g.levelIndex+2))
		}
	case g.won:
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", "You are the champion!", "Press R to restart")
	case g.finished():
		maxStr := fmt.Sprintf("Max tile: %d", g.session.MaxTile())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", maxStr, "Press R to restart")
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = core.Max(maxLen, len(line))
	}

	box := core.Centered(centerX, centerY, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, core.ColorBrightWhite)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/hjkl: Move | P: Pause | R: Restart | Q: Quit"
}
