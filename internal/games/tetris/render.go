package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

const (
	cellWidth  = 2 // Terminal columns per grid cell
	boardW     = Cols*cellWidth + 2
	boardH     = Rows + 2
	holdW      = 12
	holdH      = 6
	sideW      = 18
	panelGap   = 2
	minScreenW = holdW + panelGap + boardW + panelGap + sideW
	minScreenH = boardH + 1
)

var (
	blockRunes = [cellWidth]rune{'█', '█'}
	ghostRunes = [cellWidth]rune{'░', '░'}
	emptyRunes = [cellWidth]rune{' ', '·'}
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	originX := (g.screenW - minScreenW) / 2
	originY := max(0, (g.screenH-minScreenH)/2)

	holdX := originX
	boardX := holdX + holdW + panelGap
	sideX := boardX + boardW + panelGap
	boardY := originY + 1

	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, originY, title, core.ColorCyan)

	g.renderBoard(dst, boardX, boardY)
	g.renderHold(dst, holdX, boardY)
	g.renderSide(dst, sideX, boardY)

	if g.gameOver {
		g.renderGameOver(dst, boardX+boardW/2, boardY+boardH/2)
	}
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// drawCell paints one grid cell at board coordinates (row, col).
func drawCell(dst *core.Screen, boardX, boardY, row, col int, runes [cellWidth]rune, c core.Color) {
	x := boardX + 1 + col*cellWidth
	y := boardY + 1 + row
	for i, r := range runes {
		dst.SetCell(x+i, y, r, c)
	}
}

// renderBoard draws the border, settled cells, ghost and the active piece.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	dst.DrawBox(core.NewRect(boardX, boardY, boardW, boardH), core.ColorGray)

	for row := range Rows {
		for col := range Cols {
			v := g.grid.Cell(row, col)
			if v == 0 {
				drawCell(dst, boardX, boardY, row, col, emptyRunes, core.ColorGray)
				continue
			}
			drawCell(dst, boardX, boardY, row, col, blockRunes, core.PieceColor(int(v)-1))
		}
	}

	if g.gameOver {
		return
	}

	color := core.PieceColor(g.current.Kind.ColorIndex())

	if g.showGhost {
		ghost := g.current.Clone()
		ghost.Y = g.GhostY()
		if ghost.Y != g.current.Y {
			for _, pt := range ghost.Cells() {
				if inBounds(pt.Y, pt.X) && g.grid.Cell(pt.Y, pt.X) == 0 {
					drawCell(dst, boardX, boardY, pt.Y, pt.X, ghostRunes, color)
				}
			}
		}
	}

	for _, pt := range g.current.Cells() {
		if inBounds(pt.Y, pt.X) {
			drawCell(dst, boardX, boardY, pt.Y, pt.X, blockRunes, color)
		}
	}
}

// renderHold draws the hold panel. The held piece sits at the display origin.
func (g *Game) renderHold(dst *core.Screen, x, y int) {
	dst.DrawBox(core.NewRect(x, y, holdW, holdH), core.ColorGray)
	dst.DrawText(x+2, y, " HOLD ")

	if g.held == nil {
		return
	}

	color := core.PieceColor(g.held.Kind.ColorIndex())
	for r, row := range g.held.Shape {
		for c, v := range row {
			if v == 0 {
				continue
			}
			px := x + 2 + (g.held.X+c)*cellWidth
			py := y + 2 + g.held.Y + r
			for i, ch := range blockRunes {
				dst.SetCell(px+i, py, ch, color)
			}
		}
	}
}

// renderSide draws the score counters.
func (g *Game) renderSide(dst *core.Screen, x, y int) {
	dst.DrawTextColored(x, y, "SCORE", core.ColorYellow)
	dst.DrawText(x, y+1, fmt.Sprintf("%d", g.score))
	dst.DrawTextColored(x, y+3, "LINES", core.ColorYellow)
	dst.DrawText(x, y+4, fmt.Sprintf("%d", g.lines))
	dst.DrawTextColored(x, y+6, "PIECES", core.ColorYellow)
	dst.DrawText(x, y+7, fmt.Sprintf("%d", g.pieces))
}

// renderGameOver draws the terminal-state overlay over the board.
func (g *Game) renderGameOver(dst *core.Screen, centerX, centerY int) {
	lines := []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", g.score),
	}
	if g.hasBest {
		lines = append(lines, fmt.Sprintf("Best:  %d", g.best))
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect(centerX-boxW/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box)
	dst.DrawBox(box, core.ColorRed)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
