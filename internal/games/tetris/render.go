package tetris

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Layout constants. Each board cell is drawn two columns wide so the
// pieces look square in a terminal.
const (
	cellW     = 2
	hudHeight = 2
	panelGap  = 2
	panelW    = 16
)

// updateLayout recomputes whether the board fits on screen.
func (g *Game) updateLayout() {
	g.tooSmall = g.screenW < g.requiredWidth() || g.screenH < g.requiredHeight()
}

func (g *Game) requiredWidth() int {
	return g.engine.Width()*cellW + panelGap + panelW
}

func (g *Game) requiredHeight() int {
	return g.engine.Height() + hudHeight
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// The platform resizes the buffer with the terminal
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.screenW, g.screenH = dst.Width(), dst.Height()
		g.updateLayout()
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", g.requiredWidth(), g.requiredHeight()))
		return
	}

	boardX := (g.screenW - g.requiredWidth()) / 2
	g.renderBoard(dst, boardX, hudHeight)
	g.renderPanel(dst, boardX+g.engine.Width()*cellW+panelGap, hudHeight)

	switch {
	case g.engine.IsGameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Final Score: %d", g.engine.Score()), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Tetris | Score: %d  Lines: %d", g.engine.Score(), g.engine.LinesCleared())
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws the locked grid with the falling piece on top.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for y := range g.engine.Height() {
		for x := range g.engine.Width() {
			c := g.engine.DisplayCell(x, y)
			left, right := '█', '█'
			if c.IsEmpty() {
				left, right = '·', ' '
			}
			sx := ox + x*cellW
			dst.SetColored(sx, oy+y, left, c.Color())
			dst.SetColored(sx+1, oy+y, right, c.Color())
		}
	}
}

// renderPanel draws the statistics and controls next to the board.
func (g *Game) renderPanel(dst *core.Screen, x, y int) {
	stats := []struct {
		label string
		value string
	}{
		{"Score", fmt.Sprintf("%d", g.engine.Score())},
		{"Lines", fmt.Sprintf("%d", g.engine.LinesCleared())},
		{"Pieces", fmt.Sprintf("%d", g.engine.PiecesLocked())},
		{"Speed", fmt.Sprintf("%d", g.engine.Speed())},
	}
	for i, s := range stats {
		dst.DrawTextColored(x, y+i*2, s.label, core.ColorGray)
		dst.DrawTextColored(x, y+i*2+1, s.value, core.ColorWhite)
	}

	active := g.engine.Active()
	row := y + len(stats)*2
	dst.DrawTextColored(x, row, "Piece", core.ColorGray)
	dst.DrawTextColored(x, row+1, active.Kind.String(), active.Kind.Color())

	controls := []string{"←/→ move", "↓ drop", "↑ rotate", "P pause", "R restart"}
	for i, c := range controls {
		dst.DrawTextColored(x, row+3+i, c, core.ColorDarkGray)
	}
}

// renderOverlay draws a centered box with one or more lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}

	screen := core.NewRect(0, 0, dst.Width(), dst.Height())
	box := screen.Centered(maxLen+4, len(lines)*2+1)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, l := range lines {
		y := box.Y + 1 + i*2
		x := box.X + (box.W-len([]rune(l)))/2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorYellow
		}
		dst.DrawTextColored(x, y, l, color)
	}
}
