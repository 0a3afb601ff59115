package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
	engine "github.com/vovakirdan/tui-tetris/internal/tetris"
)

var statsStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("241")).
	Padding(0, 1)

// renderBoard draws the grid with the active piece, two columns per cell.
func renderBoard(s engine.Snapshot, shapes engine.Shapes) string {
	var sb strings.Builder
	for y, row := range s.Display(shapes) {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteString(tui.StyleFor(c.Color()).Render(cellGlyph(c)))
		}
	}
	return sb.String()
}

func cellGlyph(c engine.Cell) string {
	switch {
	case c.IsEmpty():
		return "· "
	case c.IsBorder():
		return "▓▓"
	default:
		return "██"
	}
}

// renderStats draws the counters panel shown beside the board.
func renderStats(s engine.Snapshot, tick uint64) string {
	lines := []string{
		fmt.Sprintf("Score  %d", s.Score),
		fmt.Sprintf("Lines  %d", s.LinesCleared),
		fmt.Sprintf("Pieces %d", s.PiecesLocked),
		fmt.Sprintf("Speed  %d", s.Speed),
		fmt.Sprintf("Piece  %s", s.Active.Kind),
		fmt.Sprintf("Tick   %d", tick),
	}
	if s.GameOver() {
		lines = append(lines, "", "GAME OVER")
	}
	return statsStyle.Render(strings.Join(lines, "\n"))
}

// renderFrame lays the board and the stats panel side by side.
func renderFrame(s engine.Snapshot, shapes engine.Shapes, tick uint64) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, renderBoard(s, shapes), "  ", renderStats(s, tick))
}
