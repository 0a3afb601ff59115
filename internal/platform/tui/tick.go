// Package tui provides the Bubble Tea integration for the tetris platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. ID names the tick
// loop that scheduled it; models drop ticks from loops they did not start.
type TickMsg struct {
	ID int64
	At time.Time
}

var tickLoops atomic.Int64

// nextTickLoop returns a fresh tick loop ID.
func nextTickLoop() int64 {
	return tickLoops.Add(1)
}

// tickInterval returns the wall-clock length of one tick at the given rate.
// Non-positive rates fall back to 20 ticks per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 20
	}
	return time.Second / time.Duration(tickRate)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(id int64, tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{ID: id, At: t}
	})
}
