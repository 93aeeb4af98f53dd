// Package tui provides the Bubble Tea integration for gridsnake. It handles
// the terminal UI loop, input mapping, and frame timing; the simulation
// itself lives in internal/snake.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a frame. It carries the wall-clock time so the
// model can measure elapsed time between frames; the movement interval is
// decoupled from the frame rate.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the
// specified frame rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
