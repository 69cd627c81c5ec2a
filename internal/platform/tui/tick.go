// Package tui provides the Bubble Tea integration for the arcade platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// Gen ties the tick to the game model that scheduled it; a model drops ticks
// from an earlier run so leaving and re-entering a game never doubles the rate.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd schedules the next tick for generation gen.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}
