// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal loop, input mapping, sound and result recording.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floodit/internal/core"
)

// TickMsg drives one simulation frame.
type TickMsg time.Time

// frameInterval is the time between frames at rate frames per second.
// Non-positive rates fall back to the default rate.
func frameInterval(rate int) time.Duration {
	if rate <= 0 {
		rate = core.DefaultTickRate
	}
	return time.Second / time.Duration(rate)
}

// tickCmd schedules the next frame. Each frame schedules its successor, so a
// slow frame delays the loop instead of queueing ticks.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(frameInterval(rate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
