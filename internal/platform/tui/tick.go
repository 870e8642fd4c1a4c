// Package tui provides the Bubble Tea integration for goldmine.
// It handles the terminal UI loop, input mapping, and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. The payload is the wall
// clock time the tick fired, which the engine uses for elapsed-time accrual.
type TickMsg time.Time

// tickCmd returns a command that delivers the next tick after interval.
// The next tick is only scheduled once the previous message has been
// handled, so a slow frame skips ticks instead of backlogging; the engine's
// delta-based accrual makes a late tick lossless.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
