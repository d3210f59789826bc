// Package tui provides the Bubble Tea integration for the asteroids session:
// the tick scheduler, key input translation, state rendering and the SSH
// serving layer. The simulation core never imports it.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is the periodic scheduler signal; each one becomes a TimeAdvance
// event with the next elapsed tick count.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that delivers tick messages at the
// given rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
