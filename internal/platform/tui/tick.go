// Package tui is the Bubble Tea frame driver: it ticks games at a fixed
// rate, maps keys to actions, renders screens and serves sessions over SSH.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// game model that scheduled it, so a tick still in flight when a session
// leaves a game does not drive the next one.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickCmd returns a command that delivers the next TickMsg after one
// tick interval.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
