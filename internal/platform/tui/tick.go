// Package tui provides the Bubble Tea host for the arena. It maps terminal
// keys to input frames, drives the round at its current tick interval and
// renders snapshots.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation tick. Loop identifies the tick
// chain that scheduled it; messages from an abandoned chain are dropped.
type TickMsg struct {
	At   time.Time
	Loop int
}

// tickCmd schedules the next tick after interval. The interval is read from
// the round every time, so speed-ups apply from the following tick.
func tickCmd(interval time.Duration, loop int) tea.Cmd {
	if interval <= 0 {
		interval = time.Second / 8
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Loop: loop}
	})
}
