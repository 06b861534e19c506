// Package tui provides the Bubble Tea integration for the game platform.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ClockMsg is one second of game countdown.
// Gen ties the message to the clock chain that scheduled it, so a chain
// left over from a previous session is dropped instead of double-ticking.
type ClockMsg struct {
	Gen  int
	Time time.Time
}

// FrameMsg triggers one cosmetic animation frame.
type FrameMsg time.Time

// clockCmd schedules the next countdown second for chain gen.
func clockCmd(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return ClockMsg{Gen: gen, Time: t}
	})
}

// frameCmd returns a Bubble Tea command that sends frame messages at the specified rate.
func frameCmd(frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 30
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
