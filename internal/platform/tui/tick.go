// Package tui provides the Bubble Tea host for the snake engine: the frame
// loop that feeds wall-clock deltas to a session, key mapping, rendering,
// menus, the scoreboard and the Wish SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per host frame. The engine decides from the elapsed
// time whether a logical tick happens.
type FrameMsg struct {
	At   time.Time
	Loop uint64 // Frame loop that scheduled the message
}

var loopIDs atomic.Uint64

// newLoopID returns an identifier for a fresh frame loop. A model only
// reschedules frames of its own loop, so a stale message left over from a
// previous game cannot start a second loop.
func newLoopID() uint64 {
	return loopIDs.Add(1)
}

// frameCmd schedules the next frame of loop at the given frames per second.
func frameCmd(loop uint64, frameRate int) tea.Cmd {
	if frameRate <= 0 {
		frameRate = 60
	}
	interval := time.Second / time.Duration(frameRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg{At: t, Loop: loop}
	})
}
