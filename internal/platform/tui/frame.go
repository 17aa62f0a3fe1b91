// Package tui provides the Bubble Tea integration for the pursuit game.
// It handles the terminal loop, key mapping and rendering; all game rules
// live in internal/game.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameMsg is sent once per render frame. The simulation advances to the
// frame's wall-clock time and the view interpolates entity positions.
type FrameMsg time.Time

// frameCmd returns a command that emits frame messages at the given rate.
func frameCmd(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 60
	}
	interval := time.Second / time.Duration(fps)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}
