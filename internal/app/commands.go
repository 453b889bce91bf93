// internal/app/commands.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// artSentDelay is how long a transmission stays in the view. One redraw is
// enough; the delay only has to outlast it.
const artSentDelay = 100 * time.Millisecond

// FrameCmd schedules the next animation frame of chain gen.
func FrameCmd(interval time.Duration, gen int) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return FrameMsg{Gen: gen}
	})
}

// ArtSentCmd returns a command that marks transmission seq as sent.
func ArtSentCmd(seq int) tea.Cmd {
	return tea.Tick(artSentDelay, func(time.Time) tea.Msg {
		return ArtSentMsg{Seq: seq}
	})
}
