// internal/app/messages.go

// Package app contains the root Bubble Tea model and its messages.
package app

// FrameMsg advances the carousel animation by one frame. Gen is the tick
// chain that scheduled it.
type FrameMsg struct {
	Gen int
}

// ArtSentMsg reports that the image transmission Seq has been drawn and can
// be dropped from the view.
type ArtSentMsg struct {
	Seq int
}
