// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit         Action = "quit"
	ActionHelp         Action = "help"
	ActionToggleLabels Action = "toggle_labels"
	ActionToggleImages Action = "toggle_images"

	// Carousel actions
	ActionNext      Action = "next"
	ActionPrev      Action = "prev"
	ActionJumpStart Action = "jump_start"
	ActionJumpEnd   Action = "jump_end"
	ActionPageNext  Action = "page_next"
	ActionPagePrev  Action = "page_prev"

	// Help popup actions
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
	ActionClose      Action = "close"
)
