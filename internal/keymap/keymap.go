package keymap

import "github.com/charmbracelet/bubbles/key"

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // "global", "carousel", "help"
}

// PageSize is how many posters a page jump skips.
const PageSize = 3

// All contains all key bindings for dispatch and help generation.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit", "global"},
	{ActionHelp, []string{"?"}, "Show help", "global"},
	{ActionToggleLabels, []string{"t"}, "Toggle label panel", "global"},
	{ActionToggleImages, []string{"i"}, "Toggle poster images", "global"},

	// Carousel
	{ActionNext, []string{"l", "right", "j", "down"}, "Next poster", "carousel"},
	{ActionPrev, []string{"h", "left", "k", "up"}, "Previous poster", "carousel"},
	{ActionJumpStart, []string{"g", "home"}, "First poster", "carousel"},
	{ActionJumpEnd, []string{"G", "end"}, "Last poster", "carousel"},
	{ActionPageNext, []string{"pgdown", "L"}, "Skip ahead", "carousel"},
	{ActionPagePrev, []string{"pgup", "H"}, "Skip back", "carousel"},

	// Help popup
	{ActionScrollDown, []string{"j", "down"}, "Scroll down", "help"},
	{ActionScrollUp, []string{"k", "up"}, "Scroll up", "help"},
	{ActionClose, []string{"?", "esc", "q"}, "Close help", "help"},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ShortHelp returns the bindings shown in the footer, as bubbles key
// bindings so they can be rendered by the help component.
func ShortHelp() []key.Binding {
	shown := []Action{ActionPrev, ActionNext, ActionJumpStart, ActionJumpEnd, ActionHelp, ActionQuit}
	result := make([]key.Binding, 0, len(shown))
	for _, action := range shown {
		for _, kb := range All {
			if kb.Action == action && kb.Context != "help" {
				result = append(result, kb.KeyBinding())
				break
			}
		}
	}
	return result
}

// KeyBinding converts b into a bubbles key binding. The help text shows the
// first key only.
func (b Binding) KeyBinding() key.Binding {
	helpKey := ""
	if len(b.Keys) > 0 {
		helpKey = DisplayKey(b.Keys[0])
	}
	return key.NewBinding(
		key.WithKeys(b.Keys...),
		key.WithHelp(helpKey, b.Description),
	)
}

// DisplayKey returns a compact label for a key string.
func DisplayKey(k string) string {
	switch k {
	case "left":
		return "←"
	case "right":
		return "→"
	case "up":
		return "↑"
	case "down":
		return "↓"
	case " ":
		return "space"
	}
	return k
}
