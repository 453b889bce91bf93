// Package helpbindings provides a scrollable popup listing the key bindings.
package helpbindings

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/ui"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// CloseMsg signals the help popup should close.
type CloseMsg struct{}

// categoryOrder defines the display order of binding categories.
var categoryOrder = []string{"carousel", "global"}

var categoryLabels = map[string]string{
	"global":   "Global",
	"carousel": "Carousel",
}

// chrome is the space taken by the border, title and footer.
const chrome = ui.BorderHeight + 4

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	bindings     []keymap.Binding
	keys         *keymap.Resolver
	scrollOffset int
}

// New creates a help popup listing the given contexts.
func New(contexts ...string) Model {
	m := Model{keys: keymap.ForContexts("help")}
	for _, ctx := range categoryOrder {
		if slices.Contains(contexts, ctx) {
			m.bindings = append(m.bindings, keymap.ByContext(ctx)...)
		}
	}
	return m
}

// ScrollOffset returns the first visible content line.
func (m Model) ScrollOffset() int {
	return m.scrollOffset
}

// Reset scrolls back to the top.
func (m *Model) Reset() {
	m.scrollOffset = 0
}

// Update handles keys while the popup is open.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.keys.Resolve(keyMsg.String()) {
	case keymap.ActionClose:
		return m, func() tea.Msg { return CloseMsg{} }
	case keymap.ActionScrollDown:
		if m.scrollOffset < m.maxScroll() {
			m.scrollOffset++
		}
	case keymap.ActionScrollUp:
		if m.scrollOffset > 0 {
			m.scrollOffset--
		}
	}
	return m, nil
}

// View renders the popup with its border.
func (m Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	lines := m.contentLines()

	maxWidth := 0
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	start := min(m.scrollOffset, len(lines))
	end := min(start+m.visibleHeight(), len(lines))
	visible := slices.Clone(lines[start:end])
	for i, line := range visible {
		if w := lipgloss.Width(line); w < maxWidth {
			visible[i] = line + strings.Repeat(" ", maxWidth-w)
		}
	}

	t := styles.T()
	var sb strings.Builder
	sb.WriteString(lipgloss.NewStyle().Bold(true).Foreground(t.Primary).Render("Help"))
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(visible, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(t.S().Subtle.Render(m.footer()))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.BorderFocus).
		Padding(0, 1).
		Render(sb.String())
}

func (m Model) contentLines() []string {
	t := styles.T()
	keyStyle := lipgloss.NewStyle().Foreground(t.Primary).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(t.Secondary).Bold(true)

	maxKeyWidth := 0
	for _, b := range m.bindings {
		maxKeyWidth = max(maxKeyWidth, lipgloss.Width(keyLabel(b)))
	}

	var lines []string
	current := ""
	for _, b := range m.bindings {
		if b.Context != current {
			if current != "" {
				lines = append(lines, "")
			}
			label := categoryLabels[b.Context]
			if label == "" {
				label = b.Context
			}
			lines = append(lines,
				headerStyle.Render(label),
				t.S().Subtle.Render(strings.Repeat("─", maxKeyWidth+15)))
			current = b.Context
		}

		k := keyLabel(b)
		padded := k + strings.Repeat(" ", maxKeyWidth-lipgloss.Width(k))
		lines = append(lines, keyStyle.Render(padded)+"  "+t.S().Base.Render(b.Description))
	}
	return lines
}

func keyLabel(b keymap.Binding) string {
	keys := make([]string, len(b.Keys))
	for i, k := range b.Keys {
		keys[i] = keymap.DisplayKey(k)
	}
	return strings.Join(keys, ", ")
}

// footer lists the popup's own keys as bound in the help context.
func (m Model) footer() string {
	closeHint := m.hint(keymap.ActionClose, 2) + " close"
	if m.maxScroll() == 0 {
		return closeHint
	}
	scroll := m.hint(keymap.ActionScrollDown, 1) + "/" + m.hint(keymap.ActionScrollUp, 1)
	return scroll + " scroll · " + closeHint
}

// hint joins the first n keys bound to action.
func (m Model) hint(action keymap.Action, n int) string {
	keys := m.keys.KeysFor(action)
	keys = keys[:min(n, len(keys))]
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = keymap.DisplayKey(k)
	}
	return strings.Join(labels, "/")
}

func (m Model) visibleHeight() int {
	return max(m.Height()-chrome, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.contentLines())-m.visibleHeight(), 0)
}
