package testutil

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Harness wraps a Bubble Tea model for testing, providing helpers to
// simulate user input and drive command chains.
type Harness struct {
	model tea.Model
	cmds  []tea.Cmd
}

// NewHarness creates a harness for m and collects its init command.
func NewHarness(m tea.Model) *Harness {
	h := &Harness{model: m}
	if cmd := m.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Model returns the current model for type assertion.
func (h *Harness) Model() tea.Model {
	return h.model
}

// View returns the model's rendered content.
func (h *Harness) View() string {
	return h.model.View()
}

// Send delivers msg to the model and returns the resulting command.
func (h *Harness) Send(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.model, cmd = h.model.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// SendKey simulates typing a key.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendSpecialKey sends a special key (arrows, escape, home, ...).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.Send(tea.KeyMsg{Type: keyType})
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	return cmd()
}

// Run executes cmd and feeds every resulting message back into the model,
// following batches and the commands they produce, until the chain ends or
// limit messages have been delivered. It returns the number delivered.
func (h *Harness) Run(cmd tea.Cmd, limit int) int {
	queue := []tea.Cmd{cmd}
	delivered := 0

	for len(queue) > 0 && delivered < limit {
		next := queue[0]
		queue = queue[1:]

		msg := ExecuteCmd(next)
		switch msg := msg.(type) {
		case nil:
			continue
		case tea.BatchMsg:
			queue = append(queue, msg...)
			continue
		case tea.QuitMsg:
			return delivered
		default:
			if c := h.Send(msg); c != nil {
				queue = append(queue, c)
			}
			delivered++
		}
	}
	return delivered
}
