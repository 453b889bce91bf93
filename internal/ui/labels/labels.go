// Package labels renders the overflow label panel: a one-row window onto the
// titles, locations and dates of every poster, scrolled by the carousel's
// animated value.
package labels

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui"
	"github.com/llehouerou/marquee/internal/ui/layout"
	"github.com/llehouerou/marquee/internal/ui/render"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Model is the label panel.
type Model struct {
	ui.Base
	items []poster.Item
}

// New creates a label panel for items.
func New(items []poster.Item) Model {
	return Model{items: items}
}

// Len returns the number of labels.
func (m Model) Len() int {
	return len(m.items)
}

// viewportRows is the number of content rows visible inside the border.
func (m Model) viewportRows() int {
	rows := m.Height() - ui.BorderHeight
	if rows <= 0 {
		return layout.LabelRowHeight
	}
	return rows
}

// Offset returns the scroll position in lines for an active value:
// round(active * row height), clamped so the window never runs past the
// first or last label.
func (m Model) Offset(active float64) int {
	total := len(m.items) * layout.LabelRowHeight
	maxOffset := max(total-m.viewportRows(), 0)

	off := int(math.Round(active * layout.LabelRowHeight))
	return min(max(off, 0), maxOffset)
}

// View renders the panel scrolled to the active value.
func (m Model) View(active float64) string {
	if m.Empty() {
		return ""
	}
	inner := m.Width() - ui.BorderWidth
	rows := m.Height() - ui.BorderHeight
	if inner <= 0 || rows <= 0 {
		return ""
	}

	lines := m.lines(inner)
	off := m.Offset(active)

	visible := make([]string, rows)
	for i := range visible {
		if off+i < len(lines) {
			visible[i] = lines[off+i]
		} else {
			visible[i] = strings.Repeat(" ", inner)
		}
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Render(strings.Join(visible, "\n"))
}

// lines builds the full label strip, LabelRowHeight lines per item.
func (m Model) lines(width int) []string {
	s := styles.T().S()
	out := make([]string, 0, len(m.items)*layout.LabelRowHeight)

	for _, item := range m.items {
		title := s.Title.Render(render.TruncateEllipsis(item.Title, width))
		out = append(out, fill(title, width))
		out = append(out, fill(details(item, width), width))
	}
	return out
}

// details renders "location  date", dropping the date when both do not fit.
func details(item poster.Item, width int) string {
	s := styles.T().S()
	location := render.Sanitize(icons.FormatLocation(item.Location))
	date := render.Sanitize(icons.FormatDate(item.Date))

	if date == "" {
		return s.Location.Render(render.TruncateEllipsis(location, width))
	}
	if location == "" {
		return s.Date.Render(render.TruncateEllipsis(date, width))
	}
	if lipgloss.Width(location)+2+lipgloss.Width(date) > width {
		return s.Location.Render(render.TruncateEllipsis(location, width))
	}
	return render.Row(s.Location.Render(location), s.Date.Render(date), width)
}

func fill(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
