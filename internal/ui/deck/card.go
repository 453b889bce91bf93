package deck

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui/layout"
	"github.com/llehouerou/marquee/internal/ui/render"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// face is the plain interior of a card, one string per inner row.
type face struct {
	rows     []string
	titleRow int // -1 when the card shows no text
}

// cardFace lays out title, location and date in the middle rows of the
// interior. A mirrored card has its whole face flipped.
func cardFace(item poster.Item, c Card, blank bool) face {
	iw, ih := c.Size.Width-2, c.Size.Height-2
	f := face{rows: make([]string, ih), titleRow: -1}

	var lines []string
	if !blank && layout.FitsTitle(c.Size) {
		title := item.Title
		if c.Focused {
			title = icons.FormatPoster(title)
		}
		lines = append(lines, strings.ToUpper(render.Sanitize(title)))
		if item.Location != "" {
			lines = append(lines, render.Sanitize(item.Location))
		}
		if item.Date != "" {
			lines = append(lines, render.Sanitize(item.Date))
		}
		lines = lines[:min(len(lines), ih)]
	}

	top := (ih - len(lines)) / 2
	if len(lines) > 0 {
		f.titleRow = top
	}
	for i := range f.rows {
		var text string
		if i >= top && i-top < len(lines) {
			text = lines[i-top]
		}
		row := render.Center(text, iw)
		if c.Mirrored {
			row = render.Mirror(row)
		}
		f.rows[i] = row
	}
	return f
}

// renderCard styles a card: colored border, and a vertical gradient behind
// the face derived from the poster title. blank leaves the face empty and
// unpainted for an image.
func renderCard(item poster.Item, c Card, blank bool) string {
	w, h := c.Size.Width, c.Size.Height
	if w < 2 || h < 2 {
		return ""
	}

	t := styles.T()
	b := styles.CardStyle(c.Focused).GetBorderStyle()
	border := lipgloss.NewStyle().Foreground(t.Border)
	if c.Focused {
		border = border.Foreground(t.BorderFocus)
	}

	f := cardFace(item, c, blank)
	from, to := styles.CardColors(item.Title)
	gradient := styles.VerticalGradient(len(f.rows), from, to)

	out := make([]string, 0, h)
	out = append(out, border.Render(b.TopLeft+strings.Repeat(b.Top, w-2)+b.TopRight))
	for i, r := range f.rows {
		style := lipgloss.NewStyle().Foreground(t.FgBase)
		if !blank {
			style = style.Background(gradient[i])
		}
		if i == f.titleRow {
			style = style.Bold(true)
		}
		out = append(out, border.Render(b.Left)+style.Render(r)+border.Render(b.Right))
	}
	out = append(out, border.Render(b.BottomLeft+strings.Repeat(b.Bottom, w-2)+b.BottomRight))

	return strings.Join(out, "\n")
}
