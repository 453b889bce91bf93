// Package headerbar renders the one-line header above the poster deck.
package headerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/ui/render"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

const brand = "marquee"

// State is what the header shows.
type State struct {
	Title    string // focused poster title
	Position int    // 0-based index of the focused poster
	Total    int
	Images   bool // poster images are being displayed
}

// Render returns the header bar string for the given width.
func Render(s State, width int) string {
	if width < 20 {
		return ""
	}
	t := styles.T()

	left := styles.ApplyBoldGradient(brand, t.Primary, t.Secondary)

	counter := ""
	if s.Total > 0 {
		counter = fmt.Sprintf("%d/%d", s.Position+1, s.Total)
	}
	if s.Images {
		counter = strings.TrimSpace(icons.Image() + " " + counter)
	}
	right := t.S().Muted.Render(counter)

	// Title takes what is left between brand and counter.
	room := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if s.Title != "" && room >= 3 {
		left += "  " + t.S().Title.Render(render.TruncateEllipsis(s.Title, room))
	}

	return render.Row(left, right, width)
}
