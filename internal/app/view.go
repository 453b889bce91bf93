// internal/app/view.go
package app

import (
	"strings"

	"github.com/llehouerou/marquee/internal/keymap"
	"github.com/llehouerou/marquee/internal/ui/headerbar"
	"github.com/llehouerou/marquee/internal/ui/overlay"
	"github.com/llehouerou/marquee/internal/ui/render"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	layers := m.Carousel.Layers()
	focus := m.Carousel.Index()

	rect, item, art := m.artTarget()
	art = art && !m.showHelp && m.Art.Ready(item.Image, rect.Width, rect.Height)

	current, _ := m.focused()
	header := headerbar.Render(headerbar.State{
		Title:    current.Title,
		Position: focus,
		Total:    m.Carousel.Len(),
		Images:   m.showImages,
	}, m.Width)

	sections := []string{header, m.Deck.View(layers, focus, art)}
	if m.showLabels {
		sections = append(sections, m.Labels.View(m.Carousel.Active()))
	}
	sections = append(sections, m.renderStatus(), m.footer.ShortHelpView(keymap.ShortHelp()))

	view := strings.Join(sections, "\n")

	if m.showHelp {
		view = overlay.Center(view, m.Help.View(), m.Width, m.Height)
	}

	view = enforceHeight(view, m.Height)

	// Transmission goes first so the placement below can refer to it.
	if m.artPending != "" {
		view = m.artPending + view
	}

	if art {
		// Terminal positions are 1-based; the deck starts below the header.
		view += m.Art.Placement(headerbar.Height+rect.Y+1, rect.X+1)
	} else {
		view += m.Art.Hide()
	}

	return view
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	return styles.T().S().Error.Render(render.TruncateEllipsis(m.status, m.Width))
}

// enforceHeight ensures the view has exactly the specified number of lines.
func enforceHeight(view string, targetHeight int) string {
	lines := strings.Split(view, "\n")

	switch {
	case len(lines) < targetHeight:
		lines = append(lines, make([]string, targetHeight-len(lines))...)
	case len(lines) > targetHeight:
		lines = lines[:targetHeight]
	default:
		return view
	}

	return strings.Join(lines, "\n")
}
