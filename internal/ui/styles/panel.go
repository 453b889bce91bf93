package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cardBorder      = lipgloss.RoundedBorder()
	cardFocusBorder = lipgloss.ThickBorder()
)

// CardStyle returns the border style of a poster card. The focused card
// gets a heavier accent border.
func CardStyle(focused bool) lipgloss.Style {
	t := T()
	if focused {
		return lipgloss.NewStyle().
			BorderStyle(cardFocusBorder).
			BorderForeground(t.BorderFocus)
	}
	return lipgloss.NewStyle().
		BorderStyle(cardBorder).
		BorderForeground(t.Border)
}

func upper(s string) string {
	return strings.ToUpper(s)
}
