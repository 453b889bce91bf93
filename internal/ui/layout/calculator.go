// Package layout provides pure functions for UI dimension calculations.
package layout

import (
	"math"

	"github.com/llehouerou/marquee/internal/ui"
)

// LabelRowHeight is the height of one label row: title, then location and date.
const LabelRowHeight = 2

// ContentOpts contains the parameters needed to calculate the deck height.
type ContentOpts struct {
	HeaderHeight int
	FooterHeight int
	LabelsHeight int // 0 if the label panel is hidden
	StatusHeight int // 0 if there is no status message
}

// DeckHeight calculates the rows left for the poster deck: the window height
// minus header, label panel, status line and footer.
func DeckHeight(windowHeight int, opts ContentOpts) int {
	height := windowHeight
	height -= opts.HeaderHeight
	height -= opts.FooterHeight
	height -= opts.LabelsHeight
	height -= opts.StatusHeight
	return max(height, 0)
}

// LabelsHeight returns the height of the label panel including its border.
func LabelsHeight(visible bool) int {
	if !visible {
		return 0
	}
	return LabelRowHeight + ui.BorderHeight
}

// Size is a width and height in terminal cells.
type Size struct {
	Width  int
	Height int
}

// CardSize returns the unscaled card size for a deck. The card takes ratio of
// the deck width and keeps the poster aspect, shrinking when the deck is too
// short to hold it.
func CardSize(deckWidth, deckHeight int, ratio float64) Size {
	if deckWidth <= 0 || deckHeight <= 0 {
		return Size{}
	}

	width := int(float64(deckWidth) * ratio)
	height := int(math.Round(float64(width) * ui.PosterAspect / ui.CellAspect))

	if height > deckHeight {
		height = deckHeight
		width = int(math.Round(float64(height) * ui.CellAspect / ui.PosterAspect))
	}

	return Size{Width: min(width, deckWidth), Height: height}
}

// Scaled applies the magnitude of scale to a size.
func (s Size) Scaled(scale float64) Size {
	f := math.Abs(scale)
	return Size{
		Width:  int(math.Round(float64(s.Width) * f)),
		Height: int(math.Round(float64(s.Height) * f)),
	}
}

// CardColumn returns the left column of a card of the given width whose
// centre is shifted by offset layout pixels from the deck centre.
func CardColumn(deckWidth, cardWidth int, offset, pixelsPerCell float64) int {
	shift := 0
	if pixelsPerCell > 0 {
		shift = int(math.Round(offset / pixelsPerCell))
	}
	return (deckWidth-cardWidth)/2 + shift
}

// CardRow returns the top row of a vertically centred card. It is negative
// when the card is taller than the deck.
func CardRow(deckHeight, cardHeight int) int {
	return (deckHeight - cardHeight) / 2
}

// FitsTitle reports whether a card is wide enough to show text.
func FitsTitle(card Size) bool {
	return card.Width >= ui.MinCardWidth && card.Height >= ui.BorderHeight+1
}
