// Package deck renders the poster stack: every poster becomes a bordered
// card whose position, size and mirroring follow its carousel transform,
// painted in ascending depth.
package deck

import (
	"strings"

	"github.com/llehouerou/marquee/internal/carousel"
	"github.com/llehouerou/marquee/internal/poster"
	"github.com/llehouerou/marquee/internal/ui"
	"github.com/llehouerou/marquee/internal/ui/layout"
	"github.com/llehouerou/marquee/internal/ui/overlay"
)

// Config maps layout pixels onto terminal cells.
type Config struct {
	PixelsPerCell  float64
	CardWidthRatio float64
}

// DefaultConfig returns the deck defaults.
func DefaultConfig() Config {
	return Config{PixelsPerCell: 4, CardWidthRatio: 0.8}
}

// Card is the resolved geometry of one poster in the deck.
type Card struct {
	Index    int
	X, Y     int // top-left cell, may be negative
	Size     layout.Size
	Mirrored bool
	Focused  bool
}

// Rect is an area of the deck in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Model is the poster deck view.
type Model struct {
	ui.Base
	items []poster.Item
	cfg   Config
}

// New creates a deck for items.
func New(items []poster.Item, cfg Config) Model {
	def := DefaultConfig()
	if cfg.PixelsPerCell <= 0 {
		cfg.PixelsPerCell = def.PixelsPerCell
	}
	if cfg.CardWidthRatio <= 0 || cfg.CardWidthRatio > 1 {
		cfg.CardWidthRatio = def.CardWidthRatio
	}
	return Model{items: items, cfg: cfg}
}

// Config returns the deck configuration.
func (m Model) Config() Config {
	return m.cfg
}

// CardSize returns the unscaled card size for the current deck size.
func (m Model) CardSize() layout.Size {
	return layout.CardSize(m.Width(), m.Height(), m.cfg.CardWidthRatio)
}

// Cards resolves layers into card geometry, keeping paint order. focus is
// the index drawn with the focus border, or -1.
func (m Model) Cards(layers []carousel.Layer, focus int) []Card {
	base := m.CardSize()
	cards := make([]Card, 0, len(layers))

	for _, l := range layers {
		size := base.Scaled(l.Scale)
		cards = append(cards, Card{
			Index:    l.Index,
			X:        layout.CardColumn(m.Width(), size.Width, l.Offset, m.cfg.PixelsPerCell),
			Y:        layout.CardRow(m.Height(), size.Height),
			Size:     size,
			Mirrored: l.Mirrored(),
			Focused:  l.Index == focus,
		})
	}
	return cards
}

// View renders the deck. When art is true the focused card's interior is
// left blank for a terminal image.
func (m Model) View(layers []carousel.Layer, focus int, art bool) string {
	if m.Empty() {
		return ""
	}
	width, height := m.Size()

	row := strings.Repeat(" ", width)
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	view := strings.Join(rows, "\n")

	for _, c := range m.Cards(layers, focus) {
		if c.Index < 0 || c.Index >= len(m.items) {
			continue
		}
		block := renderCard(m.items[c.Index], c, art && c.Focused)
		view = overlay.PlaceAt(view, block, c.X, c.Y, width)
	}
	return view
}

// ArtRect returns the interior of the focused card, where a poster image
// goes. ok is false when there is no focused card or its interior is not
// entirely inside the deck.
func (m Model) ArtRect(layers []carousel.Layer, focus int) (Rect, bool) {
	for _, c := range m.Cards(layers, focus) {
		if !c.Focused {
			continue
		}
		r := Rect{
			X:      c.X + 1,
			Y:      c.Y + 1,
			Width:  c.Size.Width - ui.BorderWidth,
			Height: c.Size.Height - ui.BorderHeight,
		}
		if r.Width <= 0 || r.Height <= 0 {
			return Rect{}, false
		}
		if r.X < 0 || r.Y < 0 || r.X+r.Width > m.Width() || r.Y+r.Height > m.Height() {
			return Rect{}, false
		}
		return r, true
	}
	return Rect{}, false
}
