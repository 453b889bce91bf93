package ui

// Base provides size and visibility management shared by the carousel's
// panels. Embed it in component models:
//
//	type Model struct {
//	    ui.Base
//	    items []poster.Item
//	}
type Base struct {
	width, height int
	hidden        bool
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = max(width, 0)
	b.height = max(height, 0)
}

// Size returns the component dimensions.
func (b Base) Size() (width, height int) {
	return b.width, b.height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// SetHidden hides or shows the component.
func (b *Base) SetHidden(hidden bool) {
	b.hidden = hidden
}

// Hidden reports whether the component is hidden.
func (b Base) Hidden() bool {
	return b.hidden
}

// Empty reports whether the component has nothing to draw into.
func (b Base) Empty() bool {
	return b.hidden || b.width <= 0 || b.height <= 0
}
