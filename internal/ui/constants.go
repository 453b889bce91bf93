// Package ui provides shared UI constants and utilities.
package ui

// Layout constants for consistent sizing across UI components.
const (
	// BorderHeight is the vertical space consumed by a standard panel border.
	BorderHeight = 2

	// BorderWidth is the horizontal space consumed by a standard panel border.
	BorderWidth = 2

	// CellAspect is how many times taller a terminal cell is than it is wide.
	CellAspect = 2

	// PosterAspect is a poster's height relative to its width.
	PosterAspect = 1.5

	// MinCardWidth is the narrowest card that still shows a title.
	MinCardWidth = 6

	// FooterHeight is the space for the key help line.
	FooterHeight = 1
)
