// Package posterart loads poster images and displays them with a terminal
// image protocol (Kitty or Sixel).
package posterart

import "image"

// Protocol abstracts the terminal image display protocol.
type Protocol interface {
	// Name identifies the protocol in logs.
	Name() string

	// Prepare encodes the image and returns any one-time terminal command.
	// Kitty: transmits to terminal memory, returns escape sequences.
	// Sixel: encodes and caches internally, returns empty string.
	Prepare(img image.Image, id uint32) (string, error)

	// PrepareFromPNG same but from pre-encoded PNG data.
	PrepareFromPNG(pngData []byte, id uint32) (string, error)

	// Place returns the escape sequence to display the image at (row, col),
	// 1-based, sized width x height cells.
	Place(id uint32, row, col, width, height int) string

	// Hide removes the image from the screen but keeps it for a later Place.
	Hide(id uint32) string

	// Delete returns the escape sequence to remove the image entirely.
	Delete(id uint32) string

	// TargetPixelSize returns the pixel dimensions to use when resizing an
	// image that will be displayed in the given number of terminal cells.
	TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int)
}
