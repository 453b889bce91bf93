package posterart

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder for posters
	"image/png"

	"github.com/nfnt/resize"
)

var (
	// ErrDecode marks failures to decode or re-encode image data.
	ErrDecode = errors.New("decode image")

	errEmptyImage = errors.New("empty image data")
)

// ProcessedImage is a poster resized for display and encoded as PNG.
type ProcessedImage struct {
	Data   []byte
	Width  int // pixels
	Height int // pixels
}

// Process decodes raw image bytes, shrinks the image to fit within
// maxWidth x maxHeight pixels keeping its aspect, and encodes it as PNG.
func Process(raw []byte, maxWidth, maxHeight int) (*ProcessedImage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrDecode, errEmptyImage)
	}
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	//nolint:gosec // cell based sizes are small
	thumb := resize.Thumbnail(uint(max(maxWidth, 1)), uint(max(maxHeight, 1)), img, resize.Lanczos3)

	data, err := encodePNG(thumb)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	b := thumb.Bounds()
	return &ProcessedImage{Data: data, Width: b.Dx(), Height: b.Dy()}, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
