package posterart

import (
	"encoding/base64"
	"fmt"
	"image"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	kittyChunkSize = 4096
)

// Kitty implements Protocol with the Kitty graphics protocol. Images are
// transmitted once and then placed by ID.
type Kitty struct{}

func (Kitty) Name() string { return "kitty" }

func (k Kitty) Prepare(img image.Image, id uint32) (string, error) {
	data, err := encodePNG(img)
	if err != nil {
		return "", err
	}
	return k.PrepareFromPNG(data, id)
}

// PrepareFromPNG transmits PNG data without displaying it (a=t), chunked
// as the protocol requires.
func (Kitty) PrepareFromPNG(pngData []byte, id uint32) (string, error) {
	if len(pngData) == 0 {
		return "", errEmptyImage
	}
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100: PNG, q=2: suppress responses
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String(), nil
}

// Place displays a transmitted image. A fixed placement ID (p=1) makes each
// placement replace the previous one instead of leaving ghosts behind.
func (Kitty) Place(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// Hide deletes the placements of an image (d=i) and keeps its data.
func (Kitty) Hide(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// Delete deletes the placements and frees the image data (d=I).
func (Kitty) Delete(id uint32) string {
	return fmt.Sprintf("%sa=d,d=I,i=%d,q=2;%s", escStart, id, escEnd)
}

// TargetPixelSize assumes 8x16 pixel cells.
func (Kitty) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * 8, heightCells * 16
}
