// Package overlay composites rendered blocks onto a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// PlaceAt paints block onto base with its top-left corner at column x and
// row y. The block is opaque: spaces inside it cover the base.
// Parts falling outside the base (including negative x or y) are clipped.
func PlaceAt(base, block string, x, y, width int) string {
	if block == "" || width <= 0 {
		return base
	}
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(block, "\n") {
		row := y + i
		if row < 0 {
			continue
		}
		if row >= len(baseLines) {
			break
		}

		w := ansi.StringWidth(line)
		from := max(0, -x)
		to := min(w, width-x)
		if from >= to {
			continue
		}

		content := ansi.Cut(line, from, to)
		baseLines[row] = splice(baseLines[row], content, x+from, x+to, width)
	}

	return strings.Join(baseLines, "\n")
}

// Center paints block in the middle of a width x height base.
func Center(base, block string, width, height int) string {
	lines := strings.Split(block, "\n")
	blockWidth := 0
	for _, l := range lines {
		blockWidth = max(blockWidth, ansi.StringWidth(l))
	}
	x := max(0, (width-blockWidth)/2)
	y := max(0, (height-len(lines))/2)
	return PlaceAt(base, block, x, y, width)
}

// splice replaces columns [start, end) of baseLine with content, padding the
// base to width first.
func splice(baseLine, content string, start, end, width int) string {
	if baseWidth := ansi.StringWidth(baseLine); baseWidth < width {
		baseLine += strings.Repeat(" ", width-baseWidth)
	}

	result := ansi.Cut(baseLine, 0, start) + content
	if end < width {
		result += ansi.Cut(baseLine, end, width)
	}
	return result
}
