package render

import (
	"strings"

	"github.com/rivo/uniseg"
)

// mirrorPairs maps characters to their horizontal mirror image.
var mirrorPairs = map[string]string{
	"(": ")", ")": "(",
	"[": "]", "]": "[",
	"{": "}", "}": "{",
	"<": ">", ">": "<",
	"/": "\\", "\\": "/",
	"╭": "╮", "╮": "╭",
	"╰": "╯", "╯": "╰",
	"┏": "┓", "┓": "┏",
	"┗": "┛", "┛": "┗",
	"┌": "┐", "┐": "┌",
	"└": "┘", "┘": "└",
	"▌": "▐", "▐": "▌",
	"◀": "▶", "▶": "◀",
}

// Mirror flips a plain (unstyled) line horizontally: grapheme clusters are
// reversed and characters with a mirror image are swapped for it.
func Mirror(line string) string {
	var clusters []string
	gr := uniseg.NewGraphemes(line)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	var b strings.Builder
	b.Grow(len(line))
	for i := len(clusters) - 1; i >= 0; i-- {
		c := clusters[i]
		if m, ok := mirrorPairs[c]; ok {
			c = m
		}
		b.WriteString(c)
	}
	return b.String()
}
