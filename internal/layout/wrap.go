// Package layout implements the text wrapping used to fit card copy into
// the margin-inset text box.
package layout

import (
	"strings"

	"golang.org/x/image/font"
)

// WrapWords breaks text into lines whose rendered width, measured with
// face, does not exceed maxWidth pixels. It is a greedy wrap: each line
// packs as many words as fit before overflowing to the next. Words are
// never split and original word order is preserved. A single word wider
// than the budget is placed alone on its own line; the overflow is
// accepted silently. Empty text yields no lines.
func WrapWords(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var current string

	for _, word := range strings.Fields(text) {
		candidate := word
		if current != "" {
			candidate = current + " " + word
		}
		if font.MeasureString(face, candidate).Ceil() <= maxWidth {
			current = candidate
			continue
		}
		if current != "" {
			lines = append(lines, current)
		}
		current = word
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

// WrapRunes is the character-granularity variant used for tokens that must
// not be broken at spaces, such as URLs. Concatenating the returned lines
// reproduces s exactly: no characters are dropped, duplicated, or inserted.
// Every line holds at least one rune, so a budget narrower than a single
// glyph still terminates.
func WrapRunes(face font.Face, s string, maxWidth int) []string {
	var lines []string
	var current []rune

	for _, r := range s {
		if len(current) > 0 &&
			font.MeasureString(face, string(current)+string(r)).Ceil() > maxWidth {
			lines = append(lines, string(current))
			current = current[:0]
		}
		current = append(current, r)
	}
	if len(current) > 0 {
		lines = append(lines, string(current))
	}
	return lines
}
