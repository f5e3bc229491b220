package label

import "unicode/utf8"

// Measure estimates the pixel footprint of text flowed into a container of
// the given width. Every character is assumed to occupy the font's fixed
// advance, so the line count is a pure function of length:
//
//	lines = floor(runes * fontWidth / containerWidth) + 1
//
// The block never shrinks to its content: the returned width is always the
// full container width, and even an empty string occupies one line.
// The text is normalized first, since substitution can change its length.
func Measure(text string, font Font, containerWidthDots int) (normalized string, widthDots, heightDots int) {
	normalized = Normalize(text)
	lines := utf8.RuneCountInString(normalized)*font.WidthDots/containerWidthDots + 1
	return normalized, containerWidthDots, lines * font.HeightDots
}
