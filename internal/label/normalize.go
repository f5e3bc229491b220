package label

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// asciiFold undoes diacritics the NFD decomposition cannot reach: stroked
// and ligature letters have no combining-mark decomposition.
var asciiFold = map[rune]string{
	'đ': "d", 'Đ': "D",
	'ł': "l", 'Ł': "L",
	'ø': "o", 'Ø': "O",
	'ß': "ss",
	'æ': "ae", 'Æ': "AE",
	'œ': "oe", 'Œ': "OE",
	'þ': "th", 'Þ': "TH",
}

// stripMarks removes combining marks after NFD decomposition, reducing
// accented letters to their ASCII base.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalize prepares text for embedding in a comma-delimited printer
// instruction. Steps, in order:
//
//  1. escape command-syntax characters: backslash, double quote and single
//     quote each get a leading backslash; a literal comma would desynchronize
//     the instruction's fields, so it is replaced with a vertical bar;
//  2. transliterate to the nearest ASCII representation, since the printer's
//     resident font cannot render arbitrary Unicode.
//
// Normalization must run before measurement: substitution can change length.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\'':
			b.WriteString(`\'`)
		case ',':
			b.WriteByte('|')
		default:
			b.WriteRune(r)
		}
	}
	return transliterate(b.String())
}

// EscapePayload escapes only the characters that would break out of a quoted
// instruction field: backslash and double quote. Unlike Normalize it leaves
// commas and non-ASCII bytes intact, since a machine-readable payload must
// survive byte for byte; the printer encodes it, not the resident font.
func EscapePayload(payload string) string {
	var b strings.Builder
	b.Grow(len(payload) + 4)
	for _, r := range payload {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func transliterate(s string) string {
	folded, _, err := transform.String(stripMarks, s)
	if err != nil {
		folded = s
	}

	var b strings.Builder
	b.Grow(len(folded))
	for _, r := range folded {
		if r < 0x80 {
			b.WriteRune(r)
			continue
		}
		if repl, ok := asciiFold[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
