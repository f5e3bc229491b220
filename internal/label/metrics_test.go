package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasureLineCount(t *testing.T) {
	font := Font{Name: "3", WidthDots: 14, HeightDots: 24}

	tests := []struct {
		name      string
		text      string
		container int
		wantLines int
	}{
		{"empty string still occupies a line", "", 350, 1},
		{"single char", "x", 350, 1},
		{"just under one line", strings.Repeat("a", 24), 350, 1},                   // 24*14 = 336 < 350
		{"exactly at container width rolls over", strings.Repeat("a", 25), 350, 2}, // 25*14 = 350
		{"two full lines", strings.Repeat("a", 50), 350, 3},
		{"narrow container", "abcdef", 28, 4}, // 6*14/28 = 3, +1
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, width, height := Measure(tt.text, font, tt.container)
			assert.Equal(t, tt.container, width)
			assert.Equal(t, tt.wantLines*font.HeightDots, height)
		})
	}
}

func TestMeasureHeightIsFontMultiple(t *testing.T) {
	font := Font{Name: "2", WidthDots: 12, HeightDots: 20}
	for n := 0; n <= 120; n += 7 {
		_, _, height := Measure(strings.Repeat("x", n), font, 200)
		assert.Greater(t, height, 0)
		assert.Zero(t, height%font.HeightDots, "length %d", n)
	}
}

func TestMeasureRunsNormalizationFirst(t *testing.T) {
	font := Font{Name: "3", WidthDots: 14, HeightDots: 24}

	// The eszett doubles under transliteration, so the measured length is
	// the post-substitution one.
	norm, _, h := Measure(strings.Repeat("ß", 13), font, 350)
	assert.Equal(t, strings.Repeat("ss", 13), norm)
	// 26 runes * 14 = 364 >= 350, so two lines.
	assert.Equal(t, 2*font.HeightDots, h)
}
