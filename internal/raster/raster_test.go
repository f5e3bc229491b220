package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labelprint/internal/label"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func uniformPNG(t *testing.T, w, h int, lum uint8) []byte {
	t.Helper()
	img := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: lum})
		}
	}
	return encodePNG(t, img)
}

// 2 mm at 203 dpi is 16 dots.
const twoMm = 2.0

func TestEncodeDimensions(t *testing.T) {
	bitmap, err := Encode(uniformPNG(t, 64, 64, 0), twoMm, twoMm, 203, Options{})
	require.NoError(t, err)

	assert.Equal(t, 16, bitmap.Width)
	assert.Equal(t, 16, bitmap.Height)
	assert.Equal(t, 2, bitmap.BytesPerRow)
	assert.Len(t, bitmap.Bits, 32)
}

func TestEncodeBlackAndWhite(t *testing.T) {
	black, err := Encode(uniformPNG(t, 32, 32, 0), twoMm, twoMm, 203, Options{})
	require.NoError(t, err)
	for _, b := range black.Bits {
		assert.Equal(t, byte(0xff), b)
	}

	white, err := Encode(uniformPNG(t, 32, 32, 255), twoMm, twoMm, 203, Options{})
	require.NoError(t, err)
	for _, b := range white.Bits {
		assert.Equal(t, byte(0x00), b)
	}
}

func TestEncodeThreshold(t *testing.T) {
	// Luminance 100 is dark under the default cutoff, light under a
	// stricter one.
	src := uniformPNG(t, 32, 32, 100)

	dark, err := Encode(src, twoMm, twoMm, 203, Options{})
	require.NoError(t, err)
	assert.Equal(t, byte(0xff), dark.Bits[0])

	light, err := Encode(src, twoMm, twoMm, 203, Options{Threshold: 50})
	require.NoError(t, err)
	assert.Equal(t, byte(0x00), light.Bits[0])
}

func TestEncodeRowPadding(t *testing.T) {
	// 1.2512 mm at 203 dpi is 10 dots; rows pack into 2 bytes with the
	// trailing 6 bits zero.
	bitmap, err := Encode(uniformPNG(t, 32, 32, 0), 1.2512, twoMm, 203, Options{})
	require.NoError(t, err)

	assert.Equal(t, 10, bitmap.Width)
	assert.Equal(t, 2, bitmap.BytesPerRow)
	for y := 0; y < bitmap.Height; y++ {
		assert.Equal(t, byte(0xff), bitmap.Bits[y*2])
		assert.Equal(t, byte(0xc0), bitmap.Bits[y*2+1])
	}
}

func TestEncodeDither(t *testing.T) {
	// Mid gray dithers into a mix of black and white instead of a solid
	// field.
	bitmap, err := Encode(uniformPNG(t, 64, 64, 128), twoMm, twoMm, 203, Options{Dither: true})
	require.NoError(t, err)

	pixels := Unpack(bitmap)
	blacks := 0
	for _, p := range pixels {
		if p == 1 {
			blacks++
		}
	}
	assert.Greater(t, blacks, 0)
	assert.Less(t, blacks, len(pixels))
}

func TestEncodeErrors(t *testing.T) {
	t.Run("undecodable input", func(t *testing.T) {
		_, err := Encode([]byte("not an image"), twoMm, twoMm, 203, Options{})
		assert.ErrorIs(t, err, label.ErrDecode)
	})

	t.Run("bad geometry", func(t *testing.T) {
		src := uniformPNG(t, 8, 8, 0)
		for _, args := range [][3]float64{{0, 2, 203}, {2, -1, 203}, {2, 2, 0}} {
			_, err := Encode(src, args[0], args[1], int(args[2]), Options{})
			assert.ErrorIs(t, err, label.ErrGeometry)
		}
	})
}

func TestUnpackRoundTrip(t *testing.T) {
	// A checkerboard survives pack/unpack exactly: the source is already
	// at the target size so resampling cannot blur it.
	img := image.NewGray(image.Rect(0, 0, 16, 16))
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			lum := uint8(255)
			if (x/4+y/4)%2 == 0 {
				lum = 0
			}
			img.SetGray(x, y, color.Gray{Y: lum})
		}
	}

	bitmap, err := Encode(encodePNG(t, img), twoMm, twoMm, 203, Options{})
	require.NoError(t, err)

	pixels := Unpack(bitmap)
	require.Len(t, pixels, 256)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			want := byte(0)
			if (x/4+y/4)%2 == 0 {
				want = 1
			}
			assert.Equal(t, want, pixels[y*16+x], "pixel %d,%d", x, y)
		}
	}
}
