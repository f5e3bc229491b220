// Package raster converts arbitrary input images into the printer's packed
// monochrome bitmap format.
package raster

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"labelprint/internal/label"
)

const mmPerInch = 25.4

// DefaultThreshold is the fixed luminance cutoff between white and black.
const DefaultThreshold uint8 = 128

// Options tune the binarization step.
type Options struct {
	// Threshold is the luminance cutoff; zero means DefaultThreshold.
	Threshold uint8
	// Dither enables Floyd-Steinberg error diffusion instead of a hard
	// threshold. Off by default.
	Dither bool
}

// Encode decodes an image, scales it to the requested physical size at the
// printer's resolution, binarizes it and packs it 8 horizontal pixels per
// byte, most significant bit first. Rows are zero-padded to whole bytes.
func Encode(imageBytes []byte, widthMm, heightMm float64, dpi int, opts Options) (label.RasterBitmap, error) {
	if widthMm <= 0 || heightMm <= 0 || dpi <= 0 {
		return label.RasterBitmap{}, &label.Error{Kind: label.KindGeometry, Detail: "target size and dpi must be positive"}
	}

	src, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return label.RasterBitmap{}, &label.Error{Kind: label.KindDecode, Detail: "decode image: " + err.Error()}
	}

	widthDots := int(math.Round(widthMm * float64(dpi) / mmPerInch))
	heightDots := int(math.Round(heightMm * float64(dpi) / mmPerInch))

	scaled := resize.Resize(uint(widthDots), uint(heightDots), src, resize.Lanczos3)
	gray := toGray(scaled)

	var pixels []byte
	if opts.Dither {
		pixels = ditherFloydSteinberg(gray)
	} else {
		threshold := opts.Threshold
		if threshold == 0 {
			threshold = DefaultThreshold
		}
		pixels = binarize(gray, threshold)
	}

	return pack(pixels, widthDots, heightDots), nil
}

func toGray(img image.Image) *image.Gray {
	bounds := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(gray, gray.Bounds(), img, bounds.Min, draw.Src)
	return gray
}

// binarize maps each pixel to 1 (black) below the threshold, 0 (white)
// otherwise.
func binarize(gray *image.Gray, threshold uint8) []byte {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y < threshold {
				pixels[y*width+x] = 1
			}
		}
	}
	return pixels
}

// ditherFloydSteinberg diffuses quantization error to neighbouring pixels
// with the classic 7/16, 3/16, 5/16, 1/16 weights.
func ditherFloydSteinberg(gray *image.Gray) []byte {
	bounds := gray.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, width*height)

	vals := make([]int, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			vals[y*width+x] = int(gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y)
		}
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			old := vals[y*width+x]
			quantized := 255
			if old < 128 {
				quantized = 0
				pixels[y*width+x] = 1
			}
			diff := old - quantized

			if x+1 < width {
				vals[y*width+x+1] += diff * 7 / 16
			}
			if y+1 < height {
				if x > 0 {
					vals[(y+1)*width+x-1] += diff * 3 / 16
				}
				vals[(y+1)*width+x] += diff * 5 / 16
				if x+1 < width {
					vals[(y+1)*width+x+1] += diff * 1 / 16
				}
			}
		}
	}
	return pixels
}

// pack folds a 1-byte-per-pixel plane into MSB-first packed rows.
func pack(pixels []byte, width, height int) label.RasterBitmap {
	bytesPerRow := (width + 7) / 8
	bits := make([]byte, bytesPerRow*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if pixels[y*width+x] == 1 {
				bits[y*bytesPerRow+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}
	return label.RasterBitmap{
		Width:       width,
		Height:      height,
		BytesPerRow: bytesPerRow,
		Bits:        bits,
	}
}

// Unpack expands packed bits back into one byte per pixel, reversing pack.
// It exists for preview and verification.
func Unpack(bitmap label.RasterBitmap) []byte {
	pixels := make([]byte, bitmap.Width*bitmap.Height)
	for y := 0; y < bitmap.Height; y++ {
		for x := 0; x < bitmap.Width; x++ {
			bit := bitmap.Bits[y*bitmap.BytesPerRow+x/8] >> uint(7-x%8) & 1
			pixels[y*bitmap.Width+x] = bit
		}
	}
	return pixels
}
