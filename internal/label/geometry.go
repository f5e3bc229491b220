package label

import "math"

// mmPerInch converts between the physical label size and printer dots.
const mmPerInch = 25.4

// Geometry describes the physical label and the derived pixel canvas.
// All layout downstream of this struct is expressed in dots; millimetres are
// converted exactly once, here.
type Geometry struct {
	WidthMm  float64
	HeightMm float64
	DPI      int

	// GapMm is the vertical gap between labels on the roll, emitted in the
	// page preamble.
	GapMm float64
}

// Dots converts a physical length to device dots at the geometry's DPI.
func (g Geometry) Dots(mm float64) int {
	return int(math.Round(mm * float64(g.DPI) / mmPerInch))
}

// WidthDots is the label width in dots.
func (g Geometry) WidthDots() int { return g.Dots(g.WidthMm) }

// HeightDots is the label height in dots.
func (g Geometry) HeightDots() int { return g.Dots(g.HeightMm) }

// BitmapWidthDots is the label width rounded up to a whole number of
// printable bytes, as required by raster payloads.
func (g Geometry) BitmapWidthDots() int {
	w := g.WidthDots()
	if rem := w % 8; rem != 0 {
		w += 8 - rem
	}
	return w
}

// Validate fails fast on dimensions that cannot produce a printable canvas.
func (g Geometry) Validate() error {
	if g.WidthMm <= 0 || g.HeightMm <= 0 {
		return newError(KindGeometry, "label size must be positive, got %.1fx%.1f mm", g.WidthMm, g.HeightMm)
	}
	if g.DPI <= 0 {
		return newError(KindGeometry, "dpi must be positive, got %d", g.DPI)
	}
	return nil
}

// Layout carries the tuning knobs the composer and paginator share: margins,
// the inter-item gap, the plan indent, the QR reservation and the font model.
type Layout struct {
	MarginDots       int
	InterItemGapDots int
	IndentDots       int

	// QRSizeDots is the square reserved for the QR overlay on the first page.
	QRSizeDots int
	// QRCellDots is the QRCODE cell width passed to the printer.
	QRCellDots int

	Font Font
	// SeparatorHeightDots is the thickness of the filled bar between
	// sections.
	SeparatorHeightDots int
}

// Font is the approximate fixed-width model of a printer-resident font.
// Every character is assumed to occupy WidthDots regardless of its true
// glyph width; this is a deliberate approximation, not text shaping.
type Font struct {
	// Name is the printer font reference used in TEXT instructions.
	Name       string
	WidthDots  int
	HeightDots int
}

// DefaultLayout matches the printer-resident 16x24 font and the label
// dimensions the service ships with.
func DefaultLayout() Layout {
	return Layout{
		MarginDots:          8,
		InterItemGapDots:    6,
		IndentDots:          24,
		QRSizeDots:          120,
		QRCellDots:          4,
		Font:                Font{Name: "3", WidthDots: 14, HeightDots: 24},
		SeparatorHeightDots: 2,
	}
}

// UsableHeight is the vertical budget pagination must respect: label height
// minus top and bottom margins.
func (l Layout) UsableHeight(g Geometry) int {
	return g.HeightDots() - 2*l.MarginDots
}

// Validate rejects layouts whose container width would go non-positive after
// margins and the QR reservation are subtracted.
func (l Layout) Validate(g Geometry) error {
	if err := g.Validate(); err != nil {
		return err
	}
	if l.Font.WidthDots <= 0 || l.Font.HeightDots <= 0 {
		return newError(KindGeometry, "font model must have positive dimensions")
	}
	if w := g.WidthDots() - 2*l.MarginDots - l.QRSizeDots; w <= 0 {
		return newError(KindGeometry, "label width %d dots leaves no room for content after margins and QR reservation", g.WidthDots())
	}
	if l.UsableHeight(g) <= 0 {
		return newError(KindGeometry, "label height %d dots leaves no room for content after margins", g.HeightDots())
	}
	return nil
}
