package label

import "strings"

// ContentItem is one flowable unit of label content. Every item carries its
// resolved height in device dots, computed at build time; pagination never
// re-measures.
type ContentItem interface {
	// HeightDots is the vertical space the item consumes, excluding the
	// inter-item gap.
	HeightDots() int
	// IndentDots is the extra left offset relative to the label margin.
	IndentDots() int
}

// TextBlock is a run of normalized text occupying the full container width.
type TextBlock struct {
	Text   string
	Indent int
	Width  int
	Height int
}

func (t TextBlock) HeightDots() int { return t.Height }
func (t TextBlock) IndentDots() int { return t.Indent }

// Separator is a filled horizontal bar between sections.
type Separator struct {
	Width  int
	Height int
}

func (s Separator) HeightDots() int { return s.Height }
func (s Separator) IndentDots() int { return 0 }

// Barcode2D is a QR-style code with a fixed square footprint. It is used as
// a fixed-position overlay rather than a flowing item, so it records its own
// absolute origin.
type Barcode2D struct {
	X       int
	Y       int
	Size    int
	Payload string
}

func (b Barcode2D) HeightDots() int { return b.Size }
func (b Barcode2D) IndentDots() int { return 0 }

// RasterBitmap is a packed monochrome bitmap in the printer's native format:
// 8 horizontal pixels per byte, most significant bit first.
type RasterBitmap struct {
	Width       int
	Height      int
	BytesPerRow int
	Bits        []byte
}

func (r RasterBitmap) HeightDots() int { return r.Height }
func (r RasterBitmap) IndentDots() int { return 0 }

// Fault is one reported defect with its ordered remediation plan.
type Fault struct {
	Name  string
	Plans []string
}

// Order is the structured repair-order record a label is composed from.
// Time, User, Device and QRPayload are required; the lists default to empty.
type Order struct {
	Time      string
	User      string
	Device    string
	Faults    []Fault
	Notices   []string
	Extras    []string
	QRPayload string
}

// Build converts an order into the ordered content items of a label, in
// physical reading order: the three header blocks, a separator, each fault
// name followed by its indented plan entries, a separator, the notices, a
// separator, the extras. The QR payload is returned separately as a
// fixed-position overlay for the first page.
//
// Header fields measure against the width left of the QR reservation;
// fault, notice and extra blocks measure against the full width between
// margins. The widths differ on purpose: the QR square only occupies the
// first visual region of the label.
func Build(order Order, g Geometry, l Layout) ([]ContentItem, Barcode2D, error) {
	if err := l.Validate(g); err != nil {
		return nil, Barcode2D{}, err
	}
	for _, f := range []struct{ name, val string }{
		{"time", order.Time},
		{"user", order.User},
		{"device", order.Device},
		{"qr_url", order.QRPayload},
	} {
		if strings.TrimSpace(f.val) == "" {
			return nil, Barcode2D{}, newError(KindInvalidInput, "required field %q is missing or blank", f.name)
		}
	}

	headerWidth := g.WidthDots() - 2*l.MarginDots - l.QRSizeDots
	bodyWidth := g.WidthDots() - 2*l.MarginDots

	items := make([]ContentItem, 0, 8+2*len(order.Faults)+len(order.Notices)+len(order.Extras))

	for _, header := range []string{
		"Time: " + order.Time,
		"User: " + order.User,
		"Device: " + order.Device,
	} {
		items = append(items, textBlock(header, 0, l.Font, headerWidth))
	}
	items = append(items, Separator{Width: bodyWidth, Height: l.SeparatorHeightDots})

	for _, fault := range order.Faults {
		items = append(items, textBlock(fault.Name, 0, l.Font, bodyWidth))
		for _, plan := range fault.Plans {
			items = append(items, textBlock(plan, l.IndentDots, l.Font, bodyWidth-l.IndentDots))
		}
	}
	items = append(items, Separator{Width: bodyWidth, Height: l.SeparatorHeightDots})

	for _, notice := range order.Notices {
		items = append(items, textBlock(notice, 0, l.Font, bodyWidth))
	}
	items = append(items, Separator{Width: bodyWidth, Height: l.SeparatorHeightDots})

	for _, extra := range order.Extras {
		items = append(items, textBlock(extra, 0, l.Font, bodyWidth))
	}

	overlay := Barcode2D{
		X:       g.WidthDots() - l.MarginDots - l.QRSizeDots,
		Y:       l.MarginDots,
		Size:    l.QRSizeDots,
		Payload: EscapePayload(order.QRPayload),
	}
	return items, overlay, nil
}

func textBlock(text string, indent int, font Font, containerWidth int) TextBlock {
	normalized, width, height := Measure(text, font, containerWidth)
	return TextBlock{Text: normalized, Indent: indent, Width: width, Height: height}
}
