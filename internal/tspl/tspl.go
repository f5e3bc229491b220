// Package tspl builds TSPL2 command streams for thermal label printers.
// Commands are CRLF-terminated printable text; BITMAP payloads embed raw
// packed bytes between the textual header and the terminator.
package tspl

import (
	"fmt"
	"strings"
)

// Command accumulates a TSPL2 command stream.
type Command struct {
	buf strings.Builder
}

func New() *Command {
	return &Command{}
}

// Size sets label dimensions in millimetres.
func (c *Command) Size(width, height float64) *Command {
	fmt.Fprintf(&c.buf, "SIZE %.1f mm,%.1f mm\r\n", width, height)
	return c
}

// Gap sets the gap between labels on the roll.
func (c *Command) Gap(gap, offset float64) *Command {
	fmt.Fprintf(&c.buf, "GAP %.1f mm,%.1f mm\r\n", gap, offset)
	return c
}

// Direction sets print direction (0 or 1).
func (c *Command) Direction(dir int) *Command {
	fmt.Fprintf(&c.buf, "DIRECTION %d\r\n", dir)
	return c
}

// Density sets print darkness (1-15).
func (c *Command) Density(level int) *Command {
	if level < 1 {
		level = 1
	}
	if level > 15 {
		level = 15
	}
	fmt.Fprintf(&c.buf, "DENSITY %d\r\n", level)
	return c
}

// Speed sets print speed (1-5).
func (c *Command) Speed(level int) *Command {
	if level < 1 {
		level = 1
	}
	if level > 5 {
		level = 5
	}
	fmt.Fprintf(&c.buf, "SPEED %d\r\n", level)
	return c
}

// CLS clears the printer's image buffer.
func (c *Command) CLS() *Command {
	c.buf.WriteString("CLS\r\n")
	return c
}

// Text draws a string in a printer-resident font at rotation 0, scale 1x1.
// The text must already be escaped; Text performs no quoting of its own.
func (c *Command) Text(x, y int, font, text string) *Command {
	fmt.Fprintf(&c.buf, "TEXT %d,%d,\"%s\",0,1,1,\"%s\"\r\n", x, y, font, text)
	return c
}

// Bar draws a filled rectangle.
func (c *Command) Bar(x, y, width, height int) *Command {
	fmt.Fprintf(&c.buf, "BAR %d,%d,%d,%d\r\n", x, y, width, height)
	return c
}

// QRCode draws a 2D code with the given error-correction level ("L", "M",
// "Q" or "H") and cell width in dots.
func (c *Command) QRCode(x, y int, ecc string, cell int, payload string) *Command {
	fmt.Fprintf(&c.buf, "QRCODE %d,%d,%s,%d,A,0,\"%s\"\r\n", x, y, ecc, cell, payload)
	return c
}

// Bitmap draws a packed monochrome bitmap. widthBytes is the row stride in
// bytes (pixels / 8, rounded up); data is MSB-first packed bits. Mode 0
// overwrites the canvas.
func (c *Command) Bitmap(x, y, widthBytes, height int, data []byte) *Command {
	fmt.Fprintf(&c.buf, "BITMAP %d,%d,%d,%d,0,", x, y, widthBytes, height)
	c.buf.Write(data)
	c.buf.WriteString("\r\n")
	return c
}

// Print prints n copies of the composed label.
func (c *Command) Print(copies int) *Command {
	fmt.Fprintf(&c.buf, "PRINT %d\r\n", copies)
	return c
}

// End terminates the page.
func (c *Command) End() *Command {
	c.buf.WriteString("END\r\n")
	return c
}

// Bytes returns the raw command stream to hand to a printer backend.
func (c *Command) Bytes() []byte {
	return []byte(c.buf.String())
}

// String returns the command stream for debugging.
func (c *Command) String() string {
	return c.buf.String()
}
