package tspl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandFormatting(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Command)
		want  string
	}{
		{"size", func(c *Command) { c.Size(50, 40) }, "SIZE 50.0 mm,40.0 mm\r\n"},
		{"size fractional", func(c *Command) { c.Size(57.5, 31.75) }, "SIZE 57.5 mm,31.8 mm\r\n"},
		{"gap", func(c *Command) { c.Gap(2, 0) }, "GAP 2.0 mm,0.0 mm\r\n"},
		{"direction", func(c *Command) { c.Direction(1) }, "DIRECTION 1\r\n"},
		{"density", func(c *Command) { c.Density(8) }, "DENSITY 8\r\n"},
		{"speed", func(c *Command) { c.Speed(3) }, "SPEED 3\r\n"},
		{"cls", func(c *Command) { c.CLS() }, "CLS\r\n"},
		{"text", func(c *Command) { c.Text(10, 20, "3", "hello") }, "TEXT 10,20,\"3\",0,1,1,\"hello\"\r\n"},
		{"bar", func(c *Command) { c.Bar(8, 100, 384, 2) }, "BAR 8,100,384,2\r\n"},
		{"qrcode", func(c *Command) { c.QRCode(272, 8, "H", 4, "payload") }, "QRCODE 272,8,H,4,A,0,\"payload\"\r\n"},
		{"print", func(c *Command) { c.Print(2) }, "PRINT 2\r\n"},
		{"end", func(c *Command) { c.End() }, "END\r\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			tt.build(c)
			assert.Equal(t, tt.want, c.String())
		})
	}
}

func TestDensityAndSpeedClamp(t *testing.T) {
	assert.Equal(t, "DENSITY 15\r\n", New().Density(99).String())
	assert.Equal(t, "DENSITY 1\r\n", New().Density(-3).String())
	assert.Equal(t, "SPEED 5\r\n", New().Speed(10).String())
	assert.Equal(t, "SPEED 1\r\n", New().Speed(0).String())
}

func TestBitmapEmbedsRawBytes(t *testing.T) {
	data := []byte{0xff, 0x00, 0xAA, 0x55}
	got := New().Bitmap(8, 16, 2, 2, data).Bytes()

	want := append([]byte("BITMAP 8,16,2,2,0,"), data...)
	want = append(want, '\r', '\n')
	assert.Equal(t, want, got)
}

func TestChaining(t *testing.T) {
	stream := New().
		Size(50, 40).
		Gap(2, 0).
		Direction(1).
		Density(8).
		Speed(2).
		CLS().
		Text(8, 8, "3", "ready").
		Print(1).
		End().
		String()

	want := "SIZE 50.0 mm,40.0 mm\r\n" +
		"GAP 2.0 mm,0.0 mm\r\n" +
		"DIRECTION 1\r\n" +
		"DENSITY 8\r\n" +
		"SPEED 2\r\n" +
		"CLS\r\n" +
		"TEXT 8,8,\"3\",0,1,1,\"ready\"\r\n" +
		"PRINT 1\r\n" +
		"END\r\n"
	assert.Equal(t, want, stream)
}
