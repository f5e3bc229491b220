package label

import "labelprint/internal/tspl"

// Tuning carries printer knobs forwarded verbatim into the page preamble.
type Tuning struct {
	Density int // 1-15
	Speed   int // 1-5
	Copies  int // defaults to 1
}

// Emit renders finalized pages into one TSPL command stream. Each page gets
// a size/gap/direction/density/speed/clear preamble, its placed items, a
// PRINT and an END marker; pages are concatenated in order. The output is a
// pure function of its input: identical pages yield byte-identical streams.
func Emit(pages []Page, g Geometry, l Layout, tuning Tuning) []byte {
	copies := tuning.Copies
	if copies < 1 {
		copies = 1
	}

	cmd := tspl.New()
	for _, page := range pages {
		cmd.Size(g.WidthMm, g.HeightMm).
			Gap(g.GapMm, 0).
			Direction(1).
			Density(tuning.Density).
			Speed(tuning.Speed).
			CLS()

		for _, placed := range page.Items {
			emitItem(cmd, placed, l)
		}
		if page.Overlay != nil {
			cmd.QRCode(page.Overlay.X, page.Overlay.Y, "H", l.QRCellDots, page.Overlay.Payload)
		}

		cmd.Print(copies).End()
	}
	return cmd.Bytes()
}

func emitItem(cmd *tspl.Command, placed PlacedItem, l Layout) {
	switch item := placed.Item.(type) {
	case TextBlock:
		cmd.Text(placed.X, placed.Y, l.Font.Name, item.Text)
	case Separator:
		cmd.Bar(placed.X, placed.Y, item.Width, item.Height)
	case Barcode2D:
		cmd.QRCode(item.X, item.Y, "H", l.QRCellDots, item.Payload)
	case RasterBitmap:
		cmd.Bitmap(placed.X, placed.Y, item.BytesPerRow, item.Height, item.Bits)
	}
}
