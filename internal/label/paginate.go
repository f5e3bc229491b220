package label

// PlacedItem is a content item pinned to an absolute origin within the
// label's printable area.
type PlacedItem struct {
	Item ContentItem
	X    int
	Y    int
}

// Page is one physical label. Once the paginator closes a page it is never
// mutated again; the emitter only reads.
type Page struct {
	Items []PlacedItem
	// Overlay is the fixed-position QR code, present on the first page only.
	Overlay *Barcode2D
}

// Paginate walks the items in emission order, accumulating vertical offset
// and opening a new page whenever the next item would overflow the usable
// height. The QR overlay is attached to the first page only; overflow pages
// carry none.
//
// A single item taller than the usable height is still placed whole on its
// own page. That label will print clipped, which is an accepted limitation
// rather than an error: mid-item splitting is never attempted.
//
// At least one page is always produced, even for an empty item list.
func Paginate(items []ContentItem, overlay Barcode2D, g Geometry, l Layout) []Page {
	usable := l.UsableHeight(g)

	pages := []Page{{Overlay: &overlay}}
	current := &pages[0]
	yOffset := l.MarginDots

	for _, item := range items {
		if yOffset+item.HeightDots() > usable && len(current.Items) > 0 {
			pages = append(pages, Page{})
			current = &pages[len(pages)-1]
			yOffset = l.MarginDots
		}
		current.Items = append(current.Items, PlacedItem{
			Item: item,
			X:    l.MarginDots + item.IndentDots(),
			Y:    yOffset,
		})
		yOffset += item.HeightDots() + l.InterItemGapDots
	}

	return pages
}
