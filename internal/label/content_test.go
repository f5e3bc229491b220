package label

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildOrder() Order {
	return Order{
		Time:   "2024-05-01 10:00",
		User:   "operator",
		Device: "press-7",
		Faults: []Fault{
			{Name: "overheat", Plans: []string{"stop line", "swap fan"}},
		},
		Notices:   []string{"wear gloves"},
		Extras:    []string{"shift B"},
		QRPayload: "https://example.com/orders/42",
	}
}

func TestBuildItemSequence(t *testing.T) {
	g := Geometry{WidthMm: 50, HeightMm: 40, DPI: 203, GapMm: 2}
	l := DefaultLayout()

	items, overlay, err := Build(buildOrder(), g, l)
	require.NoError(t, err)

	headerWidth := g.WidthDots() - 2*l.MarginDots - l.QRSizeDots
	bodyWidth := g.WidthDots() - 2*l.MarginDots

	// 3 headers, separator, fault + 2 plans, separator, notice, separator, extra.
	require.Len(t, items, 11)

	for i, want := range []string{"Time: 2024-05-01 10:00", "User: operator", "Device: press-7"} {
		block, ok := items[i].(TextBlock)
		require.True(t, ok, "item %d", i)
		assert.Equal(t, want, block.Text)
		assert.Equal(t, headerWidth, block.Width)
		assert.Zero(t, block.Indent)
	}

	sep, ok := items[3].(Separator)
	require.True(t, ok)
	assert.Equal(t, bodyWidth, sep.Width)
	assert.Equal(t, l.SeparatorHeightDots, sep.Height)

	fault := items[4].(TextBlock)
	assert.Equal(t, "overheat", fault.Text)
	assert.Equal(t, bodyWidth, fault.Width)
	assert.Zero(t, fault.Indent)

	for i, want := range []string{"stop line", "swap fan"} {
		plan := items[5+i].(TextBlock)
		assert.Equal(t, want, plan.Text)
		assert.Equal(t, l.IndentDots, plan.Indent)
		assert.Equal(t, bodyWidth-l.IndentDots, plan.Width)
	}

	_, ok = items[7].(Separator)
	assert.True(t, ok)
	assert.Equal(t, "wear gloves", items[8].(TextBlock).Text)
	_, ok = items[9].(Separator)
	assert.True(t, ok)
	assert.Equal(t, "shift B", items[10].(TextBlock).Text)

	assert.Equal(t, g.WidthDots()-l.MarginDots-l.QRSizeDots, overlay.X)
	assert.Equal(t, l.MarginDots, overlay.Y)
	assert.Equal(t, l.QRSizeDots, overlay.Size)
	assert.Equal(t, "https://example.com/orders/42", overlay.Payload)
}

func TestBuildRequiredFields(t *testing.T) {
	g := Geometry{WidthMm: 50, HeightMm: 40, DPI: 203}
	l := DefaultLayout()

	mutations := map[string]func(*Order){
		"missing time":     func(o *Order) { o.Time = "" },
		"missing user":     func(o *Order) { o.User = "" },
		"missing device":   func(o *Order) { o.Device = "" },
		"missing qr":       func(o *Order) { o.QRPayload = "" },
		"blank time":       func(o *Order) { o.Time = "   " },
		"blank qr payload": func(o *Order) { o.QRPayload = "\t\n" },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			order := buildOrder()
			mutate(&order)
			_, _, err := Build(order, g, l)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestBuildEmptyLists(t *testing.T) {
	g := Geometry{WidthMm: 50, HeightMm: 40, DPI: 203}
	l := DefaultLayout()

	order := buildOrder()
	order.Faults = nil
	order.Notices = nil
	order.Extras = nil

	items, _, err := Build(order, g, l)
	require.NoError(t, err)

	// Headers and the three section separators remain.
	require.Len(t, items, 6)
	for i := 0; i < 3; i++ {
		_, ok := items[i].(TextBlock)
		assert.True(t, ok)
	}
	for i := 3; i < 6; i++ {
		_, ok := items[i].(Separator)
		assert.True(t, ok)
	}
}

func TestBuildNormalizesContent(t *testing.T) {
	g := Geometry{WidthMm: 50, HeightMm: 40, DPI: 203}
	l := DefaultLayout()

	order := buildOrder()
	order.Notices = []string{"Note: price=10,000đ"}
	order.QRPayload = `https://example.com/q?a=1,b=2&s="x"`

	items, overlay, err := Build(order, g, l)
	require.NoError(t, err)

	assert.Equal(t, "Note: price=10|000d", items[8].(TextBlock).Text)

	// The payload keeps its commas: the code is machine-read, so substituting
	// characters would corrupt the encoded URL. Only quoting is escaped.
	assert.Equal(t, `https://example.com/q?a=1,b=2&s=\"x\"`, overlay.Payload)
}

func TestBuildRejectsBadGeometry(t *testing.T) {
	_, _, err := Build(buildOrder(), Geometry{WidthMm: 10, HeightMm: 40, DPI: 203}, DefaultLayout())
	assert.ErrorIs(t, err, ErrGeometry)
}
