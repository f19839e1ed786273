package render

import (
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteInSet(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, DefaultPalette.InSet())
}

func TestLinearEscape(t *testing.T) {
	assert.Equal(t, color.RGBA{10, 10, 30, 255}, DefaultPalette.Escape(0))
	// 11.6, 10.8, 31.4 truncate toward zero
	assert.Equal(t, color.RGBA{11, 10, 31, 255}, DefaultPalette.Escape(1))
	assert.Equal(t, color.RGBA{26, 18, 44, 255}, DefaultPalette.Escape(10))
}

func TestLinearChannelsStep(t *testing.T) {
	for k := 1; k < 100; k++ {
		prev, cur := DefaultPalette.Channels(k-1), DefaultPalette.Channels(k)
		for i := range cur {
			assert.InDelta(t, DefaultPalette.Delta[i], cur[i]-prev[i], 1e-9, "stage %d channel %d", k, i)
		}
	}
}

func TestLinearIntegerStep(t *testing.T) {
	l := Linear{Base: Channels{0, 50, 100, 200}, Delta: Channels{2, 1, -1, 0}}
	for k := 1; k <= 50; k++ {
		prev, cur := l.Escape(k-1), l.Escape(k)
		assert.Equal(t, 2, int(cur.R)-int(prev.R))
		assert.Equal(t, 1, int(cur.G)-int(prev.G))
		assert.Equal(t, -1, int(cur.B)-int(prev.B))
		assert.Equal(t, cur.A, prev.A)
	}
}

func TestLinearClamps(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 170, 255, 255}, DefaultPalette.Escape(200))

	l := Linear{Base: Channels{10, 10, 10, 10}, Delta: Channels{-1, -100, 0, 300}}
	assert.Equal(t, color.RGBA{0, 0, 10, 255}, l.Escape(20))
}

func TestGradient(t *testing.T) {
	g := HueGradient(12)
	require.Len(t, g.Stops, 7)

	red := g.Escape(0)
	assert.InDelta(t, 255, int(red.R), 1)
	assert.InDelta(t, 0, int(red.G), 1)
	assert.InDelta(t, 0, int(red.B), 1)
	assert.Equal(t, uint8(255), red.A)

	assert.Equal(t, g.Escape(5), g.Escape(5+12), "gradient repeats every period")
	assert.Equal(t, color.RGBA{A: 255}, g.InSet())
}

func TestGradientDegenerate(t *testing.T) {
	member := color.RGBA{1, 2, 3, 255}
	assert.Equal(t, member, Gradient{Member: member}.Escape(4))

	one := Gradient{Stops: []colorful.Color{{R: 0, G: 1, B: 0}}, Period: 10}
	assert.Equal(t, color.RGBA{0, 255, 0, 255}, one.Escape(7))
}

func TestGradientShortPeriod(t *testing.T) {
	// tiny iteration budgets give periods of 0 or 1
	for _, period := range []int{-3, 0, 1} {
		g := HueGradient(period)
		assert.Equal(t, MinPeriod, g.Period)
		assert.NotEqual(t, g.Escape(0), g.Escape(1), "period %d", period)
		assert.Equal(t, g.Escape(0), g.Escape(2), "period %d", period)
	}

	two := Gradient{Stops: []colorful.Color{{R: 1}, {B: 1}}}
	assert.NotEqual(t, two.Escape(0), two.Escape(1))
}
