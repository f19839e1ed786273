package render

import (
	"image/color"
	"math"
)

// Palette maps an escape-time result to a colour.
type Palette interface {
	// InSet is the colour of points that belong to the set.
	InSet() color.RGBA
	// Escape is the colour of a point eliminated at the given stage.
	Escape(stage int) color.RGBA
}

// Channels holds unquantized R, G, B, A values.
type Channels [4]float64

// Linear shades escaped points as Base + Delta·stage per channel, clamped to
// [0, 255] and truncated to 8 bits.
type Linear struct {
	Member color.RGBA
	Base   Channels
	Delta  Channels
}

// DefaultPalette is opaque black for members and a dark blue that brightens
// with escape time for everything else.
var DefaultPalette = Linear{
	Member: color.RGBA{R: 0, G: 0, B: 0, A: 255},
	Base:   Channels{10, 10, 30, 255},
	Delta:  Channels{1.6, 0.8, 1.4, 0},
}

var _ Palette = Linear{}

func (l Linear) InSet() color.RGBA {
	return l.Member
}

// Channels returns Base + Delta·stage before clamping.
func (l Linear) Channels(stage int) Channels {
	var ch Channels
	for i := range ch {
		ch[i] = l.Base[i] + l.Delta[i]*float64(stage)
	}
	return ch
}

func (l Linear) Escape(stage int) color.RGBA {
	ch := l.Channels(stage)
	return color.RGBA{
		R: clampChannel(ch[0]),
		G: clampChannel(ch[1]),
		B: clampChannel(ch[2]),
		A: clampChannel(ch[3]),
	}
}

func clampChannel(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= math.MaxUint8:
		return math.MaxUint8
	}
	return uint8(v)
}
