package render

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// MinPeriod is the shortest walk through the stops. Shorter periods are
// raised to it so that neighbouring stages never share a colour.
const MinPeriod = 2

// Gradient shades escaped points by blending between Stops in Lab space.
// Period stages walk once from the first stop to the last; the walk then
// starts over.
type Gradient struct {
	Member color.RGBA
	Stops  []colorful.Color
	Period int
}

var _ Palette = Gradient{}

// HueGradient cycles through the full hue circle every period stages, but at
// least every MinPeriod stages.
func HueGradient(period int) Gradient {
	const steps = 6
	stops := make([]colorful.Color, 0, steps+1)
	for i := 0; i <= steps; i++ {
		stops = append(stops, colorful.Hsv(float64(i)*360/steps, 1, 1))
	}
	return Gradient{
		Member: color.RGBA{A: 255},
		Stops:  stops,
		Period: max(period, MinPeriod),
	}
}

func (g Gradient) InSet() color.RGBA {
	return g.Member
}

func (g Gradient) Escape(stage int) color.RGBA {
	switch {
	case len(g.Stops) == 0:
		return g.Member
	case len(g.Stops) == 1:
		return opaque(g.Stops[0])
	}

	period := max(g.Period, MinPeriod)
	pos := float64(stage%period) / float64(period) * float64(len(g.Stops)-1)
	i := int(pos)
	next := min(i+1, len(g.Stops)-1)
	return opaque(g.Stops[i].BlendLab(g.Stops[next], pos-float64(i)))
}

func opaque(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
