package julia

import (
	"sort"

	"github.com/samber/lo"
)

// Preset is a well known Julia set together with a window that frames it.
type Preset struct {
	C      complex128
	Window PlaneWindow
}

// wholeSet frames the disc |z| <= 2 that contains every quadratic Julia set.
var wholeSet = PlaneWindow{Width: 4, Height: 3}

// Classic Julia sets
var Presets = map[string]Preset{
	// Douady rabbit – three-eared bulbs around a period-3 cycle
	"rabbit": {C: complex(-0.123, 0.745), Window: PlaneWindow{Width: 3.2, Height: 2.4}},

	// Dendrite – no interior at all, only branching filaments
	"dendrite": {C: complex(0, 1), Window: wholeSet},

	// Basilica – chain of bulbs pinched along the real axis
	"basilica": {C: complex(-1, 0), Window: PlaneWindow{Width: 3.6, Height: 2.0}},

	// San Marco – the cathedral-like set at the tip of the main cardioid
	"san-marco": {C: complex(-0.75, 0), Window: PlaneWindow{Width: 3.6, Height: 2.0}},

	// Siegel disk – rotating domain around an irrationally indifferent fixed point
	"siegel": {C: complex(-0.390541, -0.586788), Window: PlaneWindow{Width: 3.2, Height: 2.4}},

	// Dragon – twisted filaments of a set just outside the main cardioid
	"dragon": {C: complex(-0.8, 0.156), Window: PlaneWindow{Width: 3.6, Height: 2.2}},

	// Spiral – thin spiral arms close to the boundary of the Mandelbrot set
	"spiral": {C: complex(0.285, 0.01), Window: PlaneWindow{Width: 3.2, Height: 2.4}},

	// Airplane – period-3 component on the real axis
	"airplane": {C: complex(-1.7548776662466927, 0), Window: PlaneWindow{Width: 4, Height: 1.2}},
}

// PresetNames returns the preset names in alphabetical order.
func PresetNames() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}
