package julia

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"
)

// Configuration errors. They never reach the renderer: commands report them
// and exit with ExitCode(err).
var (
	ErrInsufficientArgs = errors.New("insufficient arguments given")
	ErrBelowOne         = errors.New("argument must be greater than 0")
	ErrNotANumber       = errors.New("non-number argument given")
	ErrUnknownPreset    = errors.New("unknown preset")
)

// ArgsUsage describes the positional arguments accepted by ParseArgs.
const ArgsUsage = "windowWidth windowHeight planeWidth planeHeight centerX centerY a b numberOfThreads"

const numArgs = 9

// Config is the validated input of one render.
type Config struct {
	Width, Height           int     // raster, pixels
	PlaneWidth, PlaneHeight float64 // plane window size
	CenterX, CenterY        float64 // plane window center
	A, B                    float64 // C = A + Bi
	Workers                 int
	Iterations              int
}

// DefaultConfig renders the Douady rabbit on a 1280x960 raster.
func DefaultConfig() Config {
	c := Config{
		Width:      1280,
		Height:     960,
		Workers:    4,
		Iterations: DefaultIterations,
	}
	_ = c.ApplyPreset("rabbit", nil)
	return c
}

// Scene converts the configuration into the renderer's input.
func (c Config) Scene() Scene {
	return Scene{
		Window: PlaneWindow{
			CenterX: c.CenterX,
			CenterY: c.CenterY,
			Width:   c.PlaneWidth,
			Height:  c.PlaneHeight,
		},
		Raster:     Raster{Width: c.Width, Height: c.Height},
		C:          complex(c.A, c.B),
		Iterations: c.Iterations,
	}
}

// ParseArgs reads the nine positional arguments
//
//	windowWidth windowHeight planeWidth planeHeight centerX centerY a b numberOfThreads
//
// Extra arguments are ignored. The iteration budget is set to DefaultIterations.
func ParseArgs(args []string) (Config, error) {
	if len(args) < numArgs {
		return Config{}, fmt.Errorf("%w: want %d (%s), got %d", ErrInsufficientArgs, numArgs, ArgsUsage, len(args))
	}

	c := Config{Iterations: DefaultIterations}
	ints := []struct {
		pos int
		dst *int
	}{{0, &c.Width}, {1, &c.Height}, {8, &c.Workers}}
	floats := []struct {
		pos int
		dst *float64
	}{{2, &c.PlaneWidth}, {3, &c.PlaneHeight}, {4, &c.CenterX}, {5, &c.CenterY}, {6, &c.A}, {7, &c.B}}

	for _, a := range ints {
		v, err := strconv.Atoi(args[a.pos])
		if err != nil {
			return Config{}, fmt.Errorf("%w: arg %d %q", ErrNotANumber, a.pos+1, args[a.pos])
		}
		*a.dst = v
	}
	for _, a := range floats {
		v, err := strconv.ParseFloat(args[a.pos], 64)
		if err != nil {
			return Config{}, fmt.Errorf("%w: arg %d %q", ErrNotANumber, a.pos+1, args[a.pos])
		}
		*a.dst = v
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks that every size and count is positive.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window dimensions (%dx%d)", ErrBelowOne, c.Width, c.Height)
	case c.PlaneWidth <= 0 || c.PlaneHeight <= 0:
		return fmt.Errorf("%w: plane dimensions (%gx%g)", ErrBelowOne, c.PlaneWidth, c.PlaneHeight)
	case c.Workers <= 0:
		return fmt.Errorf("%w: number of threads (%d)", ErrBelowOne, c.Workers)
	case c.Iterations <= 0:
		return fmt.Errorf("%w: iterations (%d)", ErrBelowOne, c.Iterations)
	}
	return nil
}

// BindFlags registers the configuration fields on fs, using the current
// values as defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "raster width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "raster height in pixels")
	fs.Float64Var(&c.PlaneWidth, "plane-width", c.PlaneWidth, "width of the plane window")
	fs.Float64Var(&c.PlaneHeight, "plane-height", c.PlaneHeight, "height of the plane window")
	fs.Float64Var(&c.CenterX, "center-x", c.CenterX, "real coordinate of the window center")
	fs.Float64Var(&c.CenterY, "center-y", c.CenterY, "imaginary coordinate of the window center")
	fs.Float64Var(&c.A, "c-real", c.A, "real part of C")
	fs.Float64Var(&c.B, "c-imag", c.B, "imaginary part of C")
	fs.IntVarP(&c.Workers, "workers", "w", c.Workers, "number of parallel workers")
	fs.IntVarP(&c.Iterations, "iterations", "i", c.Iterations, "iterations per point")
}

// ApplyPreset copies C and the window of the named preset into c. Fields whose
// flags were set explicitly on fs are kept; fs may be nil.
func (c *Config) ApplyPreset(name string, fs *pflag.FlagSet) error {
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("%w %q (have %v)", ErrUnknownPreset, name, PresetNames())
	}

	set := func(flag string, dst *float64, v float64) {
		if fs != nil && fs.Changed(flag) {
			return
		}
		*dst = v
	}
	set("c-real", &c.A, real(p.C))
	set("c-imag", &c.B, imag(p.C))
	set("center-x", &c.CenterX, p.Window.CenterX)
	set("center-y", &c.CenterY, p.Window.CenterY)
	set("plane-width", &c.PlaneWidth, p.Window.Width)
	set("plane-height", &c.PlaneHeight, p.Window.Height)
	return nil
}

// ExitCode maps configuration errors to the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInsufficientArgs):
		return 2
	case errors.Is(err, ErrBelowOne):
		return 3
	case errors.Is(err, ErrNotANumber):
		return 4
	}
	return 1
}
