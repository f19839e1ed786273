// julia renders a section of a Julia set and displays it.
//
// Usage:
//
//	julia windowWidth windowHeight planeWidth planeHeight centerX centerY a b numberOfThreads
//
// The set of f(z) = z² + C with C = a + bi is computed on numberOfThreads
// workers for the planeWidth×planeHeight window centred on (centerX, centerY),
// then shown in a window until the user closes it.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/display"
	"github.com/marben/dist_julia/display/desktop"
	"github.com/marben/dist_julia/render"
)

type options struct {
	iterations int
	sink       string
	out        string
	palette    string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Printf("FATAL: %v", err)
		os.Exit(julia.ExitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := options{iterations: julia.DefaultIterations, sink: "window", out: "julia.png", palette: "linear"}

	cmd := &cobra.Command{
		Use:           "julia [flags] " + julia.ArgsUsage,
		Short:         "Render a section of a Julia set",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := julia.ParseArgs(args)
			if err != nil {
				return err
			}
			cfg.Iterations = opts.iterations
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cfg, opts)
		},
	}

	fs := cmd.Flags()
	// flags go first so negative coordinates are read as arguments
	fs.SetInterspersed(false)
	fs.IntVarP(&opts.iterations, "iterations", "i", opts.iterations, "iterations per point")
	fs.StringVarP(&opts.sink, "display", "d", opts.sink, "where to show the result: window, term or png")
	fs.StringVarP(&opts.out, "out", "o", opts.out, "output file for --display=png")
	fs.StringVar(&opts.palette, "palette", opts.palette, "colour palette: linear or hue")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log per-worker timing")
	return cmd
}

func run(cfg julia.Config, opts options) error {
	sink, err := newSink(opts)
	if err != nil {
		return err
	}

	filler := render.Filler{}
	switch opts.palette {
	case "linear":
	case "hue":
		filler.Palette = render.HueGradient(cfg.Iterations / 4)
	default:
		return fmt.Errorf("unknown palette %q", opts.palette)
	}
	if opts.verbose {
		filler.OnWorkerDone = func(worker, columns int, elapsed time.Duration) {
			log.Printf("worker %d: %d columns in %s", worker, columns, elapsed)
		}
	}

	start := time.Now()
	buf, err := filler.Fill(cfg.Scene(), cfg.Workers)
	if err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	fmt.Printf("Processing time: %dms\n", time.Since(start).Milliseconds())

	if err := sink.Show(buf); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	if p, ok := sink.(display.PNG); ok {
		log.Printf("saved to %q", p.Path)
	}
	return nil
}

func newSink(opts options) (display.Sink, error) {
	switch opts.sink {
	case "window":
		return desktop.Window{Title: "Julia Set"}, nil
	case "term":
		return display.Terminal{}, nil
	case "png":
		return display.PNG{Path: opts.out}, nil
	}
	return nil, fmt.Errorf("unknown display %q", opts.sink)
}
