// Package render computes Julia set images: the pixel to plane transform,
// the escape-time test, colour palettes and the parallel fill.
package render

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	julia "github.com/marben/dist_julia"
)

// ErrWorker is returned when a fill worker fails. The partially written
// buffer is discarded.
var ErrWorker = errors.New("render worker failed")

// Filler fills colour buffers for Julia scenes.
type Filler struct {
	// Palette colours the pixels; DefaultPalette when nil.
	Palette Palette

	// OnWorkerDone, if set, is called by every worker when its stripe is
	// complete. It may be called concurrently.
	OnWorkerDone func(worker, columns int, elapsed time.Duration)
}

// FillRegion fills a buffer for s with DefaultPalette using workers workers.
func FillRegion(s julia.Scene, workers int) (*Buffer, error) {
	return Filler{}.Fill(s, workers)
}

// Fill computes every pixel of s. Worker i owns the columns x with
// x mod workers == i and writes nothing else. Fill returns once all workers
// are done; on error no buffer is returned.
//
// The result does not depend on the number of workers.
func (f Filler) Fill(s julia.Scene, workers int) (*Buffer, error) {
	if workers <= 0 {
		return nil, fmt.Errorf("%w: %d workers", ErrWorker, workers)
	}

	buf, err := newBuffer(s.Raster.Width, s.Raster.Height)
	if err != nil {
		return nil, err
	}

	pal := f.Palette
	if pal == nil {
		pal = DefaultPalette
	}

	// A single worker runs on the calling goroutine.
	if workers == 1 {
		if err := f.runWorker(0, buf.stripe(0, 1), s, pal); err != nil {
			return nil, err
		}
		return buf, nil
	}

	var g errgroup.Group
	for w := range workers {
		cols := buf.stripe(w, workers)
		g.Go(func() error {
			return f.runWorker(w, cols, s, pal)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return buf, nil
}

func (f Filler) runWorker(worker int, cols []Column, s julia.Scene, pal Palette) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: worker %d: %v", ErrWorker, worker, r)
		}
	}()

	start := time.Now()
	fillColumns(cols, s, pal)
	if f.OnWorkerDone != nil {
		f.OnWorkerDone(worker, len(cols), time.Since(start))
	}
	return nil
}

func fillColumns(cols []Column, s julia.Scene, pal Palette) {
	win, r := s.Window, s.Raster
	for _, col := range cols {
		re := MapX(col.X, win.CenterX, win.Width, r.Width)
		for y := range col.Cells {
			im := MapY(y, win.CenterY, win.Height, r.Height)

			if in, stage := IsInSet(complex(re, im), s.C, s.Iterations); in {
				col.Cells[y] = pal.InSet()
			} else {
				col.Cells[y] = pal.Escape(stage)
			}
		}
	}
}
