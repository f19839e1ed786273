package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/render"
)

// imgRenderer renders one scene in the background and hands out the
// finished image to every client that asks for it.
type imgRenderer struct {
	scene   julia.Scene
	workers int
	filler  render.Filler

	ctx       context.Context
	ctxCancel context.CancelFunc

	img *image.RGBA
	err error

	finishedWorkers int
	m               sync.Mutex
}

var _ julia.ImgProvider = (*imgRenderer)(nil)

func newImgRenderer(scene julia.Scene, workers int, palette render.Palette) *imgRenderer {
	ctx, cancel := context.WithCancel(context.Background())
	ir := &imgRenderer{
		scene:     scene,
		workers:   workers,
		ctx:       ctx,
		ctxCancel: cancel,
	}
	ir.filler = render.Filler{Palette: palette, OnWorkerDone: ir.workerFinished}
	return ir
}

// GetImage implements julia.ImgProvider. It blocks until rendering is done.
func (ir *imgRenderer) GetImage() (image.RGBA, error) {
	<-ir.ctx.Done()
	if ir.err != nil {
		return image.RGBA{}, ir.err
	}
	return *ir.img, nil
}

// ready reports whether GetImage would return without blocking.
func (ir *imgRenderer) ready() bool {
	select {
	case <-ir.ctx.Done():
		return true
	default:
		return false
	}
}

func (ir *imgRenderer) finished() float32 {
	ir.m.Lock()
	defer ir.m.Unlock()
	return float32(ir.finishedWorkers) / float32(ir.workers)
}

func (ir *imgRenderer) workerFinished(worker, columns int, elapsed time.Duration) {
	ir.m.Lock()
	ir.finishedWorkers++
	ir.m.Unlock()

	log.Printf("worker %d: %d columns in %s, finished: %f", worker, columns, elapsed, ir.finished())
}

// render computes the image. GetImage callers are released when it returns.
func (ir *imgRenderer) render() error {
	defer ir.ctxCancel()

	start := time.Now()
	buf, err := ir.filler.Fill(ir.scene, ir.workers)
	if err != nil {
		ir.err = fmt.Errorf("render: %w", err)
		return ir.err
	}
	ir.img = buf.RGBA()
	log.Printf("Processing time: %dms", time.Since(start).Milliseconds())
	return nil
}
