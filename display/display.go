// Package display presents finished images as a PNG file or as a preview in
// the terminal. The desktop window lives in display/desktop.
package display

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"
)

// Sink presents a finished image. Show blocks until the presentation is
// over, for interactive sinks until the user closes it.
type Sink interface {
	Show(img image.Image) error
}

// PNG writes the image to Path.
type PNG struct {
	Path string
}

var _ Sink = PNG{}

func (p PNG) Show(img image.Image) error {
	f, err := os.Create(p.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}

// rgbaer is implemented by images that can hand out a row-major copy of
// themselves, such as render.Buffer.
type rgbaer interface {
	RGBA() *image.RGBA
}

// ToRGBA returns img as a packed *image.RGBA anchored at the origin.
func ToRGBA(img image.Image) *image.RGBA {
	switch m := img.(type) {
	case *image.RGBA:
		b := m.Bounds()
		if b.Min == (image.Point{}) && m.Stride == 4*b.Dx() {
			return m
		}
	case rgbaer:
		return m.RGBA()
	}

	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
