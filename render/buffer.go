package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	julia "github.com/marben/dist_julia"
)

// ErrBufferSize is returned when a raster cannot be allocated.
var ErrBufferSize = errors.New("cannot allocate colour buffer")

// Buffer is a finished width×height grid of colours. It is filled once by
// Fill and read-only afterwards. Buffer implements image.Image.
type Buffer struct {
	width, height int

	// column-major: column x is cells[x*height : (x+1)*height]
	cells []color.RGBA
}

// Column is the part of a Buffer one worker may write: the cells of pixel
// column X, indexed by row.
type Column struct {
	X     int
	Cells []color.RGBA
}

func newBuffer(width, height int) (*Buffer, error) {
	if width <= 0 || height <= 0 || width > julia.MaxRasterSide || height > julia.MaxRasterSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrBufferSize, width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		cells:  make([]color.RGBA, width*height),
	}, nil
}

// StripeColumns lists the columns of a width-pixel raster owned by worker:
// every x in [0, width) with x mod workers == worker. It returns nil when
// worker is not in [0, workers).
func StripeColumns(worker, workers, width int) []int {
	if workers <= 0 || worker < 0 || worker >= workers || worker >= width {
		return nil
	}
	cols := make([]int, 0, (width-worker+workers-1)/workers)
	for x := worker; x < width; x += workers {
		cols = append(cols, x)
	}
	return cols
}

// stripe returns views onto the columns owned by worker. Each view is
// capacity-limited so it cannot reach a neighbouring column.
func (b *Buffer) stripe(worker, workers int) []Column {
	xs := StripeColumns(worker, workers, b.width)
	cols := make([]Column, len(xs))
	for i, x := range xs {
		lo, hi := x*b.height, (x+1)*b.height
		cols[i] = Column{X: x, Cells: b.cells[lo:hi:hi]}
	}
	return cols
}

func (b *Buffer) Width() int  { return b.width }
func (b *Buffer) Height() int { return b.height }

func (b *Buffer) Bounds() image.Rectangle { return image.Rect(0, 0, b.width, b.height) }
func (b *Buffer) ColorModel() color.Model { return color.RGBAModel }
func (b *Buffer) At(x, y int) color.Color { return b.RGBAAt(x, y) }

// RGBAAt returns the colour of pixel (x, y), or the zero colour outside the
// bounds.
func (b *Buffer) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}).In(b.Bounds()) {
		return color.RGBA{}
	}
	return b.cells[x*b.height+y]
}

// RGBA copies the buffer into a row-major image for presentation.
func (b *Buffer) RGBA() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for x := 0; x < b.width; x++ {
		col := b.cells[x*b.height : (x+1)*b.height]
		for y, c := range col {
			i := img.PixOffset(x, y)
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
		}
	}
	return img
}
