package display

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := range w {
		for y := range h {
			img.SetRGBA(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 7, A: 255})
		}
	}
	return img
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "julia.png")
	want := gradientImage(16, 9)
	require.NoError(t, PNG{Path: path}.Show(want))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := png.Decode(f)
	require.NoError(t, err)
	require.Equal(t, want.Bounds(), got.Bounds())
	for x := range 16 {
		for y := range 9 {
			r, g, b, a := got.At(x, y).RGBA()
			assert.Equal(t, want.RGBAAt(x, y), color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)})
		}
	}
}

func TestPNGBadPath(t *testing.T) {
	err := PNG{Path: filepath.Join(t.TempDir(), "missing", "julia.png")}.Show(gradientImage(2, 2))
	assert.Error(t, err)
}

type copier struct {
	image.Image
	full *image.RGBA
}

func (c copier) RGBA() *image.RGBA { return c.full }

func TestToRGBA(t *testing.T) {
	img := gradientImage(8, 4)
	assert.Same(t, img, ToRGBA(img))
	assert.Same(t, img, ToRGBA(copier{img, img}))

	sub := img.SubImage(image.Rect(2, 1, 6, 3)).(*image.RGBA)
	packed := ToRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 4, 2), packed.Bounds())
	assert.Equal(t, img.RGBAAt(2, 1), packed.RGBAAt(0, 0))
	assert.Equal(t, img.RGBAAt(5, 2), packed.RGBAAt(3, 1))

	gray := image.NewGray(image.Rect(0, 0, 3, 3))
	gray.SetGray(1, 1, color.Gray{Y: 200})
	assert.Equal(t, color.RGBA{200, 200, 200, 255}, ToRGBA(gray).RGBAAt(1, 1))
}

func TestThumbnail(t *testing.T) {
	cases := []struct {
		w, h, maxW, maxH int
		want             image.Rectangle
	}{
		{640, 480, 80, 48, image.Rect(0, 0, 64, 48)},
		{640, 480, 80, 100, image.Rect(0, 0, 80, 60)},
		{10, 1000, 80, 48, image.Rect(0, 0, 1, 48)},
		{4, 4, 0, 10, image.Rectangle{}},
	}
	for _, c := range cases {
		got := Thumbnail(gradientImage(c.w, c.h), c.maxW, c.maxH)
		assert.Equal(t, c.want, got.Bounds(), "%dx%d into %dx%d", c.w, c.h, c.maxW, c.maxH)
	}
}

func TestPaintHalfBlocks(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(3, 2)

	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	img.SetRGBA(1, 0, color.RGBA{255, 0, 0, 255})
	img.SetRGBA(1, 1, color.RGBA{0, 0, 255, 255})
	img.SetRGBA(1, 2, color.RGBA{0, 255, 0, 255})
	paintHalfBlocks(s, img)

	r, _, style, _ := s.GetContent(1, 0)
	assert.Equal(t, upperHalf, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(255, 0, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 255), bg)

	// odd height: the last row has no lower pixel and gets black
	_, _, style, _ = s.GetContent(1, 1)
	fg, bg, _ = style.Decompose()
	assert.Equal(t, tcell.NewRGBColor(0, 255, 0), fg)
	assert.Equal(t, tcell.NewRGBColor(0, 0, 0), bg)
}
