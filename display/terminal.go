package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/image/draw"
)

// upperHalf paints the top half of a cell in the foreground colour and the
// bottom half in the background colour, giving two pixels per cell.
const upperHalf = '▀'

// Terminal previews the image in the terminal with truecolor half blocks,
// scaled to the screen. It returns when the user presses q, Esc or Ctrl-C.
type Terminal struct{}

var _ Sink = Terminal{}

func (Terminal) Show(img image.Image) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("tcell.NewScreen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer s.Fini()

	for {
		cols, rows := s.Size()
		paintHalfBlocks(s, Thumbnail(img, cols, 2*rows))
		s.Show()

		switch ev := s.PollEvent().(type) {
		case *tcell.EventResize:
			s.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		case nil:
			// screen finalized
			return nil
		}
	}
}

// Thumbnail scales img to fit inside maxW×maxH pixels, keeping its aspect
// ratio.
func Thumbnail(img image.Image, maxW, maxH int) *image.RGBA {
	b := img.Bounds()
	if maxW <= 0 || maxH <= 0 || b.Empty() {
		return image.NewRGBA(image.Rectangle{})
	}

	w, h := maxW, b.Dy()*maxW/b.Dx()
	if h > maxH {
		w, h = b.Dx()*maxH/b.Dy(), maxH
	}
	w, h = max(w, 1), max(h, 1)

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}

func paintHalfBlocks(s tcell.Screen, img *image.RGBA) {
	s.Clear()
	b := img.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			top := img.RGBAAt(x, y)
			bottom := color.RGBA{A: 255}
			if y+1 < b.Dy() {
				bottom = img.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			s.SetContent(x, y/2, upperHalf, nil, style)
		}
	}
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
