// Package desktop shows images in a desktop window. Building it requires the
// windowing libraries ebiten links against.
package desktop

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/marben/dist_julia/display"
)

// Window shows the image in a desktop window of the image's size and
// returns when the user closes it or presses Esc or Q.
type Window struct {
	Title string
}

var _ display.Sink = Window{}

func (w Window) Show(img image.Image) error {
	rgba := display.ToRGBA(img)
	width, height := rgba.Rect.Dx(), rgba.Rect.Dy()

	title := w.Title
	if title == "" {
		title = "Julia Set"
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(width, height)

	v := &viewer{pix: rgba.Pix, width: width, height: height}
	if err := ebiten.RunGame(v); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}

// viewer is an ebiten.Game that paints a fixed pixel buffer.
type viewer struct {
	pix           []byte
	width, height int
}

func (v *viewer) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.WritePixels(v.pix)
}

func (v *viewer) Layout(int, int) (int, int) {
	return v.width, v.height
}
