package julia

import (
	"image"
)

//go:generate irpc api.go

// ImgProvider hands out a finished image. Implementations may block until
// the image is ready.
type ImgProvider interface {
	GetImage() (image.RGBA, error)
}
