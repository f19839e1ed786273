// Package julia holds the data model shared by the renderer, the display
// sinks and the network commands: the plane window, the raster, the scene
// configuration and the ImgProvider service used to ship finished images
// around over irpc.
package julia

// DefaultIterations is the number of iterations applied to a point before it
// is presumed to belong to the Julia set.
const DefaultIterations = 100

// MaxRasterSide bounds both raster dimensions.
const MaxRasterSide = 1 << 14

// MaxImageMessage is the largest GetImage response a websocket client has to
// accept: the pixels plus the varint encoded stride and bounds.
const MaxImageMessage = 4*MaxRasterSide*MaxRasterSide + 64

// PlaneWindow is the region of the complex plane mapped onto the raster.
type PlaneWindow struct {
	CenterX, CenterY float64
	Width, Height    float64
}

// Raster is the size of the image in pixels.
type Raster struct {
	Width, Height int
}

// Scene is everything that determines the pixels of one render.
type Scene struct {
	Window     PlaneWindow
	Raster     Raster
	C          complex128 // f(z) = z² + C
	Iterations int
}
