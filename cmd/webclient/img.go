//go:build js && wasm

package main

import (
	"image"
	"syscall/js"
	"time"
)

// displayImage puts the whole image on the canvas in one call.
func displayImage(img *image.RGBA) {
	start := time.Now()
	// 1. Get the Canvas element and its 2D context
	document := js.Global().Get("document")
	canvas := document.Call("getElementById", "myCanvas")
	ctx := canvas.Call("getContext", "2d")

	width := img.Rect.Dx()
	height := img.Rect.Dy()

	// 2. Create a JS TypedArray (Uint8ClampedArray) to hold the pixel data
	// The length is width * height * 4 (RGBA)
	jsData := js.Global().Get("Uint8ClampedArray").New(len(img.Pix))

	// 3. Copy the Go byte slice into the JS TypedArray
	js.CopyBytesToJS(jsData, img.Pix)

	// 4. Create ImageData and put it on the canvas
	imageData := js.Global().Get("ImageData").New(jsData, width, height)
	ctx.Call("putImageData", imageData, 0, 0)
	logScreenf("draw took %s", time.Since(start))
}

// initCanvas sizes the canvas and clears it to color.
func initCanvas(width, height int, color string) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "myCanvas")

	canvas.Set("width", width)
	canvas.Set("height", height)

	ctx := canvas.Call("getContext", "2d")

	ctx.Set("fillStyle", color)
	ctx.Call("fillRect", 0, 0, width, height)
}
