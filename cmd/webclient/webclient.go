//go:build js && wasm

// webclient is a WASM web client for the Julia set server.
// It connects to the server over the browser's WebSocket, asks its ImgProvider irpc service for the rendered image
// and paints it on the canvas.
//
// Build it into ./static, which cmd/server serves:
//
//	GOOS=js GOARCH=wasm go build -o static/main.wasm ./cmd/webclient

package main

import (
	"fmt"
	"log"
	"syscall/js"
	"time"

	"github.com/marben/irpc"

	julia "github.com/marben/dist_julia"
)

// main is the entry point for the WASM web client.
func main() {
	logScreenf("Starting WASM web client...")

	// Step 1: Determine server address for WebSocket connection
	loc := js.Global().Get("window").Get("location")
	host := loc.Get("host").String()
	proto := "ws"
	if loc.Get("protocol").String() == "https:" {
		proto = "wss"
	}
	websocketUrl := proto + "://" + host + "/ws"

	// Step 2: Connect to server via WebSocket
	logScreenf("Connecting to Julia set server at %s...", websocketUrl)
	websocket := js.Global().Get("WebSocket").New(websocketUrl)
	websocketRWC := NewWebsocketReadWriteCloser(websocket)

	// Step 3: Set up IRPC endpoint and ImgProvider client
	endpoint := irpc.NewEndpoint(websocketRWC)
	defer endpoint.Close()
	imgProvider, err := julia.NewImgProviderIrpcClient(endpoint)
	if err != nil {
		logFatalf("Failed to create ImgProvider client: %v", err)
	}
	logScreenf("IRPC endpoint created.")

	// Step 4: Ask for the image. The server answers once rendering is done.
	start := time.Now()
	img, err := imgProvider.GetImage()
	if err != nil {
		logFatalf("Failed to receive image: %v", err)
	}
	logScreenf("Received %dx%d image in %s", img.Rect.Dx(), img.Rect.Dy(), time.Since(start))
	hudSetDimensions(img.Rect.Dx(), img.Rect.Dy())

	// Step 5: Paint it
	initCanvas(img.Rect.Dx(), img.Rect.Dy(), "#000000")
	displayImage(&img)

	// Step 6: Block main goroutine to keep WASM running
	select {}
}

// logScreenf appends a formatted message to the log element in the DOM,
func logScreenf(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)

	doc := js.Global().Get("document")
	logElem := doc.Call("getElementById", "log")
	logElem.Set("textContent", logElem.Get("textContent").String()+msg+"\n")
}

// logFatalf logs a fatal error to the log window and terminates the program.
func logFatalf(format string, a ...any) {
	logScreenf("FATAL: "+format, a...)
	log.Fatalf(format, a...)
}

// hudSetDimensions shows the image size in the HUD.
func hudSetDimensions(width, height int) {
	js.Global().Get("document").Call("getElementById", "dimensions").Set("textContent", fmt.Sprintf("%dx%d", width, height))
}
