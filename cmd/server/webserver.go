package main

import (
	"context"
	"fmt"
	"image/png"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/coder/websocket"

	julia "github.com/marben/dist_julia"
)

// webServer creates a server serving files in staticDir and the rendered
// image as PNG, initializes the websocket endpoint and returns a
// net.Listener accepting websocket connections.
func webServer(ctx context.Context, port int, staticDir string, p julia.ImgProvider) (*WebsocketListener, *http.Server) {
	l := NewWSListener(ctx, fmt.Sprintf(":%d/ws", port))
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", websocketHandler(l))
	mux.HandleFunc("/image.png", pngHandler(p))
	mux.Handle("/", http.FileServer(http.Dir(staticDir)))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	return l, srv
}

// pngHandler waits for the image and sends it PNG encoded.
func pngHandler(p julia.ImgProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		img, err := p.GetImage()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		if err := png.Encode(w, &img); err != nil {
			log.Printf("png to %s: %v", r.RemoteAddr, err)
		}
	}
}

// websocketHandler handles the http ws endpoint
// if websocket is successfully initialized it is passed to WebsocketListener so it can be accepted
func websocketHandler(l *WebsocketListener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			OriginPatterns: []string{"*"}, // TODO: restrict once the viewer has a fixed origin
		})
		if err != nil {
			log.Println(err)
			return
		}

		select {
		case l.ch <- c:
		case <-l.ctx.Done():
			c.Close(websocket.StatusGoingAway, "server shutting down")
		}
	}
}

// WebsocketListener implements net.Listener
// it's a wrapper around websocket.Conn
type WebsocketListener struct {
	ch     chan *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc
	addr   wsAddr
}

func NewWSListener(ctx context.Context, addr string) *WebsocketListener {
	ctx, cancel := context.WithCancel(ctx)
	return &WebsocketListener{
		ch:     make(chan *websocket.Conn),
		ctx:    ctx,
		cancel: cancel,
		addr:   wsAddr{addr: addr},
	}
}

func (l *WebsocketListener) Accept() (net.Conn, error) {
	select {
	case c := <-l.ch:
		return websocket.NetConn(l.ctx, c, websocket.MessageBinary), nil
	case <-l.ctx.Done():
		return nil, net.ErrClosed
	}
}

func (l *WebsocketListener) Addr() net.Addr {
	return l.addr
}

func (l *WebsocketListener) Close() error {
	l.cancel()
	return nil
}

// wsAddr implements net.Addr
type wsAddr struct {
	addr string
}

func (a wsAddr) Network() string {
	return "ws"
}

func (a wsAddr) String() string {
	return a.addr
}
