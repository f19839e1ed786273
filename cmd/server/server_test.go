package main

import (
	"context"
	"image"
	"image/png"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/marben/irpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/render"
)

func smallScene() julia.Scene {
	return julia.Scene{
		Window:     julia.PlaneWindow{Width: 3.2, Height: 2.4},
		Raster:     julia.Raster{Width: 32, Height: 24},
		C:          complex(-0.123, 0.745),
		Iterations: julia.DefaultIterations,
	}
}

func renderedProvider(t *testing.T) *imgRenderer {
	t.Helper()
	ir := newImgRenderer(smallScene(), 3, render.DefaultPalette)
	require.NoError(t, ir.render())
	return ir
}

func TestImgRendererBlocksUntilRendered(t *testing.T) {
	ir := newImgRenderer(smallScene(), 3, render.DefaultPalette)
	assert.False(t, ir.ready())

	got := make(chan image.RGBA, 1)
	go func() {
		img, err := ir.GetImage()
		assert.NoError(t, err)
		got <- img
	}()

	select {
	case <-got:
		t.Fatal("GetImage returned before rendering")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, ir.render())
	assert.True(t, ir.ready())
	assert.Equal(t, float32(1), ir.finished())

	img := <-got
	want, err := render.FillRegion(smallScene(), 1)
	require.NoError(t, err)
	assert.Equal(t, want.RGBA().Pix, img.Pix)
}

func TestImgRendererError(t *testing.T) {
	s := smallScene()
	s.Raster.Width = julia.MaxRasterSide + 1
	ir := newImgRenderer(s, 2, nil)

	require.ErrorIs(t, ir.render(), render.ErrBufferSize)
	img, err := ir.GetImage()
	assert.Nil(t, img.Pix)
	assert.ErrorIs(t, err, render.ErrBufferSize)
}

// serve runs an irpc server for ir on l until the test ends.
func serve(t *testing.T, ir *imgRenderer, l net.Listener) {
	t.Helper()
	irpcServer := newIrpcServer(ir)
	done := make(chan error, 1)
	go func() { done <- irpcServer.Serve(l) }()
	t.Cleanup(func() {
		// endpoints already closed by the client report why they ended
		_ = irpcServer.Close()
		assert.True(t, closed(<-done))
	})
}

func TestServeImgProviderTCP(t *testing.T) {
	ir := renderedProvider(t)

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	serve(t, ir, l)

	conn, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := julia.NewImgProviderIrpcClient(ep)
	require.NoError(t, err)
	img, err := client.GetImage()
	require.NoError(t, err)

	want, _ := ir.GetImage()
	assert.Equal(t, want.Rect, img.Rect)
	assert.Equal(t, want.Pix, img.Pix)
}

func TestServeImgProviderWebsocket(t *testing.T) {
	ir := renderedProvider(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l, srv := webServer(ctx, 0, t.TempDir(), ir)
	ts := httptest.NewServer(srv.Handler)
	defer ts.Close()
	serve(t, ir, l)

	c, _, err := websocket.Dial(ctx, "ws"+strings.TrimPrefix(ts.URL, "http")+"/ws", nil)
	require.NoError(t, err)
	c.SetReadLimit(julia.MaxImageMessage)
	ep := irpc.NewEndpoint(websocket.NetConn(ctx, c, websocket.MessageBinary))
	defer ep.Close()

	client, err := julia.NewImgProviderIrpcClient(ep)
	require.NoError(t, err)
	img, err := client.GetImage()
	require.NoError(t, err)

	want, _ := ir.GetImage()
	assert.Equal(t, want.Pix, img.Pix)
}

func TestServeImgProviderRenderError(t *testing.T) {
	s := smallScene()
	s.Raster.Height = julia.MaxRasterSide + 1
	ir := newImgRenderer(s, 2, render.DefaultPalette)
	require.Error(t, ir.render())

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	serve(t, ir, l)

	conn, err := net.Dial("tcp", l.Addr().String())
	require.NoError(t, err)
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()

	client, err := julia.NewImgProviderIrpcClient(ep)
	require.NoError(t, err)
	_, err = client.GetImage()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "buffer")
}

func TestPNGHandler(t *testing.T) {
	ir := renderedProvider(t)

	rec := httptest.NewRecorder()
	pngHandler(ir)(rec, httptest.NewRequest(http.MethodGet, "/image.png", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	img, err := png.Decode(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 24), img.Bounds())
}

func TestWebsocketListenerClose(t *testing.T) {
	l := NewWSListener(context.Background(), ":0/ws")
	assert.Equal(t, "ws", l.Addr().Network())
	require.NoError(t, l.Close())

	_, err := l.Accept()
	assert.ErrorIs(t, err, net.ErrClosed)
}
