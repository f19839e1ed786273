package main

import (
	"context"
	"fmt"
	"image"
	"io"
	"net"

	"github.com/coder/websocket"
	"github.com/marben/irpc"

	julia "github.com/marben/dist_julia"
)

// dialWebsocket connects to the server's /ws endpoint.
func dialWebsocket(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	c, _, err := websocket.Dial(ctx, "ws://"+addr+"/ws", nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial: %w", err)
	}
	c.SetReadLimit(julia.MaxImageMessage)

	// the connection outlives the dial context
	return websocket.NetConn(context.WithoutCancel(ctx), c, websocket.MessageBinary), nil
}

// dialTCP connects to the server's tcp listener.
func dialTCP(ctx context.Context, addr string) (io.ReadWriteCloser, error) {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}
	return conn, nil
}

// fetchImage asks the ImgProvider on the other end of conn for the rendered
// image. The connection is closed when fetchImage returns or ctx ends.
func fetchImage(ctx context.Context, conn io.ReadWriteCloser) (*image.RGBA, error) {
	ep := irpc.NewEndpoint(conn)
	defer ep.Close()
	stop := context.AfterFunc(ctx, func() { ep.Close() })
	defer stop()

	client, err := julia.NewImgProviderIrpcClient(ep)
	if err != nil {
		return nil, err
	}

	img, err := client.GetImage()
	if err != nil {
		if ctx.Err() != nil {
			return nil, context.Cause(ctx)
		}
		return nil, fmt.Errorf("client.GetImage: %w", err)
	}
	return &img, nil
}
