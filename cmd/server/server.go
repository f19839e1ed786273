// server renders a Julia set once and serves the finished image: through the
// irpc ImgProvider service over TCP and WebSocket, as PNG over HTTP, and to
// the browser viewer in the static directory.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"

	"github.com/marben/irpc"
	"github.com/spf13/cobra"

	julia "github.com/marben/dist_julia"
	"github.com/marben/dist_julia/render"
)

type serverOptions struct {
	preset    string
	palette   string
	httpPort  int
	tcpPort   int
	staticDir string
}

func main() {
	if err := newServerCmd().Execute(); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func newServerCmd() *cobra.Command {
	cfg := julia.DefaultConfig()
	opts := serverOptions{preset: "rabbit", palette: "hue", httpPort: 8080, tcpPort: 8081, staticDir: "./static"}

	cmd := &cobra.Command{
		Use:          "server",
		Short:        "Render a Julia set and serve it over TCP, WebSocket and HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.ApplyPreset(opts.preset, cmd.Flags()); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, opts)
		},
	}

	fs := cmd.Flags()
	cfg.BindFlags(fs)
	fs.StringVar(&opts.preset, "preset", opts.preset, fmt.Sprintf("named Julia set %v; explicit flags override it", julia.PresetNames()))
	fs.StringVar(&opts.palette, "palette", opts.palette, "colour palette: linear or hue")
	fs.IntVar(&opts.httpPort, "http", opts.httpPort, "http and websocket port")
	fs.IntVar(&opts.tcpPort, "tcp", opts.tcpPort, "irpc tcp port")
	fs.StringVar(&opts.staticDir, "static", opts.staticDir, "directory with the browser viewer")
	return cmd
}

func run(ctx context.Context, cfg julia.Config, opts serverOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}

	var palette render.Palette
	switch opts.palette {
	case "linear":
		palette = render.DefaultPalette
	case "hue":
		palette = render.HueGradient(cfg.Iterations / 4)
	default:
		return fmt.Errorf("unknown palette %q", opts.palette)
	}

	// The image is rendered once; clients asking before it is done wait for it.
	imgRenderer := newImgRenderer(cfg.Scene(), cfg.Workers, palette)
	log.Printf("rendering %dx%d with C=%v on %d workers", cfg.Width, cfg.Height, complex(cfg.A, cfg.B), cfg.Workers)
	go func() {
		if err := imgRenderer.render(); err != nil {
			log.Printf("err: %v", err)
		}
	}()

	// irpcServer provides julia.ImgProvider over network.
	// Its only function GetImage() returns the full image once it is rendered.
	irpcServer := newIrpcServer(imgRenderer)

	// TCP
	log.Printf("tcp listening on port: %d", opts.tcpPort)
	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%d", opts.tcpPort))
	if err != nil {
		return fmt.Errorf("net.Listen: %w", err)
	}

	// WEBSOCKET
	websocketListener, httpServer := webServer(ctx, opts.httpPort, opts.staticDir, imgRenderer)

	// httpServer provides the static viewer and image.png along with the websocket endpoint
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("httpServer: %v", err)
		}
	}()

	// irpcServer serves both the tcp and the websocket listener
	go func() {
		if err := irpcServer.Serve(tcpListener); !closed(err) {
			log.Fatalf("server.Serve tcp: %v", err)
		}
	}()
	go func() {
		if err := irpcServer.Serve(websocketListener); !closed(err) {
			log.Fatalf("server.Serve ws: %v", err)
		}
	}()

	log.Printf("julia server waiting for tcp and websocket connections")
	<-ctx.Done()
	return errors.Join(irpcServer.Close(), httpServer.Close())
}

// closed reports whether a Serve error only means that we are shutting down.
// The websocket listener closes itself when ctx is done, possibly before
// irpcServer.Close is called.
func closed(err error) bool {
	return errors.Is(err, irpc.ErrServerClosed) || errors.Is(err, net.ErrClosed)
}

// newIrpcServer returns an irpc server providing p to every connected client.
func newIrpcServer(p julia.ImgProvider) *irpc.Server {
	irpcServer := irpc.NewServer(irpc.WithOnConnect(func(ep *irpc.Endpoint) {
		log.Printf("got connection from: %s", ep.RemoteAddr())
	}))
	irpcServer.AddService(julia.NewImgProviderIrpcService(p))
	return irpcServer
}
