// cliclient is a CLI client for the Julia set server.
// It connects to the server, receives the fully rendered image, and saves it as a PNG file.

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/marben/dist_julia/display"
)

type clientOptions struct {
	addr    string
	tcp     bool
	out     string
	timeout time.Duration
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	log.Printf("Starting CLI client...")
	if err := newClientCmd().Execute(); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

func newClientCmd() *cobra.Command {
	opts := clientOptions{addr: "localhost:8080", out: "julia.png", timeout: time.Minute}

	cmd := &cobra.Command{
		Use:          "cliclient",
		Short:        "Fetch a rendered Julia set from the server and save it as PNG",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()
			return run(ctx, opts)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&opts.addr, "addr", "a", opts.addr, "server address (http port, or tcp port with --tcp)")
	fs.BoolVar(&opts.tcp, "tcp", false, "use the tcp listener instead of websocket")
	fs.StringVarP(&opts.out, "out", "o", opts.out, "output file")
	fs.DurationVar(&opts.timeout, "timeout", opts.timeout, "give up after this long")
	return cmd
}

// run connects to the Julia set server, receives the rendered image, and saves it as a PNG file.
// Returns an error if any step fails.
func run(ctx context.Context, opts clientOptions) error {
	// Step 1: Connect to the server
	dial := dialWebsocket
	if opts.tcp {
		dial = dialTCP
	}
	log.Printf("Connecting to %s...", opts.addr)
	conn, err := dial(ctx, opts.addr)
	if err != nil {
		return err
	}

	// Step 2: Ask the ImgProvider service for the image. It answers once rendering is done.
	log.Printf("Requesting fully rendered image from %s...", opts.addr)
	img, err := fetchImage(ctx, conn)
	if err != nil {
		return fmt.Errorf("fetch from %s: %w", opts.addr, err)
	}

	// Step 3: Save the rendered image to a PNG file
	log.Printf("Saving rendered image to %q...", opts.out)
	if err := (display.PNG{Path: opts.out}).Show(img); err != nil {
		return err
	}

	log.Printf("Fully rendered image saved to %q", opts.out)
	return nil
}
