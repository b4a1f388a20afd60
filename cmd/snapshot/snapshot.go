// snapshot renders the zooming Mandelbrot view after a number of frames of
// zoom decay and saves it as a PNG file.
package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/kernel"
	"github.com/marben/mandelzoom/render"
)

type options struct {
	width, height int
	frames        int
	target        string
	out           string
}

func mainCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:  "snapshot",
		Args: cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(opts)
		},
	}

	cmd.Flags().IntVar(&opts.width, "width", 1920, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 1080, "image height in pixels")
	cmd.Flags().IntVar(&opts.frames, "frames", 600, "frames of zoom decay to apply before rendering")
	cmd.Flags().StringVar(&opts.target, "target", "spiral",
		fmt.Sprintf("zoom target, one of: %s", strings.Join(mandelzoom.TargetNames(), ", ")))
	cmd.Flags().StringVar(&opts.out, "out", "mandel.png", "output PNG file")

	return cmd
}

func run(opts *options) error {
	target, ok := mandelzoom.TargetByName(opts.target)
	if !ok {
		return fmt.Errorf("unknown target %q, want one of: %s",
			opts.target, strings.Join(mandelzoom.TargetNames(), ", "))
	}
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("non-positive dimensions %dx%d", opts.width, opts.height)
	}

	view := mandelzoom.NewViewport(target)
	for i := 0; i < opts.frames; i++ {
		view.Advance()
	}

	pix := make([]byte, opts.width*opts.height*4)
	fb, err := render.NewFramebuffer(pix, opts.width, opts.height, opts.width*4)
	if err != nil {
		return err
	}

	workers := runtime.NumCPU()
	if workers < 1 {
		workers = 1
	}
	log.Printf("rendering %dx%d at zoom %.3e with %d workers", opts.width, opts.height, view.Zoom, workers)

	renderer := render.New(workers, kernel.DefaultWidth)
	if err := renderer.Frame(fb, view); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	f, err := os.Create(opts.out)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := png.Encode(f, fb.RGBA()); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}

	log.Printf("snapshot saved to %q", opts.out)
	return nil
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		// cobra has already printed the error
		os.Exit(1)
	}
}
