// Package render turns a viewport into pixels: it partitions the
// framebuffer into row slices, runs one worker goroutine per slice through
// the escape kernel and the palette, and joins them before returning the
// frame.
package render

import (
	"errors"
	"fmt"
	"sync"

	"github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/kernel"
)

// Renderer renders full frames with a fixed worker count and kernel lane
// width. It holds no per-frame state and may be reused across frames.
type Renderer struct {
	workers   int
	laneWidth int
}

// New returns a renderer using the given worker count (typically the
// detected CPU count) and kernel lane width. Both are clamped to at
// least 1.
func New(workers, laneWidth int) *Renderer {
	if workers < 1 {
		workers = 1
	}
	if laneWidth < 1 {
		laneWidth = 1
	}
	return &Renderer{workers: workers, laneWidth: laneWidth}
}

// Frame renders one frame of view into fb and blocks until every worker
// has finished. The viewport is taken by value, so the caller is free to
// advance or recenter its own copy while a frame is in flight. Workers
// write only within their own row slice, which is what makes the lock-free
// framebuffer writes safe.
func (r *Renderer) Frame(fb *Framebuffer, view mandelzoom.Viewport) error {
	if fb == nil {
		return errors.New("render: nil framebuffer")
	}
	if view.Zoom <= 0 {
		return fmt.Errorf("render: non-positive zoom %g", view.Zoom)
	}

	var wg sync.WaitGroup
	for _, sl := range Slices(fb.Height(), r.workers) {
		wg.Add(1)
		go func(sl Slice) {
			defer wg.Done()
			renderSlice(fb, view, sl, r.laneWidth)
		}(sl)
	}
	wg.Wait()
	return nil
}

// renderSlice renders the rows [sl.Start, sl.End) of one frame. Samples
// are fed to the kernel in lane-width batches along each row; the scale
// factors match Viewport.Project exactly, term for term.
func renderSlice(fb *Framebuffer, view mandelzoom.Viewport, sl Slice, laneWidth int) {
	width, height := fb.Width(), fb.Height()

	aspect := float64(width) / float64(height)
	xScale := 4.0 * aspect * view.Zoom / float64(width)
	yScale := 4.0 * view.Zoom / float64(width)

	k := kernel.New(laneWidth)
	cr := make([]float64, k.Width())
	ci := make([]float64, k.Width())
	counts := make([]int, k.Width())

	for y := sl.Start; y < sl.End; y++ {
		ciBase := view.CenterI + (float64(y)-float64(height)/2.0)*yScale
		for x := 0; x < width; x += k.Width() {
			n := min(k.Width(), width-x)
			for l := 0; l < n; l++ {
				cr[l] = view.CenterR + (float64(x+l)-float64(width)/2.0)*xScale
				ci[l] = ciBase
			}
			k.Counts(cr[:n], ci[:n], counts[:n])
			for l := 0; l < n; l++ {
				fb.SetARGB(y, x+l, shade(counts[l]))
			}
		}
	}
}
