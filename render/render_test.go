package render

import (
	"bytes"
	"testing"

	"github.com/marben/mandelzoom"
	"github.com/marben/mandelzoom/kernel"
)

// zoomedView returns a viewport a number of frames into the zoom, so test
// frames mix interior, escaping and quickly escaping samples.
func zoomedView(frames int) mandelzoom.Viewport {
	view := mandelzoom.NewViewport(mandelzoom.SpiralMinibrot)
	for i := 0; i < frames; i++ {
		view.Advance()
	}
	return view
}

func renderInto(t *testing.T, r *Renderer, width, height, pitch int, view mandelzoom.Viewport) []byte {
	t.Helper()
	pix := make([]byte, pitch*height)
	fb, err := NewFramebuffer(pix, width, height, pitch)
	if err != nil {
		t.Fatal(err)
	}
	if err := r.Frame(fb, view); err != nil {
		t.Fatal(err)
	}
	return pix
}

// The frame must be pixel-identical regardless of worker count and kernel
// lane width.
func TestFrameDeterministic(t *testing.T) {
	const width, height = 64, 48
	view := zoomedView(60)

	reference := renderInto(t, New(1, 1), width, height, width*4, view)

	configs := []struct {
		name      string
		workers   int
		laneWidth int
	}{
		{"two workers paired lanes", 2, 2},
		{"odd workers scalar lanes", 3, 1},
		{"many workers wide lanes", 8, 4},
		{"workers exceeding rows", 50, 2},
	}

	for _, tt := range configs {
		t.Run(tt.name, func(t *testing.T) {
			got := renderInto(t, New(tt.workers, tt.laneWidth), width, height, width*4, view)
			if !bytes.Equal(got, reference) {
				t.Errorf("frame with %d workers, lane width %d differs from single-threaded scalar frame",
					tt.workers, tt.laneWidth)
			}
		})
	}
}

// Every pixel must equal the scalar kernel applied to the projected sample.
func TestFrameMatchesProjection(t *testing.T) {
	const width, height = 16, 12
	view := zoomedView(30)

	pix := make([]byte, width*height*4)
	fb, err := NewFramebuffer(pix, width, height, width*4)
	if err != nil {
		t.Fatal(err)
	}
	if err := New(4, 2).Frame(fb, view); err != nil {
		t.Fatal(err)
	}

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cr, ci := view.Project(x, y, width, height)
			want := PackARGB(Color(kernel.Escape(cr, ci)))
			if got := fb.ARGBAt(y, x); got != want {
				t.Fatalf("pixel (%d,%d) = %#08x, want %#08x", x, y, got, want)
			}
		}
	}
}

func TestFramePitchSlackUntouched(t *testing.T) {
	const width, height = 8, 8
	const pitch = width*4 + 8

	pix := renderInto(t, New(3, 2), width, height, pitch, zoomedView(10))

	for y := 0; y < height; y++ {
		for off := y*pitch + width*4; off < (y+1)*pitch; off++ {
			if pix[off] != 0 {
				t.Fatalf("slack byte %d written: %#02x", off, pix[off])
			}
		}
	}
}

func TestFrameValidation(t *testing.T) {
	r := New(2, 2)

	if err := r.Frame(nil, zoomedView(0)); err == nil {
		t.Error("Frame(nil, ...) returned no error")
	}

	pix := make([]byte, 16*16*4)
	fb, err := NewFramebuffer(pix, 16, 16, 16*4)
	if err != nil {
		t.Fatal(err)
	}
	for _, zoom := range []float64{0, -1} {
		view := zoomedView(0)
		view.Zoom = zoom
		if err := r.Frame(fb, view); err == nil {
			t.Errorf("Frame with zoom %g returned no error", zoom)
		}
	}
}
