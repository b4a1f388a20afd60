// Package mandelzoom holds the viewport of a continuously zooming view of
// the Mandelbrot set: the center point in the complex plane and the zoom
// factor, plus the projection between screen pixels and complex coordinates.
package mandelzoom

// DefaultZoomSpeed is the per-frame zoom decay factor.
const DefaultZoomSpeed = 0.985

// Viewport is the region of the complex plane currently mapped onto the
// screen. It is advanced once per frame and recentered on clicks; the frame
// renderer takes it by value, so an in-flight frame never observes a
// mid-frame mutation.
type Viewport struct {
	CenterR, CenterI float64
	Zoom             float64 // always > 0, shrinks by ZoomSpeed each frame
	ZoomSpeed        float64
}

// NewViewport returns a viewport centered on t at zoom 1.0.
func NewViewport(t Target) Viewport {
	return Viewport{
		CenterR:   t.R,
		CenterI:   t.I,
		Zoom:      1.0,
		ZoomSpeed: DefaultZoomSpeed,
	}
}

// Project maps the screen pixel (px, py) to its complex coordinate, given
// the framebuffer dimensions. The visible width of the complex plane is
// 4*aspect*zoom, so projecting (width/2, height/2) yields the center
// exactly.
func (v Viewport) Project(px, py, width, height int) (cr, ci float64) {
	aspect := float64(width) / float64(height)
	xScale := 4.0 * aspect * v.Zoom / float64(width)
	yScale := 4.0 * v.Zoom / float64(width)
	cr = v.CenterR + (float64(px)-float64(width)/2.0)*xScale
	ci = v.CenterI + (float64(py)-float64(height)/2.0)*yScale
	return cr, ci
}

// ClickAt recenters the viewport on the complex coordinate under the
// clicked pixel. The zoom factor is left untouched.
func (v *Viewport) ClickAt(px, py, width, height int) {
	v.CenterR, v.CenterI = v.Project(px, py, width, height)
}

// Advance applies one frame of zoom decay.
//
// There is no lower bound on the zoom: once the per-pixel coordinate step
// 4*aspect*zoom/width falls below one ulp of the center (zoom below roughly
// 1e-14 at the default target and an 800-wide screen, about 2000 frames in),
// adjacent pixels project to the same float64 and the image freezes. That is
// the float64 precision floor, not an error.
func (v *Viewport) Advance() {
	v.Zoom *= v.ZoomSpeed
}
