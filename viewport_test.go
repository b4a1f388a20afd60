package mandelzoom

import (
	"math"
	"testing"
)

// The screen center must project to the viewport center exactly, for any
// dimensions and zoom.
func TestProjectCenterIdentity(t *testing.T) {
	tests := []struct {
		name          string
		view          Viewport
		width, height int
	}{
		{"default target", NewViewport(SpiralMinibrot), 800, 600},
		{"widescreen", NewViewport(SeahorseValley), 1920, 1080},
		{"deep zoom", Viewport{CenterR: -0.5, CenterI: 0.25, Zoom: 1e-12, ZoomSpeed: DefaultZoomSpeed}, 640, 480},
		{"square screen", Viewport{CenterR: 1.5, CenterI: -2, Zoom: 3, ZoomSpeed: DefaultZoomSpeed}, 512, 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cr, ci := tt.view.Project(tt.width/2, tt.height/2, tt.width, tt.height)
			if cr != tt.view.CenterR || ci != tt.view.CenterI {
				t.Errorf("Project(center) = (%v, %v), want (%v, %v)",
					cr, ci, tt.view.CenterR, tt.view.CenterI)
			}
		})
	}
}

func TestClickAtScreenCenterKeepsCenter(t *testing.T) {
	view := Viewport{CenterR: -0.5, CenterI: 0, Zoom: 1, ZoomSpeed: DefaultZoomSpeed}

	view.ClickAt(400, 300, 800, 600)

	if view.CenterR != -0.5 || view.CenterI != 0 {
		t.Errorf("center = (%v, %v), want (-0.5, 0)", view.CenterR, view.CenterI)
	}
	if view.Zoom != 1 {
		t.Errorf("zoom = %v, want 1 (clicks never change zoom)", view.Zoom)
	}
}

func TestClickAtRecenters(t *testing.T) {
	view := NewViewport(SpiralMinibrot)

	wantR, wantI := view.Project(123, 456, 800, 600)
	view.ClickAt(123, 456, 800, 600)

	if view.CenterR != wantR || view.CenterI != wantI {
		t.Errorf("center = (%v, %v), want projected (%v, %v)", view.CenterR, view.CenterI, wantR, wantI)
	}
	if view.Zoom != 1 {
		t.Errorf("zoom = %v, want 1", view.Zoom)
	}
}

func TestAdvanceDecaysZoom(t *testing.T) {
	view := NewViewport(SpiralMinibrot)

	prev := view.Zoom
	for k := 1; k <= 100; k++ {
		view.Advance()
		if view.Zoom <= 0 || view.Zoom >= prev {
			t.Fatalf("after %d frames zoom = %v, previous %v; want strictly shrinking and positive", k, view.Zoom, prev)
		}
		prev = view.Zoom
	}

	want := math.Pow(DefaultZoomSpeed, 100)
	if diff := math.Abs(view.Zoom-want) / want; diff > 1e-12 {
		t.Errorf("zoom after 100 frames = %v, want %v (relative diff %g)", view.Zoom, want, diff)
	}

	if view.CenterR != SpiralMinibrot.R || view.CenterI != SpiralMinibrot.I {
		t.Errorf("Advance moved the center to (%v, %v)", view.CenterR, view.CenterI)
	}
}

func TestTargetByName(t *testing.T) {
	got, ok := TargetByName("seahorse")
	if !ok || got != SeahorseValley {
		t.Errorf("TargetByName(seahorse) = %+v, %t", got, ok)
	}

	if _, ok := TargetByName("atlantis"); ok {
		t.Error("TargetByName(atlantis) unexpectedly found")
	}

	names := TargetNames()
	if len(names) != 6 {
		t.Fatalf("TargetNames() has %d entries, want 6", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("TargetNames() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
