package colormap

import (
	"math"
	"testing"
)

func rgbNear(a, b RGB, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func TestWToColorEndpoints(t *testing.T) {
	first := RGB{stops[0].R, stops[0].G, stops[0].B}
	last := RGB{stops[3].R, stops[3].G, stops[3].B}

	if got := WToColor(-2, -2, 3); !rgbNear(got, first, 1e-12) {
		t.Errorf("WToColor at minW = %v, want first stop %v", got, first)
	}
	if got := WToColor(3, -2, 3); !rgbNear(got, last, 1e-12) {
		t.Errorf("WToColor at maxW = %v, want last stop %v", got, last)
	}
}

func TestWToColorBreakpoints(t *testing.T) {
	second := RGB{stops[1].R, stops[1].G, stops[1].B}
	third := RGB{stops[2].R, stops[2].G, stops[2].B}

	// minW=0, maxW=1 makes w equal to t directly.
	if got := WToColor(break1, 0, 1); !rgbNear(got, second, 1e-12) {
		t.Errorf("WToColor at t=%v = %v, want %v", break1, got, second)
	}
	if got := WToColor(break2, 0, 1); !rgbNear(got, third, 1e-12) {
		t.Errorf("WToColor at t=%v = %v, want %v", break2, got, third)
	}
}

func TestWToColorZeroRange(t *testing.T) {
	// Degenerate range maps to t=0 without dividing by zero.
	first := RGB{stops[0].R, stops[0].G, stops[0].B}
	got := WToColor(0.5, 0.5, 0.5)
	if !rgbNear(got, first, 1e-12) {
		t.Errorf("WToColor with zero range = %v, want %v", got, first)
	}
}

func TestWToColorClamps(t *testing.T) {
	first := RGB{stops[0].R, stops[0].G, stops[0].B}
	last := RGB{stops[3].R, stops[3].G, stops[3].B}
	if got := WToColor(-100, 0, 1); !rgbNear(got, first, 1e-12) {
		t.Errorf("WToColor below range = %v, want clamp to %v", got, first)
	}
	if got := WToColor(100, 0, 1); !rgbNear(got, last, 1e-12) {
		t.Errorf("WToColor above range = %v, want clamp to %v", got, last)
	}
}

func TestWToColorMonotoneSegments(t *testing.T) {
	// Within the first segment red decreases toward cyan.
	a := WToColor(0.05, 0, 1)
	b := WToColor(0.25, 0, 1)
	if b.R >= a.R {
		t.Errorf("expected red channel to fall across first segment: %v then %v", a.R, b.R)
	}
}

func TestRGBBytes(t *testing.T) {
	r, g, b := (RGB{0, 0.5, 1}).Bytes()
	if r != 0 || b != 255 {
		t.Errorf("Bytes() endpoints = (%d,%d), want (0,255)", r, b)
	}
	if g < 127 || g > 128 {
		t.Errorf("Bytes() mid channel = %d, want ~127", g)
	}
}
