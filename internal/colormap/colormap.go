// Package colormap maps W-depth values to colors for rendering.
package colormap

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB is a color with channels in [0,1].
type RGB struct {
	R, G, B float64
}

// Bytes returns the 8-bit channel values.
func (c RGB) Bytes() (r, g, b uint8) {
	return to8(c.R), to8(c.G), to8(c.B)
}

func to8(x float64) uint8 {
	if x <= 0 {
		return 0
	}
	if x >= 1 {
		return 255
	}
	return uint8(x*255 + 0.5)
}

// Gradient stops for the depth gradient, deep blue through cyan and
// magenta to gold.
var stops = [4]colorful.Color{
	{R: 0.10, G: 0.15, B: 0.90},
	{R: 0.00, G: 0.90, B: 0.90},
	{R: 0.90, G: 0.10, B: 0.90},
	{R: 1.00, G: 0.85, B: 0.10},
}

// Breakpoints between gradient segments.
const (
	break1 = 0.33
	break2 = 0.67
)

// WToColor maps a w coordinate into the depth gradient given this
// tick's w range. The blend is piecewise linear and hits the stop
// colors exactly at t = 0, 0.33, 0.67 and 1.
func WToColor(w, minW, maxW float64) RGB {
	span := maxW - minW
	if span == 0 {
		span = 1
	}
	t := (w - minW) / span
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	var c colorful.Color
	switch {
	case t <= break1:
		c = stops[0].BlendRgb(stops[1], t/break1)
	case t <= break2:
		c = stops[1].BlendRgb(stops[2], (t-break1)/(break2-break1))
	default:
		c = stops[2].BlendRgb(stops[3], (t-break2)/(1-break2))
	}
	return RGB{c.R, c.G, c.B}
}
