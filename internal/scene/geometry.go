package scene

import (
	"image/color"
	"math"
)

// Rect is an axis-aligned rectangle in parent coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of r.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// ScaledAbout returns r scaled by s around its center.
func (r Rect) ScaledAbout(s float64) Rect {
	cx, cy := r.Center()
	w, h := r.W*s, r.H*s
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Offset translates r by (dx, dy).
func (r Rect) Offset(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Fade returns c with its alpha multiplied by opacity.
func Fade(c color.Color, opacity float64) color.Color {
	o := clamp01(opacity)
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(math.Round(float64(r) * o)),
		G: uint16(math.Round(float64(g) * o)),
		B: uint16(math.Round(float64(b) * o)),
		A: uint16(math.Round(float64(a) * o)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
