package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// backgroundColor returns the gradient color for a row at ratio (0 top, 1
// bottom) at time t in seconds. The hue drifts slowly around deep blue.
func backgroundColor(t, ratio float64) color.RGBA {
	hue := 230 + 20*math.Sin(t*0.15+ratio*math.Pi)
	c := colorful.Hsv(hue, 0.55, 0.10+0.06*ratio).Clamped()
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// formatSeconds formats a duration as seconds with one decimal, e.g. "2.0s".
func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
