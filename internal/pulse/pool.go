package pulse

import (
	"fmt"
	"image/color"
	"math"

	"github.com/iburimskiy/pulse-button/internal/scene"
)

// imageMargin insets the image layer from the control bounds.
const imageMargin = 12

// bounds is the control rectangle in its own coordinate space.
func (b *Button) bounds() scene.Rect {
	f := b.container.Frame()
	return scene.Rect{W: f.W, H: f.H}
}

// rebuildRingPool discards every ring, animations included, and creates
// PulseCount fresh invisible rings directly below the background.
func (b *Button) rebuildRingPool() {
	for _, ring := range b.rings {
		ring.RemoveAllAnimations()
		ring.RemoveFromSuperlayer()
	}

	n := max(b.cfg.PulseCount, 0)
	bounds := b.bounds()
	side := bounds.H
	frame := scene.Rect{X: (bounds.W - side) / 2, Y: 0, W: side, H: side}

	b.rings = make([]*scene.Layer, n)
	for i := range b.rings {
		ring := b.scene.NewLayer(fmt.Sprintf("pulse.ring.%d", i))
		ring.SetFrame(frame)
		ring.SetCornerRadius(side / 2)
		ring.SetFill(b.cfg.PulseColor)
		ring.SetOpacity(0)
		b.container.InsertSublayerBelow(ring, b.background)
		b.rings[i] = ring
	}
	b.pulsing = false

	Logger().Debug("ring pool rebuilt", "rings", n, "side", side)
}

// layoutImageVisual centers a square inset by imageMargin and shows the
// normal image in it.
func (b *Button) layoutImageVisual() {
	bounds := b.bounds()
	side := math.Max(0, math.Min(bounds.W, bounds.H)-2*imageMargin)
	b.image.SetFrame(scene.Rect{
		X: (bounds.W - side) / 2,
		Y: (bounds.H - side) / 2,
		W: side,
		H: side,
	})
	b.image.SetContents(b.cfg.NormalImage)
}

// setBackgroundFill covers the bounds with c, fully rounded on the short
// side for a square control.
func (b *Button) setBackgroundFill(c color.Color) {
	bounds := b.bounds()
	b.background.SetFrame(bounds)
	b.background.SetFill(c)
	b.background.SetCornerRadius(bounds.H / 2)
}
