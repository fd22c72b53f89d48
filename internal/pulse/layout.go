package pulse

import "github.com/iburimskiy/pulse-button/internal/scene"

// Layout is the layout-pass hook. It rebuilds the rings for the current
// size and starts them. Background and image framing are left as they
// are; set BackgroundColor or an image again to re-frame them.
func (b *Button) Layout() {
	b.rebuildRingPool()
	b.start()
}

// SetFrame moves the button within the scene. A size change runs Layout.
func (b *Button) SetFrame(r scene.Rect) {
	old := b.container.Frame()
	b.container.SetFrame(r)
	if old.W != r.W || old.H != r.H {
		b.Layout()
	}
}

// Frame returns the button rectangle in scene root coordinates.
func (b *Button) Frame() scene.Rect { return b.container.Frame() }
