// Package pulse implements a circular button surrounded by staggered,
// expanding and fading rings.
//
// A Button owns its layers inside a scene.Scene: a pool of ring layers,
// a background layer above them and an image layer on top. Every setter
// synchronously performs the recompute its property needs before it
// returns:
//
//	PulseCount                          rebuild ring pool, start
//	PulseDuration, IntervalBetweenPulses,
//	PulseScaleFactor, PulseRepeatCount  stop, then start
//	PulseColor                          recolor rings
//	NormalImage, SelectedImage          lay out image layer
//	BackgroundColor                     background fill
//
// The scene owns playback; the engine only attaches and removes
// animations. All methods must be called from the goroutine that drives
// the scene.
package pulse

import (
	"image"
	"image/color"
	"math"
	"reflect"
	"time"

	"github.com/iburimskiy/pulse-button/internal/scene"
)

// Button is a pulsing circular control.
type Button struct {
	scene      *scene.Scene
	container  *scene.Layer
	background *scene.Layer
	image      *scene.Layer
	rings      []*scene.Layer

	cfg     Config
	pulsing bool

	inputEnabled bool
	onTap        func()
}

// New builds a button at frame inside the scene root. The button starts
// Stopped; the first Layout call builds fresh rings and starts pulsing.
func New(sc *scene.Scene, frame scene.Rect, opts ...Option) *Button {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Button{
		scene:      sc,
		container:  sc.NewLayer("pulse.button"),
		background: sc.NewLayer("pulse.background"),
		image:      sc.NewLayer("pulse.image"),
		cfg:        cfg,
	}
	b.container.SetFrame(frame)
	sc.Root().AddSublayer(b.container)
	b.container.AddSublayer(b.background)
	b.container.AddSublayer(b.image)

	b.setBackgroundFill(cfg.BackgroundColor)
	b.rebuildRingPool()
	b.layoutImageVisual()
	b.inputEnabled = true

	Logger().Info("pulse button created",
		"frame", frame,
		"pulse_count", cfg.PulseCount,
		"pulse_duration", cfg.PulseDuration)
	return b
}

// Layer returns the container layer holding every visual of the button.
func (b *Button) Layer() *scene.Layer { return b.container }

// Rings returns the current ring layers in pool order.
func (b *Button) Rings() []*scene.Layer {
	out := make([]*scene.Layer, len(b.rings))
	copy(out, b.rings)
	return out
}

// Background returns the layer filled with BackgroundColor.
func (b *Button) Background() *scene.Layer { return b.background }

// ImageLayer returns the layer showing the normal or selected image.
func (b *Button) ImageLayer() *scene.Layer { return b.image }

// Config returns a copy of the current configuration.
func (b *Button) Config() Config { return b.cfg }

// IsPulsing reports whether the rings carry active animations.
func (b *Button) IsPulsing() bool { return b.pulsing }

// PulseCount returns the configured ring count. A negative count is kept
// as set, while the pool holds zero rings.
func (b *Button) PulseCount() int                      { return b.cfg.PulseCount }
func (b *Button) PulseDuration() time.Duration         { return b.cfg.PulseDuration }
func (b *Button) IntervalBetweenPulses() time.Duration { return b.cfg.IntervalBetweenPulses }
func (b *Button) PulseScaleFactor() float64            { return b.cfg.PulseScaleFactor }
func (b *Button) PulseRepeatCount() float64            { return b.cfg.PulseRepeatCount }
func (b *Button) PulseColor() color.Color              { return b.cfg.PulseColor }
func (b *Button) NormalImage() image.Image             { return b.cfg.NormalImage }
func (b *Button) SelectedImage() image.Image           { return b.cfg.SelectedImage }
func (b *Button) BackgroundColor() color.Color         { return b.cfg.BackgroundColor }

// SetPulseCount rebuilds the ring pool with n rings and starts pulsing.
func (b *Button) SetPulseCount(n int) {
	b.cfg.PulseCount = n
	b.rebuildRingPool()
	b.start()
}

// SetPulseDuration sets the length of one ring cycle and restarts pulsing.
func (b *Button) SetPulseDuration(d time.Duration) {
	b.cfg.PulseDuration = d
	b.restart()
}

// SetIntervalBetweenPulses sets the stagger between consecutive rings and
// restarts pulsing.
func (b *Button) SetIntervalBetweenPulses(d time.Duration) {
	b.cfg.IntervalBetweenPulses = d
	b.restart()
}

// SetPulseScaleFactor sets the final ring scale and restarts pulsing.
func (b *Button) SetPulseScaleFactor(f float64) {
	b.cfg.PulseScaleFactor = f
	b.restart()
}

// SetPulseRepeatCount sets the cycles each ring plays and restarts pulsing.
// Use RepeatForever for an endless pulse.
func (b *Button) SetPulseRepeatCount(n float64) {
	b.cfg.PulseRepeatCount = n
	b.restart()
}

// SetPulseColor recolors the existing rings without touching their
// animations.
func (b *Button) SetPulseColor(c color.Color) {
	b.cfg.PulseColor = c
	for _, ring := range b.rings {
		ring.SetFill(c)
	}
}

// SetNormalImage replaces the normal image and lays the image layer out
// again, which shows the normal image.
func (b *Button) SetNormalImage(img image.Image) {
	b.cfg.NormalImage = img
	b.layoutImageVisual()
}

// SetSelectedImage replaces the selected image. Like SetNormalImage it
// re-lays the image layer, so the normal image is shown.
func (b *Button) SetSelectedImage(img image.Image) {
	b.cfg.SelectedImage = img
	b.layoutImageVisual()
}

// SetBackgroundColor refills the background; nil clears it.
func (b *Button) SetBackgroundColor(c color.Color) {
	b.cfg.BackgroundColor = c
	b.setBackgroundFill(c)
}

// Update applies cfg, running only the recomputes for fields that differ
// from the current configuration. A change to PulseCount together with
// timing fields rebuilds and starts once with the new timing.
func (b *Button) Update(cfg Config) {
	old := b.cfg

	countChanged := cfg.PulseCount != old.PulseCount
	timingChanged := cfg.PulseDuration != old.PulseDuration ||
		cfg.IntervalBetweenPulses != old.IntervalBetweenPulses ||
		!sameFloat(cfg.PulseScaleFactor, old.PulseScaleFactor) ||
		!sameFloat(cfg.PulseRepeatCount, old.PulseRepeatCount)

	b.cfg.PulseDuration = cfg.PulseDuration
	b.cfg.IntervalBetweenPulses = cfg.IntervalBetweenPulses
	b.cfg.PulseScaleFactor = cfg.PulseScaleFactor
	b.cfg.PulseRepeatCount = cfg.PulseRepeatCount

	switch {
	case countChanged:
		b.SetPulseCount(cfg.PulseCount)
	case timingChanged:
		b.restart()
	}

	if !sameColor(cfg.PulseColor, old.PulseColor) {
		b.SetPulseColor(cfg.PulseColor)
	}
	if !sameImage(cfg.NormalImage, old.NormalImage) || !sameImage(cfg.SelectedImage, old.SelectedImage) {
		b.cfg.NormalImage = cfg.NormalImage
		b.cfg.SelectedImage = cfg.SelectedImage
		b.layoutImageVisual()
	}
	if !sameColor(cfg.BackgroundColor, old.BackgroundColor) {
		b.SetBackgroundColor(cfg.BackgroundColor)
	}
}

// HitTest reports whether the scene point (x, y) falls on the button
// face: the circle of diameter equal to the control height.
func (b *Button) HitTest(x, y float64) bool {
	f := b.container.Presentation(b.scene.Now()).Frame
	cx, cy := f.Center()
	r := f.H / 2
	if !(scene.Rect{X: cx - r, Y: cy - r, W: 2 * r, H: 2 * r}).Contains(x, y) {
		return false
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// OnTap registers the handler Tap dispatches to.
func (b *Button) OnTap(fn func()) { b.onTap = fn }

// SetInputEnabled gates Tap.
func (b *Button) SetInputEnabled(enabled bool) { b.inputEnabled = enabled }
func (b *Button) InputEnabled() bool           { return b.inputEnabled }

// Tap delivers a tap to the handler. It returns false when input is
// disabled.
func (b *Button) Tap() bool {
	if !b.inputEnabled {
		return false
	}
	if b.onTap != nil {
		b.onTap()
	}
	return true
}

func sameFloat(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

// sameImage compares images by identity. Non-pointer images always count
// as changed.
func sameImage(a, b image.Image) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Kind() != reflect.Pointer || vb.Kind() != reflect.Pointer {
		return false
	}
	return va.Type() == vb.Type() && va.Pointer() == vb.Pointer()
}
