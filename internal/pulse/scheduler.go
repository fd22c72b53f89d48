package pulse

import (
	"time"

	"github.com/iburimskiy/pulse-button/internal/scene"
)

// Animation keys on every ring. Re-attaching under the same key replaces
// the previous animation, so a ring never carries more than one pair.
const (
	ScaleAnimationKey   = "pulse.scale"
	OpacityAnimationKey = "pulse.opacity"
)

// StartPulsing attaches a fresh, staggered animation pair to every ring.
func (b *Button) StartPulsing() { b.start() }

// StopPulsing removes every ring animation and shows the selected image.
func (b *Button) StopPulsing() { b.stop() }

// RingDelay is the start offset of the ring at pool index i.
func (b *Button) RingDelay(i int) time.Duration {
	return time.Duration(i) * b.cfg.IntervalBetweenPulses
}

func (b *Button) start() {
	for i, ring := range b.rings {
		delay := b.RingDelay(i)
		ring.AddAnimation(ScaleAnimationKey, b.pulseAnimation(scene.KeyPathScale, 1, b.cfg.PulseScaleFactor, delay))
		ring.AddAnimation(OpacityAnimationKey, b.pulseAnimation(scene.KeyPathOpacity, 1, 0, delay))
	}
	b.pulsing = true

	Logger().Debug("pulsing started",
		"rings", len(b.rings),
		"duration", b.cfg.PulseDuration,
		"interval", b.cfg.IntervalBetweenPulses,
		"repeat", b.cfg.PulseRepeatCount)
}

func (b *Button) pulseAnimation(path scene.KeyPath, from, to float64, delay time.Duration) scene.Animation {
	return scene.Animation{
		KeyPath:             path,
		From:                from,
		To:                  to,
		Duration:            b.cfg.PulseDuration,
		Delay:               delay,
		RepeatCount:         b.cfg.PulseRepeatCount,
		Timing:              scene.TimingDefault,
		FillForwards:        true,
		RemovedOnCompletion: false,
	}
}

// halt removes ring animations, leaving the rings at their model values.
func (b *Button) halt() {
	for _, ring := range b.rings {
		ring.RemoveAllAnimations()
	}
	b.pulsing = false
}

func (b *Button) stop() {
	b.halt()
	b.image.SetContents(b.cfg.SelectedImage)
	Logger().Debug("pulsing stopped", "rings", len(b.rings))
}

// restart re-times the rings after a timing change: a full stop, which
// shows the selected image, then a fresh start.
func (b *Button) restart() {
	b.stop()
	b.start()
}
