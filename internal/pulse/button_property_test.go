//go:build property

package pulse

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/iburimskiy/pulse-button/internal/scene"
)

func newPropertyButton(opts ...Option) (*Button, *scene.ManualClock) {
	clock := scene.NewManualClock()
	sc := scene.New(clock, scene.Rect{W: 400, H: 400})
	return New(sc, scene.Rect{X: 100, Y: 100, W: 80, H: 80}, opts...), clock
}

// TestRingPoolProperties checks pool size and stagger for arbitrary
// configurations.
func TestRingPoolProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	// Property: the pool holds exactly PulseCount rings after any settling operation
	properties.Property("pool size matches pulse count", prop.ForAll(
		func(initial, next int) bool {
			b, _ := newPropertyButton(WithPulseCount(initial))
			if len(b.Rings()) != initial {
				return false
			}
			b.StartPulsing()
			b.SetPulseCount(next)
			if len(b.Rings()) != next {
				return false
			}
			b.Layout()
			return len(b.Rings()) == next && len(b.Layer().Sublayers()) == next+2
		},
		gen.IntRange(0, 32),
		gen.IntRange(0, 32),
	))

	// Property: ring i begins interval*i after the start call
	properties.Property("stagger is interval times index", prop.ForAll(
		func(count int, intervalMs int, startMs int) bool {
			interval := time.Duration(intervalMs) * time.Millisecond
			b, clock := newPropertyButton(WithPulseCount(count), WithIntervalBetweenPulses(interval))
			clock.Set(time.Duration(startMs) * time.Millisecond)
			b.StartPulsing()

			for i, ring := range b.Rings() {
				scale, scaleBegin, ok := ring.Animation(ScaleAnimationKey)
				if !ok {
					return false
				}
				opacity, opacityBegin, ok := ring.Animation(OpacityAnimationKey)
				if !ok {
					return false
				}
				if scaleBegin-clock.Now() != time.Duration(i)*interval || scaleBegin != opacityBegin {
					return false
				}
				if scale.Duration != opacity.Duration || scale.RepeatCount != opacity.RepeatCount {
					return false
				}
			}
			return true
		},
		gen.IntRange(0, 16),
		gen.IntRange(0, 5000),
		gen.IntRange(0, 60000),
	))

	// Property: stopping leaves no animation on any ring, however often it is called
	properties.Property("stop clears every animation", prop.ForAll(
		func(count int, stops int) bool {
			b, _ := newPropertyButton(WithPulseCount(count))
			b.StartPulsing()
			for range stops {
				b.StopPulsing()
				for _, ring := range b.Rings() {
					if len(ring.AnimationKeys()) != 0 {
						return false
					}
				}
			}
			return !b.IsPulsing()
		},
		gen.IntRange(0, 16),
		gen.IntRange(1, 4),
	))

	properties.TestingRun(t)
}
