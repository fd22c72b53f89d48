package scene

import (
	"math"
	"time"
)

// KeyPath names the layer property an animation drives.
type KeyPath int

const (
	// KeyPathScale drives the uniform 2D scale around the layer center.
	KeyPathScale KeyPath = iota
	// KeyPathOpacity drives the layer opacity.
	KeyPathOpacity
)

func (k KeyPath) String() string {
	switch k {
	case KeyPathScale:
		return "transform.scale"
	case KeyPathOpacity:
		return "opacity"
	default:
		return "unknown"
	}
}

// Timing is the easing curve applied to animation progress.
type Timing int

const (
	// TimingDefault is linear pacing.
	TimingDefault Timing = iota
	TimingEaseIn
	TimingEaseOut
	TimingEaseInOut
)

func (t Timing) apply(p float64) float64 {
	switch t {
	case TimingEaseIn:
		return p * p
	case TimingEaseOut:
		return 1 - (1-p)*(1-p)
	case TimingEaseInOut:
		return p * p * (3 - 2*p)
	default:
		return p
	}
}

// RepeatForever repeats an animation for the lifetime of the layer.
var RepeatForever = math.Inf(1)

// Animation describes a time-based interpolation of one layer property.
// Values are handed to Layer.AddAnimation and are not retained by callers.
type Animation struct {
	KeyPath  KeyPath
	From, To float64
	Duration time.Duration
	// Delay is relative to the moment the animation is attached.
	Delay time.Duration
	// RepeatCount of zero or less plays a single cycle.
	RepeatCount float64
	Timing      Timing
	// FillForwards keeps the final value rendered after the last cycle.
	FillForwards        bool
	RemovedOnCompletion bool
}

// attached is an Animation stamped with its absolute begin time.
type attached struct {
	Animation
	Begin time.Duration
}

// Sample evaluates the animation at now. The second result is false
// when the animation does not contribute a value (not begun yet, or
// finished without fill-forwards).
func (a attached) Sample(now time.Duration) (float64, bool) {
	local := now - a.Begin
	if local < 0 {
		return 0, false
	}

	repeat := a.RepeatCount
	if repeat <= 0 || math.IsNaN(repeat) {
		repeat = 1
	}

	var progress float64
	if a.Duration <= 0 {
		if !a.holdsEnd() {
			return 0, false
		}
		progress = 1
	} else {
		cycles := float64(local) / float64(a.Duration)
		if cycles >= repeat {
			if !a.holdsEnd() {
				return 0, false
			}
			progress = repeat - math.Floor(repeat)
			if progress == 0 {
				progress = 1
			}
		} else {
			progress = cycles - math.Floor(cycles)
		}
	}

	return a.From + (a.To-a.From)*a.Timing.apply(progress), true
}

func (a attached) holdsEnd() bool {
	return a.FillForwards && !a.RemovedOnCompletion
}

// Finished reports whether every cycle has played by now.
func (a attached) Finished(now time.Duration) bool {
	if math.IsInf(a.RepeatCount, 1) && a.Duration > 0 {
		return false
	}
	repeat := a.RepeatCount
	if repeat <= 0 || math.IsNaN(repeat) {
		repeat = 1
	}
	end := a.Begin + time.Duration(float64(a.Duration)*repeat)
	return now >= end
}
