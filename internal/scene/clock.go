package scene

import "time"

// Clock reports the current media time of a scene.
type Clock interface {
	Now() time.Duration
}

// ManualClock is a Clock that only moves when told to. Hosts advance it
// once per tick; tests and snapshots set it directly.
type ManualClock struct {
	now time.Duration
}

// NewManualClock returns a clock starting at zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) Now() time.Duration { return c.now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now += d }

// Set jumps the clock to t.
func (c *ManualClock) Set(t time.Duration) { c.now = t }
