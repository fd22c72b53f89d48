// Package scene is a small retained layer tree. Layers carry geometry,
// fill, opacity and image contents plus keyed time-based animations; the
// tree samples those animations against a Clock so painters can draw a
// frame for any point in time. Nothing here paints pixels.
package scene

import "time"

// Scene owns a root layer and the clock its animations are timed by.
type Scene struct {
	clock Clock
	root  *Layer
}

// New creates a scene whose root covers bounds.
func New(clock Clock, bounds Rect) *Scene {
	s := &Scene{clock: clock}
	s.root = s.NewLayer("root")
	s.root.SetFrame(bounds)
	return s
}

func (s *Scene) Root() *Layer       { return s.root }
func (s *Scene) Clock() Clock       { return s.clock }
func (s *Scene) Now() time.Duration { return s.clock.Now() }

// NewLayer returns a detached, fully opaque layer bound to s.
func (s *Scene) NewLayer(name string) *Layer {
	return &Layer{Name: name, scene: s, opacity: 1}
}

// Walk visits every attached layer in paint order (back to front) with
// its presentation at now.
func (s *Scene) Walk(now time.Duration, fn func(l *Layer, p Presentation)) {
	walk(s.root, now, 0, 0, 1, fn)
}

// Prune removes completed animations marked RemovedOnCompletion from
// every attached layer and reports how many went. Animations that fill
// forwards without removal stay attached.
func (s *Scene) Prune(now time.Duration) int {
	return prune(s.root, now)
}

func prune(l *Layer, now time.Duration) int {
	n := l.pruneAnimations(now)
	for _, child := range l.sublayers {
		n += prune(child, now)
	}
	return n
}

func walk(l *Layer, now time.Duration, ox, oy, po float64, fn func(*Layer, Presentation)) {
	p := l.presentation(now, ox, oy, po)
	fn(l, p)
	origin := l.frame.Offset(ox, oy)
	for _, child := range l.sublayers {
		walk(child, now, origin.X, origin.Y, p.Opacity, fn)
	}
}
