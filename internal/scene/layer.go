package scene

import (
	"image"
	"image/color"
	"slices"
	"time"
)

// Layer is a retained visual node. Frames are expressed in the parent's
// coordinate space; sublayers paint in slice order, later ones on top.
type Layer struct {
	Name string

	scene     *Scene
	parent    *Layer
	sublayers []*Layer

	frame        Rect
	cornerRadius float64
	fill         color.Color
	opacity      float64
	contents     image.Image

	anims map[string]attached
	order []string
}

func (l *Layer) Frame() Rect               { return l.frame }
func (l *Layer) SetFrame(r Rect)           { l.frame = r }
func (l *Layer) CornerRadius() float64     { return l.cornerRadius }
func (l *Layer) SetCornerRadius(r float64) { l.cornerRadius = r }

// Fill returns the fill color, nil when the layer has none.
func (l *Layer) Fill() color.Color     { return l.fill }
func (l *Layer) SetFill(c color.Color) { l.fill = c }

// Opacity is the model value, ignoring animations.
func (l *Layer) Opacity() float64     { return l.opacity }
func (l *Layer) SetOpacity(o float64) { l.opacity = o }

func (l *Layer) Contents() image.Image     { return l.contents }
func (l *Layer) SetContents(i image.Image) { l.contents = i }

func (l *Layer) Parent() *Layer { return l.parent }

// Sublayers returns the children in paint order.
func (l *Layer) Sublayers() []*Layer {
	return slices.Clone(l.sublayers)
}

// AddSublayer detaches child from any previous parent and places it on top.
func (l *Layer) AddSublayer(child *Layer) {
	child.RemoveFromSuperlayer()
	child.parent = l
	l.sublayers = append(l.sublayers, child)
}

// InsertSublayerBelow places child directly below sibling. If sibling is
// not a child of l, child goes on top.
func (l *Layer) InsertSublayerBelow(child, sibling *Layer) {
	child.RemoveFromSuperlayer()
	child.parent = l
	i := slices.Index(l.sublayers, sibling)
	if i < 0 {
		l.sublayers = append(l.sublayers, child)
		return
	}
	l.sublayers = slices.Insert(l.sublayers, i, child)
}

// RemoveFromSuperlayer detaches l from its parent. It is a no-op for
// detached layers.
func (l *Layer) RemoveFromSuperlayer() {
	p := l.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.sublayers, l); i >= 0 {
		p.sublayers = slices.Delete(p.sublayers, i, i+1)
	}
	l.parent = nil
}

// AddAnimation attaches a under key, replacing any animation already
// stored there. The begin time is the scene clock plus a.Delay.
func (l *Layer) AddAnimation(key string, a Animation) {
	if l.anims == nil {
		l.anims = make(map[string]attached)
	}
	if _, ok := l.anims[key]; ok {
		l.order = slices.DeleteFunc(l.order, func(k string) bool { return k == key })
	}
	l.anims[key] = attached{Animation: a, Begin: l.scene.clock.Now() + a.Delay}
	l.order = append(l.order, key)
}

// Animation returns the animation stored under key and its absolute
// begin time.
func (l *Layer) Animation(key string) (Animation, time.Duration, bool) {
	a, ok := l.anims[key]
	return a.Animation, a.Begin, ok
}

// AnimationKeys lists attached animations in attach order.
func (l *Layer) AnimationKeys() []string {
	return slices.Clone(l.order)
}

func (l *Layer) RemoveAnimation(key string) {
	delete(l.anims, key)
	l.order = slices.DeleteFunc(l.order, func(k string) bool { return k == key })
}

// pruneAnimations drops animations that have played every cycle and are
// marked RemovedOnCompletion. It returns how many were removed.
func (l *Layer) pruneAnimations(now time.Duration) int {
	var done []string
	for _, key := range l.order {
		a := l.anims[key]
		if a.RemovedOnCompletion && a.Finished(now) {
			done = append(done, key)
		}
	}
	for _, key := range done {
		l.RemoveAnimation(key)
	}
	return len(done)
}

func (l *Layer) RemoveAllAnimations() {
	clear(l.anims)
	l.order = l.order[:0]
}

// Presentation is the rendered state of a layer at a point in time, in
// scene coordinates.
type Presentation struct {
	Frame        Rect
	CornerRadius float64
	Scale        float64
	Opacity      float64
}

// presentation applies attached animations to the model values. Later
// attached animations win when two drive the same key path.
func (l *Layer) presentation(now time.Duration, originX, originY, parentOpacity float64) Presentation {
	scale, opacity := 1.0, l.opacity
	for _, key := range l.order {
		a := l.anims[key]
		v, ok := a.Sample(now)
		if !ok {
			continue
		}
		switch a.KeyPath {
		case KeyPathScale:
			scale = v
		case KeyPathOpacity:
			opacity = v
		}
	}
	return Presentation{
		Frame:        l.frame.Offset(originX, originY).ScaledAbout(scale),
		CornerRadius: l.cornerRadius * scale,
		Scale:        scale,
		Opacity:      clamp01(opacity) * parentOpacity,
	}
}

// Presentation returns the rendered state of l at now.
func (l *Layer) Presentation(now time.Duration) Presentation {
	ox, oy, po := l.origin(now)
	return l.presentation(now, ox, oy, po)
}

// origin is the scene position of the parent's frame and the opacity
// inherited from ancestors.
func (l *Layer) origin(now time.Duration) (float64, float64, float64) {
	if l.parent == nil {
		return 0, 0, 1
	}
	ox, oy, po := l.parent.origin(now)
	pp := l.parent.presentation(now, ox, oy, po)
	f := l.parent.frame.Offset(ox, oy)
	return f.X, f.Y, pp.Opacity
}
