package scene

import (
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScene() (*Scene, *ManualClock) {
	clock := NewManualClock()
	return New(clock, Rect{W: 200, H: 200}), clock
}

func TestSampleBeforeBegin(t *testing.T) {
	a := attached{Animation: Animation{From: 1, To: 0, Duration: time.Second}, Begin: time.Second}

	_, ok := a.Sample(500 * time.Millisecond)
	assert.False(t, ok)

	v, ok := a.Sample(time.Second)
	require.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestSampleCycles(t *testing.T) {
	a := attached{Animation: Animation{From: 0, To: 10, Duration: time.Second, RepeatCount: 3}}

	tests := []struct {
		at   time.Duration
		want float64
	}{
		{0, 0},
		{250 * time.Millisecond, 2.5},
		{1250 * time.Millisecond, 2.5},
		{2750 * time.Millisecond, 7.5},
	}
	for _, tt := range tests {
		v, ok := a.Sample(tt.at)
		require.True(t, ok, "at %v", tt.at)
		assert.InDelta(t, tt.want, v, 1e-9, "at %v", tt.at)
	}

	_, ok := a.Sample(3 * time.Second)
	assert.False(t, ok, "finished animation without fill-forwards contributes nothing")
}

func TestSampleFillForwards(t *testing.T) {
	a := attached{Animation: Animation{From: 1, To: 2.24, Duration: time.Second, RepeatCount: 2, FillForwards: true}}
	v, ok := a.Sample(10 * time.Second)
	require.True(t, ok)
	assert.Equal(t, 2.24, v)

	a.RemovedOnCompletion = true
	_, ok = a.Sample(10 * time.Second)
	assert.False(t, ok)
}

func TestSampleFractionalRepeatHoldsPartialValue(t *testing.T) {
	a := attached{Animation: Animation{From: 0, To: 1, Duration: time.Second, RepeatCount: 1.5, FillForwards: true}}
	v, ok := a.Sample(5 * time.Second)
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
}

func TestSampleZeroRepeatPlaysOnce(t *testing.T) {
	a := attached{Animation: Animation{From: 0, To: 1, Duration: time.Second}}
	v, ok := a.Sample(500 * time.Millisecond)
	require.True(t, ok)
	assert.InDelta(t, 0.5, v, 1e-9)
	assert.True(t, a.Finished(time.Second))
}

func TestSampleForever(t *testing.T) {
	a := attached{Animation: Animation{From: 0, To: 1, Duration: time.Second, RepeatCount: RepeatForever}}
	v, ok := a.Sample(1000*time.Hour + 250*time.Millisecond)
	require.True(t, ok)
	assert.InDelta(t, 0.25, v, 1e-6)
	assert.False(t, a.Finished(10000*time.Hour))
}

func TestSampleNonPositiveDuration(t *testing.T) {
	a := attached{Animation: Animation{From: 1, To: 3, Duration: -time.Second, FillForwards: true}}
	v, ok := a.Sample(0)
	require.True(t, ok)
	assert.Equal(t, 3.0, v)

	a.FillForwards = false
	_, ok = a.Sample(0)
	assert.False(t, ok)
}

func TestTimingCurves(t *testing.T) {
	for _, timing := range []Timing{TimingDefault, TimingEaseIn, TimingEaseOut, TimingEaseInOut} {
		assert.Equal(t, 0.0, timing.apply(0))
		assert.Equal(t, 1.0, timing.apply(1))
	}
	assert.Equal(t, 0.5, TimingEaseInOut.apply(0.5))
	assert.Less(t, TimingEaseIn.apply(0.5), 0.5)
	assert.Greater(t, TimingEaseOut.apply(0.5), 0.5)
}

func TestAddAnimationStampsBeginAndReplaces(t *testing.T) {
	sc, clock := newTestScene()
	l := sc.NewLayer("ring")
	clock.Set(2 * time.Second)

	l.AddAnimation("pulse", Animation{KeyPath: KeyPathScale, Delay: 300 * time.Millisecond})
	_, begin, ok := l.Animation("pulse")
	require.True(t, ok)
	assert.Equal(t, 2300*time.Millisecond, begin)

	l.AddAnimation("fade", Animation{KeyPath: KeyPathOpacity})
	l.AddAnimation("pulse", Animation{KeyPath: KeyPathScale, To: 4})
	assert.Equal(t, []string{"fade", "pulse"}, l.AnimationKeys())
	a, _, _ := l.Animation("pulse")
	assert.Equal(t, 4.0, a.To)

	l.RemoveAnimation("fade")
	assert.Equal(t, []string{"pulse"}, l.AnimationKeys())
	l.RemoveAllAnimations()
	assert.Empty(t, l.AnimationKeys())
}

func TestPruneRemovesOnlyCompletedRemovable(t *testing.T) {
	sc, clock := newTestScene()
	parent := sc.NewLayer("parent")
	child := sc.NewLayer("child")
	sc.Root().AddSublayer(parent)
	parent.AddSublayer(child)

	child.AddAnimation("flash", Animation{KeyPath: KeyPathOpacity, Duration: time.Second, RemovedOnCompletion: true})
	child.AddAnimation("hold", Animation{KeyPath: KeyPathScale, Duration: time.Second, FillForwards: true})
	parent.AddAnimation("spin", Animation{KeyPath: KeyPathScale, Duration: time.Second, RepeatCount: RepeatForever, RemovedOnCompletion: true})

	clock.Set(500 * time.Millisecond)
	assert.Zero(t, sc.Prune(clock.Now()))
	assert.Equal(t, []string{"flash", "hold"}, child.AnimationKeys())

	clock.Set(time.Second)
	assert.Equal(t, 1, sc.Prune(clock.Now()))
	assert.Equal(t, []string{"hold"}, child.AnimationKeys())
	assert.Equal(t, []string{"spin"}, parent.AnimationKeys(), "endless animations never finish")
}

func TestPruneIgnoresDetachedLayers(t *testing.T) {
	sc, clock := newTestScene()
	l := sc.NewLayer("loose")
	l.AddAnimation("flash", Animation{Duration: time.Millisecond, RemovedOnCompletion: true})

	clock.Set(time.Second)
	assert.Zero(t, sc.Prune(clock.Now()))
	assert.Len(t, l.AnimationKeys(), 1)
}

func TestSublayerOrdering(t *testing.T) {
	sc, _ := newTestScene()
	parent := sc.NewLayer("parent")
	bg := sc.NewLayer("bg")
	top := sc.NewLayer("top")
	parent.AddSublayer(bg)
	parent.AddSublayer(top)

	a, b := sc.NewLayer("a"), sc.NewLayer("b")
	parent.InsertSublayerBelow(a, bg)
	parent.InsertSublayerBelow(b, bg)
	assert.Equal(t, []*Layer{a, b, bg, top}, parent.Sublayers())

	a.RemoveFromSuperlayer()
	assert.Nil(t, a.Parent())
	assert.Equal(t, []*Layer{b, bg, top}, parent.Sublayers())

	stray := sc.NewLayer("stray")
	parent.InsertSublayerBelow(stray, a)
	assert.Same(t, stray, parent.Sublayers()[3], "unknown sibling places child on top")

	other := sc.NewLayer("other")
	other.AddSublayer(b)
	assert.NotContains(t, parent.Sublayers(), b)
	assert.Same(t, other, b.Parent())
}

func TestPresentationScalesAroundCenter(t *testing.T) {
	sc, clock := newTestScene()
	button := sc.NewLayer("button")
	button.SetFrame(Rect{X: 50, Y: 50, W: 40, H: 40})
	sc.Root().AddSublayer(button)
	ring := sc.NewLayer("ring")
	ring.SetFrame(Rect{W: 40, H: 40})
	ring.SetCornerRadius(20)
	ring.SetOpacity(0)
	button.AddSublayer(ring)

	ring.AddAnimation("s", Animation{KeyPath: KeyPathScale, From: 1, To: 3, Duration: time.Second})
	ring.AddAnimation("o", Animation{KeyPath: KeyPathOpacity, From: 1, To: 0, Duration: time.Second})

	clock.Set(500 * time.Millisecond)
	p := ring.Presentation(clock.Now())
	assert.InDelta(t, 2.0, p.Scale, 1e-9)
	assert.InDelta(t, 0.5, p.Opacity, 1e-9)
	assert.InDelta(t, 40.0, p.CornerRadius, 1e-9)
	assert.InDelta(t, 30.0, p.Frame.X, 1e-9)
	assert.InDelta(t, 80.0, p.Frame.W, 1e-9)
}

func TestWalkPaintOrderAndOpacity(t *testing.T) {
	sc, _ := newTestScene()
	group := sc.NewLayer("group")
	group.SetOpacity(0.5)
	sc.Root().AddSublayer(group)
	first, second := sc.NewLayer("first"), sc.NewLayer("second")
	group.AddSublayer(first)
	group.AddSublayer(second)

	var names []string
	var opacities []float64
	sc.Walk(0, func(l *Layer, p Presentation) {
		names = append(names, l.Name)
		opacities = append(opacities, p.Opacity)
	})
	assert.Equal(t, []string{"root", "group", "first", "second"}, names)
	assert.Equal(t, []float64{1, 0.5, 0.5, 0.5}, opacities)
}

func TestFade(t *testing.T) {
	r, g, b, a := Fade(color.RGBA{R: 255, G: 128, A: 255}, 0.5).RGBA()
	assert.InDelta(t, 0x7fff, r, 1)
	assert.InDelta(t, 0x4040, g, 1)
	assert.Equal(t, uint32(0), b)
	assert.InDelta(t, 0x7fff, a, 1)

	_, _, _, a = Fade(color.White, -1).RGBA()
	assert.Equal(t, uint32(0), a)
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}
	cx, cy := r.Center()
	assert.Equal(t, 20.0, cx)
	assert.Equal(t, 15.0, cy)
	assert.True(t, r.Contains(30, 20))
	assert.False(t, r.Contains(31, 20))
	assert.Equal(t, Rect{X: 0, Y: 5, W: 40, H: 20}, r.ScaledAbout(2))
}
