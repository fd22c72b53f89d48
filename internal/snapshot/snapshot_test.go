package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iburimskiy/pulse-button/internal/pulse"
	"github.com/iburimskiy/pulse-button/internal/scene"
)

func pulsingScene(t *testing.T) (*scene.Scene, *pulse.Button) {
	t.Helper()
	sc := scene.New(scene.NewManualClock(), scene.Rect{W: 200, H: 200})
	b := pulse.New(sc, scene.Rect{X: 80, Y: 80, W: 40, H: 40},
		pulse.WithPulseCount(1),
		pulse.WithPulseDuration(time.Second),
		pulse.WithPulseScaleFactor(3),
		pulse.WithPulseColor(color.RGBA{R: 255, A: 255}))
	b.StartPulsing()
	return sc, b
}

func alphaAt(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a
}

func TestRenderRingAtStart(t *testing.T) {
	sc, _ := pulsingScene(t)

	img, err := Render(sc, Options{Width: 200, Height: 200})
	require.NoError(t, err)

	r, _, _, a := img.At(100, 100).RGBA()
	assert.Greater(t, a, uint32(0xf000))
	assert.Greater(t, r, uint32(0xf000))
	assert.Equal(t, uint32(0), alphaAt(img, 5, 5))
	assert.Equal(t, uint32(0), alphaAt(img, 100, 70), "ring has not expanded yet")
}

func TestRenderRingExpandsAndFades(t *testing.T) {
	sc, _ := pulsingScene(t)

	img, err := Render(sc, Options{Width: 200, Height: 200, At: 500 * time.Millisecond})
	require.NoError(t, err)

	// scale 2 -> radius 40, opacity 0.5
	edge := alphaAt(img, 100, 70)
	assert.Greater(t, edge, uint32(0x6000))
	assert.Less(t, edge, uint32(0xa000))
}

func TestRenderStoppedShowsNothing(t *testing.T) {
	sc, b := pulsingScene(t)
	b.StopPulsing()

	img, err := Render(sc, Options{Width: 200, Height: 200})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), alphaAt(img, 100, 100), "rings rest at opacity zero")
}

func TestRenderBackgroundAndImage(t *testing.T) {
	sc, b := pulsingScene(t)
	b.StopPulsing()
	b.SetBackgroundColor(color.RGBA{G: 255, A: 255})

	img, err := Render(sc, Options{Width: 200, Height: 200, Background: color.Black})
	require.NoError(t, err)

	_, g, _, _ := img.At(100, 100).RGBA()
	assert.Greater(t, g, uint32(0xf000))
	assert.Equal(t, uint32(0xffff), alphaAt(img, 2, 2))
}

func TestWritePNG(t *testing.T) {
	sc, _ := pulsingScene(t)
	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, sc, Options{Width: 64, Height: 48}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
}

func TestInvalidSize(t *testing.T) {
	sc, _ := pulsingScene(t)
	_, err := Render(sc, Options{})
	assert.Error(t, err)
}
