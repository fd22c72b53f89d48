package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestLoadPNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, solid(8, 4, color.White)))
	path := filepath.Join(t.TempDir(), "normal.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	img, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, image.ErrFormat)
}

func TestFitPreservesAspect(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	fitted := Fit(solid(40, 20, red), 20)
	require.NotNil(t, fitted)
	assert.Equal(t, image.Rect(0, 0, 20, 20), fitted.Bounds())

	_, _, _, top := fitted.At(10, 1).RGBA()
	assert.Equal(t, uint32(0), top, "letterbox rows stay transparent")
	r, _, _, a := fitted.At(10, 10).RGBA()
	assert.InDelta(t, 0xffff, a, 0x101)
	assert.InDelta(t, 0xffff, r, 0x101)
}

func TestFitEdgeCases(t *testing.T) {
	src := solid(16, 16, color.White)
	assert.Same(t, src, Fit(src, 16).(*image.RGBA))
	assert.Nil(t, Fit(src, 0))
	assert.Nil(t, Fit(nil, 10))
}

func TestDisc(t *testing.T) {
	img := Disc(10, color.White)
	_, _, _, center := img.At(5, 5).RGBA()
	_, _, _, corner := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), center)
	assert.Equal(t, uint32(0), corner)
	assert.Nil(t, Disc(0, color.White))
}
