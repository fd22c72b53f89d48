// Package assets decodes the button images and prepares them for the
// image layer.
package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// ErrEmptyImage is returned for images with no pixels.
var ErrEmptyImage = errors.New("image has no pixels")

// Load decodes the image file at path. PNG, JPEG, GIF, BMP and WebP are
// supported.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// Decode reads one image from r.
func Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}
	return img, nil
}

// Fit scales img to fit a side x side square, preserving aspect ratio and
// centering it on a transparent canvas. Images already that size are
// returned as-is. A non-positive side or nil image gives nil.
func Fit(img image.Image, side int) image.Image {
	if img == nil || side <= 0 {
		return nil
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == side && h == side {
		return img
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	scale := min(float64(side)/float64(w), float64(side)/float64(h))
	dw := max(1, int(float64(w)*scale+0.5))
	dh := max(1, int(float64(h)*scale+0.5))
	x0 := (side - dw) / 2
	y0 := (side - dh) / 2

	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	xdraw.CatmullRom.Scale(dst, image.Rect(x0, y0, x0+dw, y0+dh), img, b, xdraw.Over, nil)
	return dst
}

// Disc renders a filled circle of diameter side. The CLI uses it as a
// stand-in when no image files are configured.
func Disc(side int, c color.Color) image.Image {
	if side <= 0 {
		return nil
	}
	dst := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.Draw(dst, dst.Bounds(), image.Transparent, image.Point{}, draw.Src)

	r := float64(side) / 2
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			dx, dy := float64(x)+0.5-r, float64(y)+0.5-r
			if dx*dx+dy*dy <= r*r {
				dst.Set(x, y, c)
			}
		}
	}
	return dst
}
