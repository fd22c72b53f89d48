// Package snapshot paints a scene at a chosen instant without a window,
// using the gg software rasterizer.
package snapshot

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"
	"math"
	"os"
	"time"

	"github.com/gogpu/gg"

	"github.com/iburimskiy/pulse-button/internal/assets"
	"github.com/iburimskiy/pulse-button/internal/scene"
)

// Options control a snapshot.
type Options struct {
	Width, Height int
	At            time.Duration
	// Background fills the canvas first; nil leaves it transparent.
	Background color.Color
}

// Render paints sc as it appears at opts.At and returns a copy of the
// pixels.
func Render(sc *scene.Scene, opts Options) (image.Image, error) {
	var out *image.RGBA
	err := paint(sc, opts, func(dc *gg.Context) error {
		src := dc.Image()
		out = image.NewRGBA(src.Bounds())
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return nil
	})
	return out, err
}

// WritePNG paints sc and encodes it as PNG to w.
func WritePNG(w io.Writer, sc *scene.Scene, opts Options) error {
	return paint(sc, opts, func(dc *gg.Context) error {
		return dc.EncodePNG(w)
	})
}

// SavePNG paints sc into the PNG file at path.
func SavePNG(path string, sc *scene.Scene, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	if err := WritePNG(f, sc, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func paint(sc *scene.Scene, opts Options, done func(*gg.Context) error) error {
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("invalid snapshot size %dx%d", opts.Width, opts.Height)
	}
	dc := gg.NewContext(opts.Width, opts.Height)
	defer dc.Close()

	if opts.Background != nil {
		dc.ClearWithColor(gg.FromColor(opts.Background))
	}

	var err error
	sc.Walk(opts.At, func(l *scene.Layer, p scene.Presentation) {
		if err != nil || p.Opacity <= 0 {
			return
		}
		if fill := l.Fill(); fill != nil && p.Frame.W > 0 && p.Frame.H > 0 {
			err = fillLayer(dc, p, fill)
		}
		if err == nil && l.Contents() != nil {
			drawContents(dc, l.Contents(), p)
		}
	})
	if err != nil {
		return fmt.Errorf("paint scene: %w", err)
	}
	return done(dc)
}

// fillLayer paints a layer's fill. gg takes straight alpha, so the color
// is un-premultiplied before the presentation opacity is applied.
func fillLayer(dc *gg.Context, p scene.Presentation, c color.Color) error {
	f := p.Frame
	r := math.Min(p.CornerRadius, math.Min(f.W, f.H)/2)
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	dc.SetRGBA(float64(n.R)/0xffff, float64(n.G)/0xffff, float64(n.B)/0xffff, float64(n.A)/0xffff*p.Opacity)
	switch {
	case f.W == f.H && r >= f.W/2:
		cx, cy := f.Center()
		dc.DrawCircle(cx, cy, r)
	case r > 0:
		dc.DrawRoundedRectangle(f.X, f.Y, f.W, f.H, r)
	default:
		dc.DrawRectangle(f.X, f.Y, f.W, f.H)
	}
	return dc.Fill()
}

func drawContents(dc *gg.Context, img image.Image, p scene.Presentation) {
	side := int(math.Round(math.Min(p.Frame.W, p.Frame.H)))
	fitted := assets.Fit(img, side)
	if fitted == nil {
		return
	}
	dc.DrawImageEx(gg.ImageBufFromImage(fitted), gg.DrawImageOptions{
		X:         p.Frame.X + (p.Frame.W-float64(side))/2,
		Y:         p.Frame.Y + (p.Frame.H-float64(side))/2,
		DstWidth:  float64(side),
		DstHeight: float64(side),
		Opacity:   p.Opacity,
	})
}
