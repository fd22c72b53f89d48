package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pulse-button/internal/assets"
	"github.com/iburimskiy/pulse-button/internal/scene"
)

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawBackground(screen)

	g.scene.Walk(g.clock.Now(), func(l *scene.Layer, p scene.Presentation) {
		if p.Opacity <= 0 {
			return
		}
		if fill := l.Fill(); fill != nil {
			drawRounded(screen, p.Frame, p.CornerRadius, scene.Fade(fill, p.Opacity))
		}
		if img := l.Contents(); img != nil {
			g.drawContents(screen, img, p)
		}
	})

	if g.buttonHovered {
		f := g.button.Frame()
		cx, cy := f.Center()
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(f.H/2)+2, 1, color.RGBA{R: 255, G: 255, B: 255, A: 90}, true)
	}

	g.drawStatus(screen)
}

// drawBackground paints a slowly shifting vertical gradient.
func (g *Game) drawBackground(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	for y := 0; y < h; y++ {
		clr := backgroundColor(g.time, float64(y)/float64(h))
		vector.StrokeLine(screen, 0, float32(y)+0.5, float32(w), float32(y)+0.5, 1, clr, false)
	}
}

// drawRounded fills a rounded rectangle. Squares with a half-side radius
// are drawn as circles, everything else as an arc path.
func drawRounded(screen *ebiten.Image, f scene.Rect, radius float64, clr color.Color) {
	if f.W <= 0 || f.H <= 0 {
		return
	}
	r := math.Min(radius, math.Min(f.W, f.H)/2)
	if r <= 0 {
		vector.DrawFilledRect(screen, float32(f.X), float32(f.Y), float32(f.W), float32(f.H), clr, true)
		return
	}
	cx, cy := f.Center()
	if f.W == f.H && r >= f.W/2 {
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), clr, true)
		return
	}

	var path vector.Path
	path.MoveTo(float32(f.X+r), float32(f.Y))
	path.LineTo(float32(f.X+f.W-r), float32(f.Y))
	path.Arc(float32(f.X+f.W-r), float32(f.Y+r), float32(r), -math.Pi/2, 0, vector.Clockwise)
	path.LineTo(float32(f.X+f.W), float32(f.Y+f.H-r))
	path.Arc(float32(f.X+f.W-r), float32(f.Y+f.H-r), float32(r), 0, math.Pi/2, vector.Clockwise)
	path.LineTo(float32(f.X+r), float32(f.Y+f.H))
	path.Arc(float32(f.X+r), float32(f.Y+f.H-r), float32(r), math.Pi/2, math.Pi, vector.Clockwise)
	path.LineTo(float32(f.X), float32(f.Y+r))
	path.Arc(float32(f.X+r), float32(f.Y+r), float32(r), math.Pi, 3*math.Pi/2, vector.Clockwise)
	path.Close()
	fillPath(screen, &path, clr)
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

func fillPath(screen *ebiten.Image, path *vector.Path, clr color.Color) {
	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := clr.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       ebiten.FillRuleNonZero,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	screen.DrawTriangles(vs, is, whitePixel.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image), op)
}

// drawContents draws an image layer, aspect-fitted into its frame.
func (g *Game) drawContents(screen *ebiten.Image, img image.Image, p scene.Presentation) {
	side := int(math.Round(math.Min(p.Frame.W, p.Frame.H)))
	if side <= 0 {
		return
	}
	tex := g.texture(img, side)
	if tex == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(p.Frame.X+(p.Frame.W-float64(side))/2, p.Frame.Y+(p.Frame.H-float64(side))/2)
	op.ColorScale.ScaleAlpha(float32(p.Opacity))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(tex, op)
}

// texture uploads img fitted to side once and reuses it.
func (g *Game) texture(img image.Image, side int) *ebiten.Image {
	key := textureKey{img: img, side: side}
	if tex, ok := g.textures[key]; ok {
		return tex
	}
	fitted := assets.Fit(img, side)
	if fitted == nil {
		return nil
	}
	tex := ebiten.NewImageFromImage(fitted)
	if len(g.textures) > 16 {
		for k, old := range g.textures {
			old.Deallocate()
			delete(g.textures, k)
		}
	}
	g.textures[key] = tex
	return tex
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	b := g.button
	state := "Stopped"
	if b.IsPulsing() {
		state = "Pulsing"
	}
	status := fmt.Sprintf("%s  rings: %d  duration: %s  interval: %s  scale: %.2f",
		state, b.PulseCount(), formatSeconds(b.PulseDuration()), formatSeconds(b.IntervalBetweenPulses()), b.PulseScaleFactor())
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
	ebitenutil.DebugPrintAt(screen, "Click: tap  "+helpLine(), 12, screen.Bounds().Dy()-24)
}
