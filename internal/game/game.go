package game

import (
	"context"
	"errors"
	"image"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/pulse-button/internal/assets"
	"github.com/iburimskiy/pulse-button/internal/audio"
	"github.com/iburimskiy/pulse-button/internal/config"
	"github.com/iburimskiy/pulse-button/internal/pulse"
	"github.com/iburimskiy/pulse-button/internal/scene"
)

const (
	countStep    = 1
	intervalStep = 100 * time.Millisecond
)

var (
	placeholderNormalColor   = color.RGBA{R: 240, G: 240, B: 245, A: 255}
	placeholderSelectedColor = color.RGBA{R: 90, G: 200, B: 120, A: 255}
)

// Game hosts one pulse button in an ebiten window. It owns the scene
// clock, turns ebiten layout passes into button layouts, and applies
// config reloads on the UI goroutine.
type Game struct {
	cfg     *config.Config
	clock   *scene.ManualClock
	scene   *scene.Scene
	button  *pulse.Button
	updates <-chan config.Result
	images  *config.ImageCache

	// audio
	click  *audio.Click
	player audio.Player

	// ebiten textures keyed by source image and side
	textures map[textureKey]*ebiten.Image

	// stand-in images when the config names none
	placeholderSide     int
	placeholderNormal   image.Image
	placeholderSelected image.Image

	// input edge detection
	prevKey map[ebiten.Key]bool

	// button state
	buttonHovered bool
	buttonPressed bool

	width, height int
	laidOut       bool
	time          float64
	lastErr       error
}

type textureKey struct {
	img  image.Image
	side int
}

// New builds the scene and button described by cfg. updates may be nil.
func New(cfg *config.Config, updates <-chan config.Result) (*Game, error) {
	images := config.NewImageCache()
	pc, err := cfg.PulseConfigWith(images)
	if err != nil {
		return nil, err
	}

	clock := scene.NewManualClock()
	g := &Game{
		cfg:      cfg,
		clock:    clock,
		scene:    scene.New(clock, scene.Rect{W: float64(cfg.Window.Width), H: float64(cfg.Window.Height)}),
		updates:  updates,
		images:   images,
		textures: map[textureKey]*ebiten.Image{},
		prevKey:  map[ebiten.Key]bool{},
	}
	g.applyPlaceholders(&pc, cfg.Button.Diameter)
	g.button = pulse.New(g.scene, cfg.ButtonFrame(cfg.Window.Width, cfg.Window.Height), pulse.WithConfig(pc))
	g.button.OnTap(g.toggle)

	if err := g.loadClick(cfg); err != nil {
		g.fail(err)
	}
	return g, nil
}

// Button exposes the hosted control.
func (g *Game) Button() *pulse.Button { return g.button }

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	g.applyUpdates()

	// Button interactions
	mouseX, mouseY := ebiten.CursorPosition()
	g.buttonHovered = g.button.HitTest(float64(mouseX), float64(mouseY))
	if g.buttonHovered && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.buttonPressed = true
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if g.buttonPressed && g.buttonHovered {
			g.button.Tap()
		}
		g.buttonPressed = false
	}

	for _, a := range keyActions {
		if justPressed(a.key) {
			if err := a.run(g); err != nil {
				if errors.Is(err, ebiten.Termination) {
					return err
				}
				g.fail(err)
			}
		}
	}

	dt := time.Second / time.Duration(ebiten.TPS())
	g.clock.Advance(dt)
	g.scene.Prune(g.clock.Now())
	g.time += dt.Seconds()
	return nil
}

// Layout is the host layout pass. The first pass lays the button out and
// starts it; later window resizes only recenter it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.scene.Root().SetFrame(scene.Rect{W: float64(outsideWidth), H: float64(outsideHeight)})
		g.button.SetFrame(g.cfg.ButtonFrame(outsideWidth, outsideHeight))
		pulse.Logger().Debug("layout pass", "width", outsideWidth, "height", outsideHeight)
	}
	if !g.laidOut {
		g.laidOut = true
		g.button.Layout()
	}
	return outsideWidth, outsideHeight
}

// toggle is the tap handler: a pulsing button settles on the selected
// image, a stopped one starts pulsing again.
func (g *Game) toggle() {
	if g.button.IsPulsing() {
		g.button.StopPulsing()
	} else {
		g.button.StartPulsing()
	}
	if err := g.player.Play(g.click); err != nil {
		g.fail(err)
	}
}

// applyUpdates drains pending config reloads without blocking.
func (g *Game) applyUpdates() {
	for {
		select {
		case res, ok := <-g.updates:
			if !ok {
				g.updates = nil
				return
			}
			if res.Err != nil {
				g.fail(res.Err)
				continue
			}
			if err := g.reconfigure(res.Config); err != nil {
				g.fail(err)
			}
		default:
			return
		}
	}
}

func (g *Game) reconfigure(cfg *config.Config) error {
	pc, err := cfg.PulseConfigWith(g.images)
	if err != nil {
		return err
	}
	g.applyPlaceholders(&pc, cfg.Button.Diameter)

	resized := cfg.Button.Diameter != g.cfg.Button.Diameter
	soundChanged := cfg.Button.TapSound != g.cfg.Button.TapSound
	g.cfg = cfg
	g.button.Update(pc)
	if resized {
		g.button.SetFrame(cfg.ButtonFrame(g.width, g.height))
	}
	if soundChanged {
		if err := g.loadClick(cfg); err != nil {
			return err
		}
	}
	g.lastErr = nil
	pulse.Logger().Info("configuration reloaded", "pulse_count", pc.PulseCount)
	return nil
}

func (g *Game) loadClick(cfg *config.Config) error {
	g.click = nil
	if cfg.Button.TapSound == "" {
		return nil
	}
	c, err := audio.Load(cfg.Resolve(cfg.Button.TapSound))
	if err != nil {
		return err
	}
	g.click = c
	return nil
}

func (g *Game) fail(err error) {
	g.lastErr = err
	pulse.Logger().Warn("pulse-button", "err", err)
}

// Close releases audio.
func (g *Game) Close() {
	g.player.Close()
}

// applyPlaceholders gives the demo something to swap between when no
// image files are configured. The discs are reused across reloads so an
// unchanged config does not count as an image change.
func (g *Game) applyPlaceholders(pc *pulse.Config, diameter float64) {
	side := int(diameter) / 3
	if side != g.placeholderSide {
		g.placeholderSide = side
		g.placeholderNormal = assets.Disc(side, placeholderNormalColor)
		g.placeholderSelected = assets.Disc(side, placeholderSelectedColor)
	}
	if pc.NormalImage == nil {
		pc.NormalImage = g.placeholderNormal
	}
	if pc.SelectedImage == nil {
		pc.SelectedImage = g.placeholderSelected
	}
}

// Run opens the window and blocks until it is closed or ctx is done.
func Run(ctx context.Context, cfg *config.Config, updates <-chan config.Result) error {
	g, err := New(cfg, updates)
	if err != nil {
		return err
	}
	defer g.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	err = ebiten.RunGameWithOptions(&cancellable{Game: g, ctx: ctx}, nil)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	pulse.Logger().Debug("window closed")
	return nil
}

// cancellable ends the game loop when ctx is done.
type cancellable struct {
	*Game
	ctx context.Context
}

func (c *cancellable) Update() error {
	if c.ctx.Err() != nil {
		return ebiten.Termination
	}
	return c.Game.Update()
}
