package game

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/pulse-button/internal/assets"
)

type keyAction struct {
	key  ebiten.Key
	help string
	run  func(g *Game) error
}

var keyActions = []keyAction{
	{ebiten.KeySpace, "Space: tap", func(g *Game) error {
		g.button.Tap()
		return nil
	}},
	{ebiten.KeyUp, "Up/Down: rings", func(g *Game) error {
		g.button.SetPulseCount(g.button.PulseCount() + countStep)
		return nil
	}},
	{ebiten.KeyDown, "", func(g *Game) error {
		g.button.SetPulseCount(max(0, g.button.PulseCount()-countStep))
		return nil
	}},
	{ebiten.KeyBracketRight, "[/]: interval", func(g *Game) error {
		g.button.SetIntervalBetweenPulses(g.button.IntervalBetweenPulses() + intervalStep)
		return nil
	}},
	{ebiten.KeyBracketLeft, "", func(g *Game) error {
		g.button.SetIntervalBetweenPulses(max(0, g.button.IntervalBetweenPulses()-intervalStep))
		return nil
	}},
	{ebiten.KeyN, "N/S: images", func(g *Game) error {
		return g.pickImage("Normal Image", g.button.SetNormalImage)
	}},
	{ebiten.KeyS, "", func(g *Game) error {
		return g.pickImage("Selected Image", g.button.SetSelectedImage)
	}},
	{ebiten.KeyEscape, "Esc/Q: quit", func(*Game) error { return ebiten.Termination }},
	{ebiten.KeyQ, "", func(*Game) error { return ebiten.Termination }},
}

// helpLine joins the non-empty key hints.
func helpLine() string {
	var s string
	for _, a := range keyActions {
		if a.help == "" {
			continue
		}
		if s != "" {
			s += "  "
		}
		s += a.help
	}
	return s
}

// pickImage asks for an image file and hands the decoded image to set.
// Cancelling the dialog is not an error.
func (g *Game) pickImage(title string, set func(image.Image)) error {
	filename, err := zenity.SelectFile(
		zenity.Title("Open "+title),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return fmt.Errorf("select %s: %w", title, err)
	}

	img, err := assets.Load(filename)
	if err != nil {
		return err
	}
	set(img)
	return nil
}
