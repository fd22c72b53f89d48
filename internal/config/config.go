// Package config loads the pulse-button TOML configuration and watches it
// for live changes.
package config

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/iburimskiy/pulse-button/internal/assets"
	"github.com/iburimskiy/pulse-button/internal/pulse"
	"github.com/iburimskiy/pulse-button/internal/scene"
)

const (
	DefaultWindowWidth  = 480
	DefaultWindowHeight = 480
	DefaultWindowTitle  = "pulse-button"
	DefaultDiameter     = 96
)

// Config is the on-disk configuration.
type Config struct {
	Window WindowConfig `toml:"window"`
	Button ButtonConfig `toml:"button"`

	// dir resolves relative asset paths; empty means the working directory.
	dir string
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type ButtonConfig struct {
	Diameter              float64  `toml:"diameter"`
	PulseCount            int      `toml:"pulse_count"`
	PulseDuration         Duration `toml:"pulse_duration"`
	IntervalBetweenPulses Duration `toml:"interval_between_pulses"`
	PulseScaleFactor      float64  `toml:"pulse_scale_factor"`
	PulseRepeatCount      int      `toml:"pulse_repeat_count"`
	PulseRepeatForever    bool     `toml:"pulse_repeat_forever"`
	PulseColor            Color    `toml:"pulse_color"`
	BackgroundColor       Color    `toml:"background_color"`
	NormalImage           string   `toml:"normal_image"`
	SelectedImage         string   `toml:"selected_image"`
	TapSound              string   `toml:"tap_sound"`
}

// DefaultConfig mirrors the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		Button: ButtonConfig{
			Diameter:              DefaultDiameter,
			PulseCount:            pulse.DefaultPulseCount,
			PulseDuration:         Duration{pulse.DefaultPulseDuration},
			IntervalBetweenPulses: Duration{pulse.DefaultIntervalBetweenPulses},
			PulseScaleFactor:      pulse.DefaultPulseScaleFactor,
			PulseRepeatCount:      pulse.DefaultPulseRepeatCount,
			PulseColor:            FromColor(pulse.DefaultPulseColor),
		},
	}
}

// LoadFromFile reads configuration from path. A missing file yields
// DefaultConfig.
func LoadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.dir = filepath.Dir(path)
	return cfg, nil
}

// LoadFromReader decodes TOML over the defaults.
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.NewDecoder(r).Decode(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Resolve returns path relative to the config file's directory. Empty and
// absolute paths are returned unchanged.
func (c *Config) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.dir == "" {
		return path
	}
	return filepath.Join(c.dir, path)
}

// PulseConfig converts the button section into an engine configuration,
// decoding the configured images.
func (c *Config) PulseConfig() (pulse.Config, error) {
	return c.PulseConfigWith(nil)
}

// PulseConfigWith is PulseConfig reusing images from cache. Entries for
// images the config no longer names are dropped. A nil cache decodes
// every time.
func (c *Config) PulseConfigWith(cache *ImageCache) (pulse.Config, error) {
	b := c.Button
	pc := pulse.Config{
		PulseCount:            b.PulseCount,
		PulseDuration:         b.PulseDuration.Duration,
		IntervalBetweenPulses: b.IntervalBetweenPulses.Duration,
		PulseScaleFactor:      b.PulseScaleFactor,
		PulseRepeatCount:      float64(b.PulseRepeatCount),
		PulseColor:            b.PulseColor.Value(),
		BackgroundColor:       b.BackgroundColor.Value(),
	}
	if b.PulseRepeatForever {
		pc.PulseRepeatCount = pulse.RepeatForever
	}
	if pc.PulseColor == nil {
		pc.PulseColor = pulse.DefaultPulseColor
	}

	var err error
	if pc.NormalImage, err = c.loadImage(b.NormalImage, cache); err != nil {
		return pulse.Config{}, err
	}
	if pc.SelectedImage, err = c.loadImage(b.SelectedImage, cache); err != nil {
		return pulse.Config{}, err
	}
	if cache != nil {
		cache.retain(c.Resolve(b.NormalImage), c.Resolve(b.SelectedImage))
	}
	return pc, nil
}

func (c *Config) loadImage(path string, cache *ImageCache) (image.Image, error) {
	if path == "" {
		return nil, nil
	}
	if cache != nil {
		return cache.Load(c.Resolve(path))
	}
	img, err := assets.Load(c.Resolve(path))
	if err != nil {
		return nil, fmt.Errorf("load image: %w", err)
	}
	return img, nil
}

// ButtonFrame centers a button of the configured diameter in a surface of
// the given size.
func (c *Config) ButtonFrame(width, height int) scene.Rect {
	d := c.Button.Diameter
	return scene.Rect{
		X: (float64(width) - d) / 2,
		Y: (float64(height) - d) / 2,
		W: d,
		H: d,
	}
}

// Duration is a time.Duration that decodes from strings like "400ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}
