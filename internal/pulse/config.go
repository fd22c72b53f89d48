package pulse

import (
	"image"
	"image/color"
	"time"

	"github.com/iburimskiy/pulse-button/internal/scene"
)

// RepeatForever makes the ring cycle repeat for the life of the control.
var RepeatForever = scene.RepeatForever

// Default configuration values. Each Button copies them at construction.
const (
	DefaultPulseCount            = 2
	DefaultPulseDuration         = 2 * time.Second
	DefaultIntervalBetweenPulses = 400 * time.Millisecond
	DefaultPulseScaleFactor      = 2.24
	DefaultPulseRepeatCount      = 100
)

// DefaultPulseColor is the ring fill used when none is configured.
var DefaultPulseColor color.Color = color.Gray{Y: 0x80}

// Config is every tunable property of a Button. Values are not
// validated; out-of-range input is handed to the scene as-is.
type Config struct {
	PulseCount            int
	PulseDuration         time.Duration
	IntervalBetweenPulses time.Duration
	PulseScaleFactor      float64
	// PulseRepeatCount is a cycle count or RepeatForever.
	PulseRepeatCount float64
	PulseColor       color.Color

	// NormalImage is shown while idle or pulsing, SelectedImage after
	// StopPulsing. Nil shows nothing.
	NormalImage   image.Image
	SelectedImage image.Image
	// BackgroundColor of nil leaves the button face unfilled.
	BackgroundColor color.Color
}

// DefaultConfig returns a fresh copy of the default configuration.
func DefaultConfig() Config {
	return Config{
		PulseCount:            DefaultPulseCount,
		PulseDuration:         DefaultPulseDuration,
		IntervalBetweenPulses: DefaultIntervalBetweenPulses,
		PulseScaleFactor:      DefaultPulseScaleFactor,
		PulseRepeatCount:      DefaultPulseRepeatCount,
		PulseColor:            DefaultPulseColor,
	}
}

// Option adjusts the configuration a Button is constructed with.
type Option func(*Config)

func WithConfig(cfg Config) Option {
	return func(c *Config) { *c = cfg }
}

func WithPulseCount(n int) Option {
	return func(c *Config) { c.PulseCount = n }
}

func WithPulseDuration(d time.Duration) Option {
	return func(c *Config) { c.PulseDuration = d }
}

func WithIntervalBetweenPulses(d time.Duration) Option {
	return func(c *Config) { c.IntervalBetweenPulses = d }
}

func WithPulseScaleFactor(f float64) Option {
	return func(c *Config) { c.PulseScaleFactor = f }
}

func WithPulseRepeatCount(n float64) Option {
	return func(c *Config) { c.PulseRepeatCount = n }
}

func WithPulseColor(clr color.Color) Option {
	return func(c *Config) { c.PulseColor = clr }
}

func WithNormalImage(img image.Image) Option {
	return func(c *Config) { c.NormalImage = img }
}

func WithSelectedImage(img image.Image) Option {
	return func(c *Config) { c.SelectedImage = img }
}

func WithBackgroundColor(clr color.Color) Option {
	return func(c *Config) { c.BackgroundColor = clr }
}
