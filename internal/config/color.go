package config

import (
	"fmt"
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an optional color written as "#rrggbb", "#rgb" or "none".
type Color struct {
	colorful.Color
	Valid bool
}

// FromColor wraps c; a nil c gives an unset Color.
func FromColor(c color.Color) Color {
	if c == nil {
		return Color{}
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return Color{}
	}
	return Color{Color: cf, Valid: true}
}

// Value returns the color, or nil when unset.
func (c Color) Value() color.Color {
	if !c.Valid {
		return nil
	}
	return c.Color
}

func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || strings.EqualFold(s, "none") {
		*c = Color{}
		return nil
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return fmt.Errorf("invalid color %q: %w", s, err)
	}
	*c = Color{Color: cf, Valid: true}
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	if !c.Valid {
		return []byte("none"), nil
	}
	return []byte(c.Hex()), nil
}
