package game

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "2.0s", formatSeconds(2*time.Second))
	assert.Equal(t, "0.4s", formatSeconds(400*time.Millisecond))
	assert.Equal(t, "0.0s", formatSeconds(0))
}

func TestBackgroundColorIsOpaqueAndDark(t *testing.T) {
	for _, ratio := range []float64{0, 0.5, 1} {
		c := backgroundColor(3, ratio)
		assert.Equal(t, uint8(255), c.A)
		assert.Less(t, int(c.R)+int(c.G)+int(c.B), 3*80)
	}
	top, bottom := backgroundColor(0, 0), backgroundColor(0, 1)
	assert.NotEqual(t, top, bottom)
}

func TestHelpLineSkipsEmptyHints(t *testing.T) {
	line := helpLine()
	assert.Contains(t, line, "Space: tap")
	assert.Contains(t, line, "Esc/Q: quit")
	assert.False(t, strings.Contains(line, "    "), "no gaps from empty hints")
}
