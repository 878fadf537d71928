package systems

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthColor(t *testing.T) {
	full := healthColor(1)
	assert.Equal(t, uint8(0), full.R)
	assert.Equal(t, uint8(220), full.G)

	empty := healthColor(0)
	assert.Equal(t, uint8(255), empty.R)
	assert.Equal(t, uint8(0), empty.G)

	assert.Equal(t, full, healthColor(3), "ratios above one clamp")
	assert.Equal(t, empty, healthColor(-1), "ratios below zero clamp")
}

func TestShadeDarkensByOffset(t *testing.T) {
	c := shade(colorOf(200, 100, 50), 0.5)

	assert.InDelta(t, 180, int(c.R), 1)
	assert.InDelta(t, 90, int(c.G), 1)
	assert.InDelta(t, 45, int(c.B), 1)
	assert.Equal(t, uint8(255), c.A)
	assert.Equal(t, colorOf(200, 100, 50), shade(colorOf(200, 100, 50), 0))
}

func colorOf(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
