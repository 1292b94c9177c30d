package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteShape(t *testing.T) {
	p := Palette()
	assert.Len(t, p, 10)
	assert.Equal(t, p[0], DefaultColor())

	seen := map[string]bool{}
	for _, c := range p {
		assert.False(t, seen[c], "palette entries must be distinct")
		seen[c] = true
	}
}

func TestNextColorWraps(t *testing.T) {
	// Cycling len(palette) times returns to the starting color.
	c := DefaultColor()
	for range palette {
		c = NextColor(c)
	}
	assert.Equal(t, DefaultColor(), c)
}

func TestNextColorUnknownTreatedAsFirst(t *testing.T) {
	assert.Equal(t, palette[1], NextColor("chartreuse"))
	assert.Equal(t, palette[1], NextColor(""))
}

func TestIsPaletteColor(t *testing.T) {
	assert.True(t, IsPaletteColor("teal"))
	assert.False(t, IsPaletteColor("Teal"))
	assert.False(t, IsPaletteColor("chartreuse"))
}
