package core

// palette is the fixed set of selectable card colors, in cycling order.
// The first entry is the default for new notes.
var palette = []string{
	"white",
	"red",
	"orange",
	"yellow",
	"green",
	"teal",
	"blue",
	"indigo",
	"purple",
	"pink",
}

// Palette returns the color tokens in cycling order.
func Palette() []string {
	out := make([]string, len(palette))
	copy(out, palette)
	return out
}

// DefaultColor returns the color assigned to notes that do not pick one.
func DefaultColor() string {
	return palette[0]
}

// IsPaletteColor reports whether c is a member of the palette.
func IsPaletteColor(c string) bool {
	return paletteIndex(c) >= 0
}

// NextColor returns the palette entry following c, wrapping around.
// Values outside the palette are treated as index 0, so cycling an
// unknown color lands on the second palette entry.
func NextColor(c string) string {
	idx := paletteIndex(c)
	if idx < 0 {
		idx = 0
	}
	return palette[(idx+1)%len(palette)]
}

func paletteIndex(c string) int {
	for i, p := range palette {
		if p == c {
			return i
		}
	}
	return -1
}
