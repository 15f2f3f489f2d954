package state

// PaletteColumns is the width of the swatch grid.
const PaletteColumns = 4

// Palette returns the preset swatches row by row.
func Palette() []Color {
	return []Color{
		// greys
		MustColor(0, 0, 0, 1), MustColor(0.4, 0.4, 0.4, 1), MustColor(0.6, 0.6, 0.6, 1), MustColor(1, 1, 1, 1),
		// reds
		MustColor(1, 0, 0, 1), MustColor(0.8, 0, 0, 1), MustColor(0.6, 0, 0, 1), MustColor(1, 0.4, 0.4, 1),
		// blues
		MustColor(0, 0, 1, 1), MustColor(0, 0, 0.8, 1), MustColor(0, 0, 0.6, 1), MustColor(0.4, 0.4, 1, 1),
		// greens
		MustColor(0, 0.8, 0, 1), MustColor(0, 0.6, 0, 1), MustColor(0, 0.4, 0, 1), MustColor(0.4, 1, 0.4, 1),
		// yellows and oranges
		MustColor(1, 1, 0, 1), MustColor(1, 0.8, 0, 1), MustColor(1, 0.6, 0, 1), MustColor(1, 0.4, 0, 1),
		// purples and pinks
		MustColor(0.8, 0, 0.8, 1), MustColor(0.6, 0, 0.6, 1), MustColor(1, 0.4, 1, 1), MustColor(0.8, 0.4, 0.8, 1),
	}
}
