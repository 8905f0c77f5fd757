package core

// Color represents the color of a screen cell.
// Named colors are ANSI foreground colors; swatch colors are the puzzle's palette
// entries and are painted as solid blocks by the platform theme.
type Color uint8

// Predefined colors for HUD and overlay elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightYellow
	ColorBrightWhite
	ColorGray

	// ColorSwatch0 is the first palette swatch. Swatches occupy a contiguous range
	// starting here; use Swatch to address them.
	ColorSwatch0
)

// MaxSwatches is the number of palette swatches a screen can carry.
const MaxSwatches = 8

// Swatch returns the screen color for palette entry i.
func Swatch(i int) Color {
	return ColorSwatch0 + Color(i)
}

// IsSwatch reports whether c is a palette swatch and returns its index.
func (c Color) IsSwatch() (int, bool) {
	if c < ColorSwatch0 || c >= ColorSwatch0+MaxSwatches {
		return 0, false
	}
	return int(c - ColorSwatch0), true
}
