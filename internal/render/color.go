package render

// Color is a foreground color for a screen cell, mapped to ANSI colors by
// the terminal layer.
type Color uint8

// Palette used by the asteroids presentation.
const (
	ColorDefault Color = iota
	ColorGray
	ColorWhite
	ColorBrightWhite
	ColorCyan
	ColorYellow
	ColorBrightYellow
	ColorRed
	ColorBrightRed
	ColorGreen
	ColorOrange
)
