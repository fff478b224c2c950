package core

// Color represents a foreground color for a screen cell.
// Frontends map these to ANSI 256-color codes or RGBA values.
type Color uint8

// Palette used by the arena renderers.
const (
	ColorDefault Color = iota
	ColorRed
	ColorYellow
	ColorWhite
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightMagenta
	ColorBrightWhite
	ColorGray
)
