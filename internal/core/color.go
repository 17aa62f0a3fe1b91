package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to ANSI colors; core stays terminal-agnostic.
type Color uint8

// Colors used by the game's renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightGreen
	ColorBrightYellow
	ColorOrange
	ColorGray
)
