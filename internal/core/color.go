package core

// Color represents a semantic foreground color for a screen cell.
// The platform layer maps these to concrete terminal styles per theme.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorGray
)
