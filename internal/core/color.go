package core

// Color represents a foreground color for a screen cell.
// The terminal host maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the grove board.
const (
	ColorDefault Color = iota
	ColorRed           // hazard
	ColorGreen         // hidden tree
	ColorYellow        // banana
	ColorCyan          // selection cursor
	ColorWhite
	ColorOrange // monkey
	ColorGray   // hud, trail
)
