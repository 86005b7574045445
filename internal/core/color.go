package core

// Color is a logical foreground color for a screen cell.
// The platform layer maps it to a terminal color.
type Color uint8

// Predefined colors for game elements.
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
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDarkGray
)

// DiscoPalette is the color cycle of the disco floor.
var DiscoPalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightMagenta,
}
