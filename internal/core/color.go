package core

// Color represents a foreground color for a screen cell.
// Values are mapped to ANSI colors by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorCyan
	ColorRed
	ColorMagenta
	ColorLightGray
	ColorLightBlue
	ColorLightGreen
	ColorLightCyan
	ColorLightRed
	ColorPink
	ColorYellow
	ColorWhite
)

// DebrisPalette is the fixed 13-color palette debris colors are drawn from.
// It matches the classic 16-color text-mode palette minus black, brown and
// dark gray.
var DebrisPalette = [13]Color{
	ColorBlue,
	ColorGreen,
	ColorCyan,
	ColorRed,
	ColorMagenta,
	ColorLightGray,
	ColorLightBlue,
	ColorLightGreen,
	ColorLightCyan,
	ColorLightRed,
	ColorPink,
	ColorYellow,
	ColorWhite,
}
