package core

// Color represents a foreground color for a screen cell.
type Color uint8

// Colors available to renderers. The platform maps them to terminal styles.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorGray
	ColorBrightGreen
	ColorBrightCyan
)

var playerColors = []Color{ColorBrightGreen, ColorBrightCyan, ColorYellow, ColorMagenta}

// PlayerColor returns the colour used for the i-th player's snake.
func PlayerColor(i int) Color {
	if i < 0 {
		return ColorDefault
	}
	return playerColors[i%len(playerColors)]
}
