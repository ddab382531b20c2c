package core

// Color is the foreground colour of a screen cell. The platform maps each
// value to a terminal colour; games only pick from this list.
type Color uint8

const (
	ColorDefault Color = iota
	ColorBlue
	ColorGreen
	ColorOrange
	ColorRed
	ColorViolet
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDim
)

var colorNames = [...]string{
	ColorDefault:     "default",
	ColorBlue:        "blue",
	ColorGreen:       "green",
	ColorOrange:      "orange",
	ColorRed:         "red",
	ColorViolet:      "violet",
	ColorYellow:      "yellow",
	ColorCyan:        "cyan",
	ColorWhite:       "white",
	ColorBrightWhite: "bright-white",
	ColorGray:        "gray",
	ColorDim:         "dim",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
