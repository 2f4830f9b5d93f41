package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Predefined colors for board tiles and HUD elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorDim
)

// Attr is a set of text attributes applied on top of a cell's color.
type Attr uint8

// AttrNone is the plain attribute set.
const AttrNone Attr = 0

const (
	AttrBold      Attr = 1 << iota
	AttrReverse        // Swaps foreground and background, used for the cursor
	AttrUnderline      // Marks the selected tile
)

// Has reports whether all bits of other are set.
func (a Attr) Has(other Attr) bool {
	return a&other == other
}
