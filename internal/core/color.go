package core

// Color represents a foreground color for a screen cell.
// The platform maps each value to a terminal style.
type Color uint8

// Terminal colors for HUD, borders and overlays.
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
)

// Tile colors, one per classic tile value plus an overflow color
// for values outside the palette.
const (
	ColorTileEmpty Color = iota + 32
	ColorTileIvory
	ColorTileCream
	ColorTileTan
	ColorTileOrange
	ColorTileCoral
	ColorTileRed
	ColorTileStraw
	ColorTileYellow
	ColorTileAmber
	ColorTileHoney
	ColorTileGold
	ColorTileOverflow
)
