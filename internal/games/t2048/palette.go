package t2048

import "github.com/vovakirdan/tui-2048/internal/core"

// TileColor maps a cell value to its display color.
// Values outside the classic 0..2048 set get the overflow color.
func TileColor(value uint32) core.Color {
	switch value {
	case 0:
		return core.ColorTileEmpty
	case 2:
		return core.ColorTileIvory
	case 4:
		return core.ColorTileCream
	case 8:
		return core.ColorTileTan
	case 16:
		return core.ColorTileOrange
	case 32:
		return core.ColorTileCoral
	case 64:
		return core.ColorTileRed
	case 128:
		return core.ColorTileStraw
	case 256:
		return core.ColorTileYellow
	case 512:
		return core.ColorTileAmber
	case 1024:
		return core.ColorTileHoney
	case 2048:
		return core.ColorTileGold
	default:
		return core.ColorTileOverflow
	}
}
