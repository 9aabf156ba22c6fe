package t2048

import (
	"strconv"
	"strings"
)

// Size is the board dimension.
const Size = 4

// CellCount is the number of cells on the board.
const CellCount = Size * Size

// Direction represents a move direction.
type Direction int

const (
	DirUp    Direction = iota // toward row 0
	DirDown                   // toward row 3
	DirLeft                   // toward column 0
	DirRight                  // toward column 3
)

// Directions lists every move direction.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// Valid reports whether d is one of the four move directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// String returns the lowercase direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "invalid"
	}
}

// Grid is the 4x4 board in row-major order. Zero marks an empty cell,
// every other value is a power of two >= 2.
type Grid [CellCount]uint32

// GridFromRows builds a Grid from a row-major matrix.
func GridFromRows(rows [Size][Size]uint32) Grid {
	var g Grid
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			g[r*Size+c] = rows[r][c]
		}
	}
	return g
}

// At returns the value at (row, col).
func (g Grid) At(row, col int) uint32 {
	return g[row*Size+col]
}

// Set stores v at (row, col).
func (g *Grid) Set(row, col int, v uint32) {
	g[row*Size+col] = v
}

// Rows returns the grid as a row-major matrix.
func (g Grid) Rows() [Size][Size]uint32 {
	var rows [Size][Size]uint32
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			rows[r][c] = g[r*Size+c]
		}
	}
	return rows
}

// String renders the grid as fixed-width text, one row per line.
// Empty cells are shown as dots.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < Size; c++ {
			cell := "."
			if v := g.At(r, c); v != 0 {
				cell = strconv.FormatUint(uint64(v), 10)
			}
			sb.WriteString(strings.Repeat(" ", max(0, 6-len(cell))))
			sb.WriteString(cell)
		}
	}
	return sb.String()
}

// lines[d][i][k] is the flat index of the k-th cell of line i when moving in
// direction d. k = 0 is the cell at the target edge, so a single collapse
// routine serves all four directions.
var lines = buildLines()

func buildLines() (t [len(Directions)][Size][Size]int) {
	for i := 0; i < Size; i++ {
		for k := 0; k < Size; k++ {
			t[DirLeft][i][k] = i*Size + k               // row forward
			t[DirRight][i][k] = i*Size + (Size - 1 - k) // row backward
			t[DirUp][i][k] = k*Size + i                 // column forward
			t[DirDown][i][k] = (Size-1-k)*Size + i      // column backward
		}
	}
	return t
}

// collapse slides the non-zero values of an oriented line toward index 0 and
// merges equal neighbours. A tile produced by a merge does not merge again.
// Returns the new line and the sum of merged tile values.
func collapse(line [Size]uint32) (out [Size]uint32, gained uint32) {
	n := 0
	merged := false // out[n-1] was produced by a merge

	for _, v := range line {
		if v == 0 {
			continue
		}

		if n > 0 && !merged && out[n-1] == v {
			out[n-1] = v * 2
			gained += v * 2
			merged = true
			continue
		}

		out[n] = v
		n++
		merged = false
	}

	return out, gained
}

// Slide returns the grid after moving every tile in dir, and the score
// gained from merges. An invalid direction leaves the grid unchanged.
func Slide(g Grid, dir Direction) (Grid, uint32) {
	if !dir.Valid() {
		return g, 0
	}

	result := g
	var total uint32
	for _, idx := range lines[dir] {
		var line [Size]uint32
		for k, cell := range idx {
			line[k] = g[cell]
		}

		out, gained := collapse(line)
		for k, cell := range idx {
			result[cell] = out[k]
		}
		total += gained
	}

	return result, total
}

// EmptyCells returns the flat indices of all empty cells in ascending order.
func EmptyCells(g Grid) []int {
	var cells []int
	for i, v := range g {
		if v == 0 {
			cells = append(cells, i)
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for _, v := range g {
		if v == 0 {
			return true
		}
	}
	return false
}

// HasPossibleMerge returns true if any two adjacent tiles are equal.
func HasPossibleMerge(g Grid) bool {
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			val := g.At(r, c)
			if val == 0 {
				continue
			}
			if c < Size-1 && g.At(r, c+1) == val {
				return true
			}
			if r < Size-1 && g.At(r+1, c) == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if at least one direction changes the grid.
// That needs a merge, or a tile next to free space in some row or column;
// any grid holding both a tile and an empty cell has one. An empty grid
// has no move.
func CanMove(g Grid) bool {
	if HasPossibleMerge(g) {
		return true
	}
	return HasEmptyCell(g) && MaxTile(g) > 0
}

// MaxTile returns the maximum tile value on the grid.
func MaxTile(g Grid) uint32 {
	var maxVal uint32
	for _, v := range g {
		if v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// Sum returns the total of all tile values.
func Sum(g Grid) uint64 {
	var total uint64
	for _, v := range g {
		total += uint64(v)
	}
	return total
}

// IsTileValue reports whether v may appear in a cell: 0 or a power of two >= 2.
func IsTileValue(v uint32) bool {
	return v == 0 || (v >= 2 && v&(v-1) == 0)
}
