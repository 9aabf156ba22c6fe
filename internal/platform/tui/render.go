package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Tile text colors: dark on the two palest tiles, light elsewhere.
var (
	tileInkDark  = lipgloss.Color("#776e65")
	tileInkLight = lipgloss.Color("#f9f6f2")
)

func tileStyle(bg string, ink lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(ink).Background(lipgloss.Color(bg))
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),

	core.ColorTileEmpty:    tileStyle("#cdc1b4", tileInkDark),
	core.ColorTileIvory:    tileStyle("#eee4da", tileInkDark),
	core.ColorTileCream:    tileStyle("#ede0c8", tileInkDark),
	core.ColorTileTan:      tileStyle("#f2b179", tileInkLight),
	core.ColorTileOrange:   tileStyle("#f59563", tileInkLight),
	core.ColorTileCoral:    tileStyle("#f67c5f", tileInkLight),
	core.ColorTileRed:      tileStyle("#f65e3b", tileInkLight),
	core.ColorTileStraw:    tileStyle("#edcf72", tileInkLight),
	core.ColorTileYellow:   tileStyle("#edcc61", tileInkLight),
	core.ColorTileAmber:    tileStyle("#edc850", tileInkLight),
	core.ColorTileHoney:    tileStyle("#edc53f", tileInkLight),
	core.ColorTileGold:     tileStyle("#edc22e", tileInkLight),
	core.ColorTileOverflow: tileStyle("#ff00ff", tileInkLight),
}

// styleFor returns the style of c, falling back to the default style.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
