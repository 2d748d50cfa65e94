package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Palette maps semantic cell colors to terminal styles.
type Palette map[core.Color]lipgloss.Style

func newPalette(bg lipgloss.TerminalColor, fg map[core.Color]string) Palette {
	p := Palette{core.ColorDefault: lipgloss.NewStyle()}
	for c, code := range fg {
		p[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	if bg != nil {
		for c, style := range p {
			p[c] = style.Background(bg)
		}
	}
	return p
}

var (
	lightPalette = newPalette(nil, map[core.Color]string{
		core.ColorRed:    "1",
		core.ColorGreen:  "2",
		core.ColorYellow: "3",
		core.ColorBlue:   "4",
		core.ColorCyan:   "6",
		core.ColorWhite:  "7",
		core.ColorGray:   "245",
	})
	darkPalette = newPalette(lipgloss.Color("234"), map[core.Color]string{
		core.ColorRed:    "9",
		core.ColorGreen:  "10",
		core.ColorYellow: "11",
		core.ColorBlue:   "12",
		core.ColorCyan:   "14",
		core.ColorWhite:  "15",
		core.ColorGray:   "240",
	})
	// Game over washes everything but text in red
	gameOverPalette = newPalette(nil, map[core.Color]string{
		core.ColorRed:    "9",
		core.ColorGreen:  "1",
		core.ColorYellow: "9",
		core.ColorBlue:   "1",
		core.ColorCyan:   "1",
		core.ColorWhite:  "15",
		core.ColorGray:   "1",
	})
	darkGameOverPalette = newPalette(lipgloss.Color("52"), map[core.Color]string{
		core.ColorRed:    "9",
		core.ColorGreen:  "9",
		core.ColorYellow: "11",
		core.ColorBlue:   "9",
		core.ColorCyan:   "9",
		core.ColorWhite:  "15",
		core.ColorGray:   "88",
	})
)

// PaletteFor picks the palette for the cosmetic dark flag and the game-over flag.
func PaletteFor(dark, gameOver bool) Palette {
	switch {
	case dark && gameOver:
		return darkGameOverPalette
	case dark:
		return darkPalette
	case gameOver:
		return gameOverPalette
	default:
		return lightPalette
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
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

			style, ok := p[startColor]
			if !ok {
				style = p[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
