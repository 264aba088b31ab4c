package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blocks/internal/core"
)

// baseStyles maps the fixed core colors to lipgloss styles.
var baseStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

// Palette resolves core colors, including the piece slots, to styles.
type Palette struct {
	pieces [core.PieceSlots]lipgloss.Style
}

// NewPalette builds a palette from ANSI 256 codes in piece order.
// Missing entries render uncolored.
func NewPalette(codes []string) Palette {
	var p Palette
	for i := range p.pieces {
		if i < len(codes) && codes[i] != "" {
			p.pieces[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(codes[i]))
		} else {
			p.pieces[i] = lipgloss.NewStyle()
		}
	}
	return p
}

// Style returns the style for c.
func (p Palette) Style(c core.Color) lipgloss.Style {
	if idx := c.PieceIndex(); idx >= 0 {
		return p.pieces[idx]
	}
	if style, ok := baseStyles[c]; ok {
		return style
	}
	return baseStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen, p Palette) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
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

			sb.WriteString(p.Style(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
