package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/binary-swipes/internal/core"
)

// colorStyles maps the game palette to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorDim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorNode:    lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorPath:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorTarget:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorCorrect: lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorWrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorAccent:  lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorWarning: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
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

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
