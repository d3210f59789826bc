package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-asteroids/internal/render"
)

// colorStyles maps render.Color to lipgloss styles.
var colorStyles = map[render.Color]lipgloss.Style{
	render.ColorDefault:      lipgloss.NewStyle(),
	render.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	render.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	render.ColorBrightWhite:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	render.ColorCyan:         lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	render.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	render.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	render.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	render.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	render.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	render.ColorOrange:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// RenderScreen converts a screen buffer to a styled string for display.
// Adjacent cells with the same color are grouped to keep the ANSI escape
// overhead down.
func RenderScreen(s *render.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.Get(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.Get(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[render.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
