package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyhop/internal/core"
)

// cellStyle returns the lipgloss style for a cell's colors.
// A zero background leaves the terminal default in place.
func cellStyle(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(fg.Hex()))
	if bg != core.ColorNone {
		style = style.Background(lipgloss.Color(bg.Hex()))
	}
	return style
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[[2]core.Color]lipgloss.Style)

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			k := [2]core.Color{start.Fg, start.Bg}
			style, ok := styles[k]
			if !ok {
				style = cellStyle(start.Fg, start.Bg)
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
