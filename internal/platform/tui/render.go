package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/floodit/internal/core"
)

// ScreenRenderer converts Screen buffers to styled strings for one output.
type ScreenRenderer struct {
	styles map[core.Color]lipgloss.Style
	plain  lipgloss.Style
}

// NewScreenRenderer builds the style table for theme. lr selects the output
// the styles are rendered for (one per SSH session); nil uses the default.
func NewScreenRenderer(theme Theme, lr *lipgloss.Renderer) *ScreenRenderer {
	if lr == nil {
		lr = lipgloss.DefaultRenderer()
	}
	fg := func(c lipgloss.Color) lipgloss.Style {
		return lr.NewStyle().Foreground(c)
	}

	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault:      lr.NewStyle(),
		core.ColorRed:          fg("1"),
		core.ColorGreen:        fg("2"),
		core.ColorYellow:       fg("3"),
		core.ColorBlue:         fg("4"),
		core.ColorMagenta:      fg("5"),
		core.ColorCyan:         fg("6"),
		core.ColorWhite:        fg(theme.Text),
		core.ColorBrightRed:    fg(theme.Alert).Bold(true),
		core.ColorBrightYellow: fg(theme.Accent).Bold(true),
		core.ColorBrightWhite:  fg(theme.Frame),
		core.ColorGray:         fg(theme.Dim),
	}
	for i, c := range theme.Swatches {
		if i >= core.MaxSwatches {
			break
		}
		styles[core.Swatch(i)] = fg(c)
	}

	return &ScreenRenderer{styles: styles, plain: styles[core.ColorDefault]}
}

// Render converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *ScreenRenderer) Render(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same color for efficiency
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

			style, ok := r.styles[startColor]
			if !ok {
				style = r.plain
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
