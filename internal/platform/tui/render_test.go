package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/floodit/internal/config"
	"github.com/vovakirdan/floodit/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(12, 2)
	s.DrawTextColored(0, 0, "MOVES", core.ColorBrightWhite)
	s.DrawRect(core.NewRect(0, 1, 4, 1), '█', core.Swatch(2))

	out := NewScreenRenderer(ClassicTheme(), nil).Render(s)
	lines := strings.Split(out, "\n")

	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "MOVES")
	assert.Contains(t, lines[1], "████")
}

func TestRenderScreenColorsSwatches(t *testing.T) {
	lr := lipgloss.NewRenderer(&strings.Builder{})
	lr.SetColorProfile(termenv.TrueColor)

	s := core.NewScreen(2, 1)
	s.SetColored(0, 0, '█', core.Swatch(0))
	s.SetColored(1, 0, '█', core.Swatch(4))

	out := NewScreenRenderer(ClassicTheme(), lr).Render(s)

	// #FF8080 and #8080FF as truecolor foreground sequences
	assert.Contains(t, out, "38;2;255;128;128")
	assert.Contains(t, out, "38;2;128;128;255")
}

func TestThemeByName(t *testing.T) {
	for _, name := range config.Themes {
		theme := ThemeByName(name)
		assert.Equal(t, string(name), theme.Name)
		assert.Len(t, theme.Swatches, 6)
	}
	assert.Equal(t, ClassicTheme().Name, ThemeByName("unknown").Name)
}
