package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/floodit/internal/config"
)

// Theme contains the configurable colors of the game screen.
type Theme struct {
	Name string

	// Swatches are the palette colors, indexed by engine color.
	Swatches []lipgloss.Color

	// Text colors for HUD and overlay elements
	Text   lipgloss.Color
	Dim    lipgloss.Color
	Accent lipgloss.Color
	Alert  lipgloss.Color
	Frame  lipgloss.Color
}

// ClassicTheme returns the default bright palette.
func ClassicTheme() Theme {
	return Theme{
		Name: string(config.ThemeClassic),
		Swatches: []lipgloss.Color{
			"#FF8080", // Red
			"#FFFF80", // Yellow
			"#80FF80", // Green
			"#80FFFF", // Cyan
			"#8080FF", // Blue
			"#FF80FF", // Magenta
		},
		Text:   "#E0E0E0",
		Dim:    "245",
		Accent: "#FFFF80",
		Alert:  "#FF8080",
		Frame:  "#FFFFFF",
	}
}

// PastelTheme returns a softer palette.
func PastelTheme() Theme {
	theme := ClassicTheme()
	theme.Name = string(config.ThemePastel)
	theme.Swatches = []lipgloss.Color{
		"218", // Pastel pink
		"229", // Pastel yellow
		"157", // Pastel green
		"123", // Pastel cyan
		"147", // Pastel blue
		"183", // Pastel purple
	}
	return theme
}

// MonoTheme returns a grayscale palette.
func MonoTheme() Theme {
	theme := ClassicTheme()
	theme.Name = string(config.ThemeMono)
	theme.Swatches = []lipgloss.Color{"255", "250", "245", "240", "237", "234"}
	theme.Accent = "255"
	theme.Alert = "250"
	return theme
}

// ThemeByName returns the theme for a configured name, falling back to classic.
func ThemeByName(name config.Theme) Theme {
	switch name {
	case config.ThemePastel:
		return PastelTheme()
	case config.ThemeMono:
		return MonoTheme()
	default:
		return ClassicTheme()
	}
}
