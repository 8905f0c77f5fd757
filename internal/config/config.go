// Package config provides YAML-based configuration loading for the Flood-It
// platform: frame rate, theme, audio and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// FloodItConfig contains all platform configuration. The puzzle rules are fixed
// and intentionally absent.
type FloodItConfig struct {
	TickRate int         `yaml:"tick_rate"`
	Theme    Theme       `yaml:"theme"`
	Audio    AudioConfig `yaml:"audio"`
	Log      LogConfig   `yaml:"log"`
}

// AudioConfig controls sound playback.
type AudioConfig struct {
	Enabled      bool    `yaml:"enabled"`
	MasterVolume float64 `yaml:"master_volume"` // 0.0 = silent, 1.0 = full
	SoundDir     string  `yaml:"sound_dir"`     // Directory with ng.wav, bravo.wav, crash.wav
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`  // Log file for interactive play; empty logs nowhere
}

// Theme names a palette for the terminal renderer.
type Theme string

const (
	ThemeClassic Theme = "classic"
	ThemePastel  Theme = "pastel"
	ThemeMono    Theme = "mono"
)

// Themes lists the known themes.
var Themes = []Theme{ThemeClassic, ThemePastel, ThemeMono}

// ValidationError describes one invalid configuration field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that every field holds a usable value.
func (c FloodItConfig) Validate() error {
	if c.TickRate <= 0 {
		return ValidationError{Field: "tick_rate", Message: fmt.Sprintf("must be positive, got %d", c.TickRate)}
	}
	if !c.Theme.valid() {
		return ValidationError{Field: "theme", Message: fmt.Sprintf("unknown theme %q", c.Theme)}
	}
	if c.Audio.MasterVolume < 0 || c.Audio.MasterVolume > 1 {
		return ValidationError{Field: "audio.master_volume", Message: fmt.Sprintf("must be within [0,1], got %g", c.Audio.MasterVolume)}
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return ValidationError{Field: "log.level", Message: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	return nil
}

func (t Theme) valid() bool {
	for _, known := range Themes {
		if t == known {
			return true
		}
	}
	return false
}
