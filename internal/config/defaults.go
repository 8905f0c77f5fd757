package config

import (
	_ "embed"
)

//go:embed defaults/floodit.yaml
var defaultFloodItYAML []byte

// DefaultFloodItConfig returns the built-in configuration.
func DefaultFloodItConfig() FloodItConfig {
	return FloodItConfig{
		TickRate: 30,
		Theme:    ThemeClassic,
		Audio: AudioConfig{
			Enabled:      true,
			MasterVolume: 0.8,
		},
		Log: LogConfig{
			Level: "info",
			File:  "~/.floodit/floodit.log",
		},
	}
}
