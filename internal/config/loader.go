package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const fileName = "floodit.yaml"

// Load loads the platform configuration.
// Search order: customPath -> ~/.floodit/configs/floodit.yaml -> ./configs/floodit.yaml -> embedded default
//
// Files are decoded over the defaults, so a file only needs the keys it changes.
// Errors are returned for an explicit path only; other sources are skipped when
// missing or malformed.
func Load(customPath string) (FloodItConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(ExpandHome(customPath))
		if err != nil {
			return DefaultFloodItConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return DefaultFloodItConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(fileName); userCfgPath != "" {
		if cfg, ok := tryFile(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryFile(filepath.Join("configs", fileName)); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := parse(defaultFloodItYAML)
	if err != nil {
		return DefaultFloodItConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func tryFile(path string) (FloodItConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return FloodItConfig{}, false
	}
	cfg, err := parse(data)
	if err != nil {
		return FloodItConfig{}, false
	}
	return cfg, true
}

// parse decodes YAML over the built-in defaults.
func parse(data []byte) (FloodItConfig, error) {
	cfg := DefaultFloodItConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".floodit", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
