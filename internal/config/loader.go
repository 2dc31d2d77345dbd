package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/snake.yaml"

// Load loads and validates the snake configuration.
// Search order: customPath -> ~/.snake/config.yaml -> ./configs/snake.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("config: cannot read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			return parse(data, userCfgPath)
		}
	}

	if data, err := os.ReadFile(localConfigPath); err == nil {
		return parse(data, localConfigPath)
	}

	cfg, err := parse(defaultSnakeYAML, "embedded default")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed is broken
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	return parse(data, "input")
}

func parse(data []byte, source string) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: cannot parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the per-user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".snake", "config.yaml")
}
