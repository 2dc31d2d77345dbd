package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: a 640x480 playfield of
// 20-pixel cells at 20 moves per second.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:  640,
			Height: 480,
		},
		Grid: GridConfig{
			CellSize: 20,
		},
		Speed: 20,
		Colors: ColorConfig{
			Background: Color{0, 0, 0},
			Border:     Color{93, 216, 228},
			Apple:      Color{255, 0, 0},
			Snake:      Color{0, 255, 0},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
