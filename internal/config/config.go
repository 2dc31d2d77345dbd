// Package config provides YAML-based configuration loading for the snake
// game: board geometry, colors and tick rate.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Limits enforced by Validate.
const (
	MinGridCells = 3
	MaxSpeed     = 240
)

// Config is the immutable game configuration. It is built once at startup
// and passed by value to the game and front ends.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Grid   GridConfig   `yaml:"grid"`
	Speed  int          `yaml:"speed"` // Moves per second
	Colors ColorConfig  `yaml:"colors"`
}

// ScreenConfig is the playfield size in pixels.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// GridConfig defines the cell size in pixels.
type GridConfig struct {
	CellSize int `yaml:"cell_size"`
}

// ColorConfig holds the palette.
type ColorConfig struct {
	Background Color `yaml:"background"`
	Border     Color `yaml:"border"`
	Apple      Color `yaml:"apple"`
	Snake      Color `yaml:"snake"`
}

// Color is an RGB triple written in YAML as [r, g, b].
type Color core.RGB

// RGB returns the color as a core.RGB.
func (c Color) RGB() core.RGB {
	return core.RGB(c)
}

// UnmarshalYAML decodes a [r, g, b] sequence.
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var parts []int
	if err := value.Decode(&parts); err != nil {
		return fmt.Errorf("color must be [r, g, b]: %w", err)
	}
	if len(parts) != 3 {
		return fmt.Errorf("color must have 3 components, got %d", len(parts))
	}
	for _, p := range parts {
		if p < 0 || p > 255 {
			return fmt.Errorf("color component %d out of range 0-255", p)
		}
	}
	*c = Color{R: uint8(parts[0]), G: uint8(parts[1]), B: uint8(parts[2])}
	return nil
}

// MarshalYAML encodes the color as a flow sequence.
func (c Color) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []uint8{c.R, c.G, c.B} {
		node.Content = append(node.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!int",
			Value: fmt.Sprint(v),
		})
	}
	return node, nil
}

// GridWidth returns the number of columns.
func (c Config) GridWidth() int {
	return c.Screen.Width / c.Grid.CellSize
}

// GridHeight returns the number of rows.
func (c Config) GridHeight() int {
	return c.Screen.Height / c.Grid.CellSize
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: grid.cell_size must be positive, got %d", ErrInvalidConfig, c.Grid.CellSize)
	}
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("%w: screen size must be positive, got %dx%d",
			ErrInvalidConfig, c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.Width%c.Grid.CellSize != 0 || c.Screen.Height%c.Grid.CellSize != 0 {
		return fmt.Errorf("%w: screen %dx%d is not a multiple of cell size %d",
			ErrInvalidConfig, c.Screen.Width, c.Screen.Height, c.Grid.CellSize)
	}
	if c.GridWidth() < MinGridCells || c.GridHeight() < MinGridCells {
		return fmt.Errorf("%w: grid %dx%d is smaller than %dx%d",
			ErrInvalidConfig, c.GridWidth(), c.GridHeight(), MinGridCells, MinGridCells)
	}
	if c.Speed < 1 || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed must be in 1..%d, got %d", ErrInvalidConfig, MaxSpeed, c.Speed)
	}
	return nil
}

// WithSpeed returns a copy of the config with the tick rate replaced.
// Non-positive values leave the config unchanged.
func (c Config) WithSpeed(speed int) Config {
	if speed > 0 {
		c.Speed = speed
	}
	return c
}

// Marshal renders the config as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}
