package core

import "fmt"

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
