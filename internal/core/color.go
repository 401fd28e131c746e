package core

import "fmt"

// Color is an RGB triple.
type Color struct {
	R, G, B uint8
}

// RGB builds a Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// Hex renders the color as "#rrggbb", the form lipgloss accepts.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	Background = RGB(255, 255, 255)
	CardBack   = RGB(128, 128, 128)
	Ink        = RGB(0, 0, 0)
	HintInk    = RGB(128, 128, 128)
)
