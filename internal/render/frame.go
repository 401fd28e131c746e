// Package render turns the draw commands produced by the game state into
// terminal output. The game never touches the terminal directly: it builds a
// Frame, and a Renderer rasterizes it.
package render

import "concentool/internal/core"

// ShapeKind selects how a Shape is rasterized.
type ShapeKind int

const (
	ShapeRect ShapeKind = iota
	ShapeCircle
)

// Shape is a filled shape. Label, if set, is drawn at the shape's center.
type Shape struct {
	Kind  ShapeKind
	Rect  core.Rect
	Color core.Color
	Label string
}

// Font is the terminal stand-in for a typeface and size.
type Font int

const (
	FontBody Font = iota
	FontTitle
	FontHint
)

// Text is a single line of text. Centered texts ignore X and are centered
// on the canvas width.
type Text struct {
	X, Y     int
	Content  string
	Font     Font
	Color    core.Color
	Centered bool
}

// Frame is everything drawn in one tick.
type Frame struct {
	Background core.Color
	Shapes     []Shape
	Texts      []Text
}

// Renderer rasterizes a frame into a printable string sized to the
// terminal.
type Renderer interface {
	Render(f Frame) string
	Resize(width, height int)
}
