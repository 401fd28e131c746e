package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"concentool/internal/core"
)

type cell struct {
	r    rune
	fg   core.Color
	bg   core.Color
	font Font
}

// Canvas is a fixed-size grid of styled cells.
type Canvas struct {
	width  int
	height int
	cells  [][]cell
}

// NewCanvas creates a canvas of the given size in cells.
func NewCanvas(width, height int) *Canvas {
	c := &Canvas{}
	c.Resize(width, height)
	return c
}

// Resize reallocates the canvas. Content is discarded.
func (c *Canvas) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c.width, c.height = width, height
	c.cells = make([][]cell, height)
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
	}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Render draws the frame and returns the styled output.
func (c *Canvas) Render(f Frame) string {
	c.Draw(f)
	return c.String()
}

// Draw rasterizes the frame: background, then shapes, then texts.
func (c *Canvas) Draw(f Frame) {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = cell{r: ' ', fg: f.Background, bg: f.Background}
		}
	}
	for _, s := range f.Shapes {
		c.drawShape(s)
	}
	for _, t := range f.Texts {
		c.drawText(t)
	}
}

func (c *Canvas) drawShape(s Shape) {
	r := s.Rect
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			if s.Kind == ShapeCircle && !insideEllipse(r, x, y) {
				continue
			}
			c.paint(x, y, s.Color)
		}
	}
	if s.Label != "" {
		cx, cy := r.Center()
		x := cx - runewidth.StringWidth(s.Label)/2
		c.write(x, cy, s.Label, FontTitle, contrast(s.Color))
	}
}

// insideEllipse tests the center of cell (x, y) against the ellipse
// inscribed in r.
func insideEllipse(r core.Rect, x, y int) bool {
	if r.W <= 0 || r.H <= 0 {
		return false
	}
	rx, ry := float64(r.W)/2, float64(r.H)/2
	dx := (float64(x-r.X) + 0.5 - rx) / rx
	dy := (float64(y-r.Y) + 0.5 - ry) / ry
	return dx*dx+dy*dy <= 1.0
}

func (c *Canvas) drawText(t Text) {
	x := t.X
	if t.Centered {
		x = (c.width - runewidth.StringWidth(t.Content)) / 2
	}
	c.write(x, t.Y, t.Content, t.Font, t.Color)
}

func (c *Canvas) paint(x, y int, color core.Color) {
	if !c.inBounds(x, y) {
		return
	}
	c.cells[y][x] = cell{r: ' ', fg: color, bg: color}
}

func (c *Canvas) write(x, y int, s string, font Font, fg core.Color) {
	for _, r := range s {
		if c.inBounds(x, y) {
			cl := &c.cells[y][x]
			cl.r = r
			cl.fg = fg
			cl.font = font
		}
		x += runewidth.RuneWidth(r)
	}
}

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.width && y >= 0 && y < c.height
}

// Plain returns the canvas runes without styling.
func (c *Canvas) Plain() string {
	var sb strings.Builder
	for y := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, cl := range c.cells[y] {
			sb.WriteRune(cl.r)
		}
	}
	return sb.String()
}

// String renders the canvas, grouping runs of identically styled cells into
// a single lipgloss render to keep escape sequences short.
func (c *Canvas) String() string {
	var sb strings.Builder
	sb.Grow(c.width*c.height*2 + c.height)

	for y := range c.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		row := c.cells[y]
		x := 0
		for x < len(row) {
			start := row[x]
			var run strings.Builder
			for x < len(row) && sameStyle(row[x], start) {
				run.WriteRune(row[x].r)
				x++
			}
			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}

func sameStyle(a, b cell) bool {
	return a.fg == b.fg && a.bg == b.bg && a.font == b.font
}

func styleFor(cl cell) lipgloss.Style {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(cl.fg.Hex())).
		Background(lipgloss.Color(cl.bg.Hex()))
	switch cl.font {
	case FontTitle:
		style = style.Bold(true)
	case FontHint:
		style = style.Faint(true)
	}
	return style
}

// contrast picks black or white ink for text drawn on top of bg.
func contrast(bg core.Color) core.Color {
	luma := 299*int(bg.R) + 587*int(bg.G) + 114*int(bg.B)
	if luma > 128*1000 {
		return core.Ink
	}
	return core.Background
}
