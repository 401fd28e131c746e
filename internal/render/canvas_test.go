package render

import (
	"strings"
	"testing"

	"concentool/internal/core"
)

func TestCanvas_DrawText(t *testing.T) {
	c := NewCanvas(10, 2)
	c.Draw(Frame{
		Background: core.Background,
		Texts: []Text{
			{X: 1, Y: 0, Content: "Hi", Color: core.Ink},
			{Y: 1, Content: "Mid", Color: core.Ink, Centered: true},
		},
	})

	lines := strings.Split(c.Plain(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0] != " Hi       " {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "   Mid    " {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestCanvas_ClipsOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 1)
	c.Draw(Frame{Texts: []Text{{X: 2, Y: 0, Content: "long"}, {X: 0, Y: 5, Content: "x"}}})
	if got := c.Plain(); got != "  lo" {
		t.Errorf("Plain() = %q", got)
	}
}

func TestCanvas_RectFillsEveryCell(t *testing.T) {
	red := core.RGB(255, 0, 0)
	c := NewCanvas(6, 4)
	c.Draw(Frame{Shapes: []Shape{{Kind: ShapeRect, Rect: core.NewRect(1, 1, 3, 2), Color: red}}})

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			inside := core.NewRect(1, 1, 3, 2).Contains(x, y)
			if (c.cells[y][x].bg == red) != inside {
				t.Errorf("cell (%d,%d) painted=%v, expected %v", x, y, c.cells[y][x].bg == red, inside)
			}
		}
	}
}

func TestCanvas_CircleLeavesCorners(t *testing.T) {
	blue := core.RGB(0, 0, 255)
	c := NewCanvas(10, 5)
	c.Draw(Frame{Background: core.Background, Shapes: []Shape{{Kind: ShapeCircle, Rect: core.NewRect(0, 0, 10, 5), Color: blue}}})

	if c.cells[0][0].bg == blue || c.cells[4][9].bg == blue {
		t.Error("ellipse should not cover the corners")
	}
	if c.cells[2][5].bg != blue {
		t.Error("ellipse should cover the center")
	}
}

func TestCanvas_LabelUsesContrastingInk(t *testing.T) {
	c := NewCanvas(5, 3)
	c.Draw(Frame{Shapes: []Shape{{Kind: ShapeRect, Rect: core.NewRect(0, 0, 5, 3), Color: core.RGB(0, 0, 0), Label: "✓"}}})

	center := c.cells[1][2]
	if center.r != '✓' {
		t.Errorf("label rune = %q", center.r)
	}
	if center.fg != core.Background {
		t.Errorf("expected white ink on black, got %s", center.fg.Hex())
	}
}

func TestCanvas_StringHasOneLinePerRow(t *testing.T) {
	c := NewCanvas(3, 3)
	out := c.Render(Frame{Background: core.Background})
	if n := strings.Count(out, "\n"); n != 2 {
		t.Errorf("expected 2 newlines, got %d", n)
	}
}

func TestCanvas_ResizeNegative(t *testing.T) {
	c := NewCanvas(-1, -5)
	if c.Width() != 0 || c.Height() != 0 {
		t.Errorf("negative size should clamp to zero, got %dx%d", c.Width(), c.Height())
	}
	if c.Plain() != "" {
		t.Error("empty canvas should render empty")
	}
}
