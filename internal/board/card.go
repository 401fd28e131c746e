package board

import "concentool/internal/core"

// Face is what a card currently shows.
type Face int

const (
	FaceHidden Face = iota
	FaceRevealed
	FaceMatched
)

func (f Face) String() string {
	switch f {
	case FaceHidden:
		return "hidden"
	case FaceRevealed:
		return "revealed"
	case FaceMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Card is a single cell of the board.
type Card struct {
	Rect    core.Rect
	Color   core.Color
	Hidden  bool
	Matched bool
}

// Flip toggles whether the card is face down.
func (c *Card) Flip() {
	c.Hidden = !c.Hidden
}

// Face reports the face to draw. A matched card always shows its color.
func (c Card) Face() Face {
	switch {
	case c.Matched:
		return FaceMatched
	case c.Hidden:
		return FaceHidden
	default:
		return FaceRevealed
	}
}
