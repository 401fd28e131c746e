// Package board builds the paired-color grid a round is played on.
package board

import (
	"fmt"
	"math/rand"

	"concentool/internal/core"
)

// Board is the grid of cards for one round, stored row-major.
type Board struct {
	Rows       int
	Cols       int
	CardWidth  int
	CardHeight int
	Cards      []Card
}

// Generate builds a shuffled board for the level, centered inside area.
// Every color on the board appears on exactly two cards.
func Generate(spec LevelSpec, area core.Rect, rng *rand.Rand) (*Board, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}

	colors := uniqueColors(spec.Pairs(), rng)
	deck := make([]core.Color, 0, 2*len(colors))
	deck = append(deck, colors...)
	deck = append(deck, colors...)
	rng.Shuffle(len(deck), func(i, j int) {
		deck[i], deck[j] = deck[j], deck[i]
	})

	b := &Board{
		Rows:       spec.Rows,
		Cols:       spec.Cols,
		CardWidth:  spec.CardWidth,
		CardHeight: spec.CardHeight,
		Cards:      make([]Card, len(deck)),
	}
	for i, c := range deck {
		b.Cards[i] = Card{Color: c, Hidden: true}
	}
	b.Relayout(area)
	return b, nil
}

// uniqueColors draws random colors until n distinct ones are collected.
// Duplicates, the card-back color and the background color are drawn again
// instead of being dropped.
func uniqueColors(n int, rng *rand.Rand) []core.Color {
	seen := make(map[core.Color]struct{}, n)
	colors := make([]core.Color, 0, n)
	for len(colors) < n {
		c := core.RGB(uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256)))
		if _, dup := seen[c]; dup || c == core.CardBack || c == core.Background {
			continue
		}
		seen[c] = struct{}{}
		colors = append(colors, c)
	}
	return colors
}

// Relayout positions every card so the grid is centered in area.
// Card state and colors are left untouched.
func (b *Board) Relayout(area core.Rect) {
	offX := (area.W - b.Cols*b.CardWidth) / 2
	offY := (area.H - b.Rows*b.CardHeight) / 2
	for i := range b.Cards {
		row, col := i/b.Cols, i%b.Cols
		b.Cards[i].Rect = core.NewRect(
			area.X+col*b.CardWidth+offX,
			area.Y+row*b.CardHeight+offY,
			b.CardWidth,
			b.CardHeight,
		)
	}
}

// HitTest returns the index of the card under (x, y), or -1.
func (b *Board) HitTest(x, y int) int {
	for i := range b.Cards {
		if b.Cards[i].Rect.Contains(x, y) {
			return i
		}
	}
	return -1
}

// AllMatched reports whether every card has been matched.
func (b *Board) AllMatched() bool {
	for _, c := range b.Cards {
		if !c.Matched {
			return false
		}
	}
	return true
}

// SetHidden forces every unmatched card face down or face up.
func (b *Board) SetHidden(hidden bool) {
	for i := range b.Cards {
		if !b.Cards[i].Matched {
			b.Cards[i].Hidden = hidden
		}
	}
}
