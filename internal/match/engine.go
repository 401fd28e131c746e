// Package match owns the two-card selection of a round and decides whether
// a pair matches.
package match

import (
	"time"

	"concentool/internal/board"
	"concentool/internal/scoring"
)

// DefaultMismatchDelay is how long a mismatched pair stays face up.
const DefaultMismatchDelay = 500 * time.Millisecond

// Result describes what Resolve did with the selection.
type Result int

const (
	ResultNone Result = iota
	ResultMatch
	ResultMismatch
)

func (r Result) String() string {
	switch r {
	case ResultMatch:
		return "match"
	case ResultMismatch:
		return "mismatch"
	default:
		return "none"
	}
}

// Engine holds the face-up, unresolved cards of the current round.
// While a mismatch is pending all selections are ignored.
type Engine struct {
	board     *board.Board
	score     *scoring.Scoring
	delay     time.Duration
	selection []int
	pending   bool
	deadline  time.Time
	frozen    bool
}

// NewEngine creates an engine over the board. A non-positive delay uses
// DefaultMismatchDelay.
func NewEngine(b *board.Board, score *scoring.Scoring, delay time.Duration) *Engine {
	if delay <= 0 {
		delay = DefaultMismatchDelay
	}
	return &Engine{
		board:     b,
		score:     score,
		delay:     delay,
		selection: make([]int, 0, 2),
	}
}

// TrySelect turns card i face up and adds it to the selection.
// It reports whether the card was accepted.
func (e *Engine) TrySelect(i int) bool {
	if e.frozen || e.pending || len(e.selection) >= 2 {
		return false
	}
	if i < 0 || i >= len(e.board.Cards) {
		return false
	}
	c := &e.board.Cards[i]
	if c.Matched || !c.Hidden {
		return false
	}
	c.Flip()
	e.selection = append(e.selection, i)
	return true
}

// Resolve settles a full selection. A match is applied immediately; a
// mismatch stays visible until Tick passes the deadline.
func (e *Engine) Resolve(now time.Time) Result {
	if e.frozen || e.pending || len(e.selection) != 2 {
		return ResultNone
	}
	a, b := &e.board.Cards[e.selection[0]], &e.board.Cards[e.selection[1]]
	if a.Color == b.Color {
		a.Matched = true
		b.Matched = true
		e.score.ScoreEvent("match")
		e.selection = e.selection[:0]
		return ResultMatch
	}
	e.score.ScoreEvent("mismatch")
	e.pending = true
	e.deadline = now.Add(e.delay)
	return ResultMismatch
}

// Tick hides a pending mismatch once its deadline has passed.
func (e *Engine) Tick(now time.Time) {
	if e.frozen || !e.pending || now.Before(e.deadline) {
		return
	}
	e.hideSelection()
}

// Flush hides a pending mismatch without waiting for the deadline.
func (e *Engine) Flush() {
	if e.pending {
		e.hideSelection()
	}
}

func (e *Engine) hideSelection() {
	for _, i := range e.selection {
		e.board.Cards[i].Hidden = true
	}
	e.selection = e.selection[:0]
	e.pending = false
}

// Freeze stops the engine; every later call is a no-op.
func (e *Engine) Freeze() {
	e.frozen = true
}

// Pending reports whether a mismatched pair is waiting to be hidden.
func (e *Engine) Pending() bool {
	return e.pending
}

// Selection returns a copy of the selected card indices.
func (e *Engine) Selection() []int {
	return append([]int(nil), e.selection...)
}

// IsWon reports whether every card on the board is matched.
func (e *Engine) IsWon() bool {
	return e.board.AllMatched()
}
