package game

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"concentool/internal/board"
	"concentool/internal/core"
	"concentool/internal/render"
	"concentool/internal/state"
)

// topScores is how many earlier rounds the outcome screen lists.
const topScores = 5

// Game encapsulates the core game logic, independent of the UI.
type Game struct {
	State   *state.State
	Session *Session

	clicks []state.Click
}

// NewGame initializes a new game instance waiting on level selection.
func NewGame(opts state.Options) *Game {
	return &Game{
		State:   state.NewState(opts),
		Session: NewSession(),
	}
}

// IsExitRequested reports whether the key ends the program.
func IsExitRequested(key string) bool {
	switch key {
	case "ctrl+c", "esc", "q":
		return true
	}
	return false
}

// HandleKey processes a key press. now is used to start the clock when a
// level is chosen.
func (g *Game) HandleKey(key string, now time.Time) {
	if IsExitRequested(key) {
		g.quit()
		return
	}

	switch g.State.FSM.Current() {
	case state.LevelSelect:
		d, err := board.ParseDifficulty(key)
		if err != nil {
			return
		}
		// A level that fails to generate leaves the menu up.
		_ = g.State.ChooseLevel(d, now)
	case state.Won, state.Lost:
		switch key {
		case "y", "Y":
			g.clicks = nil
			_ = g.State.Restart()
		case "n", "N":
			g.quit()
		}
	}
}

// HandleClick queues a pointer press for the next tick.
func (g *Game) HandleClick(x, y int) {
	if !g.State.FSM.Is(state.Playing) {
		return
	}
	g.clicks = append(g.clicks, state.Click{X: x, Y: y})
}

// HandleTick runs one frame of the round with the clicks queued since the
// previous tick.
func (g *Game) HandleTick(now time.Time) {
	clicks := g.clicks
	g.clicks = nil
	g.State.Step(now, clicks)
	g.Session.Update(g.State, now)
}

// Resize re-lays out the board for a new screen size.
func (g *Game) Resize(width, height int) {
	g.State.Resize(width, height)
}

// Done reports whether the player asked to leave.
func (g *Game) Done() bool {
	return g.State.FSM.Is(state.Exit)
}

// Frame returns the draw commands for the current screen. The outcome
// screen also shows how the round compares with earlier ones.
func (g *Game) Frame(now time.Time) render.Frame {
	f := g.State.Frame(now)
	if !g.State.GameOver() {
		return f
	}

	d := g.State.Difficulty
	var lines []string
	if g.Session.NewBest() {
		lines = append(lines, "New best!")
	}
	lines = append(lines, fmt.Sprintf("Attempt %d at %s", g.Session.History.Attempts(d.String()), d))
	if top := g.Session.History.GetNScoreEntries(d.String(), topScores); len(top) > 0 {
		scores := make([]string, len(top))
		for i, e := range top {
			scores[i] = strconv.Itoa(e.Score)
		}
		lines = append(lines, fmt.Sprintf("Top %d scores: %s", topScores, strings.Join(scores, ", ")))
	}

	// Stacked upwards from just above the key hint.
	y := g.State.Height - state.FooterRows - 2 - len(lines)
	for i, line := range lines {
		font, color := render.FontHint, core.HintInk
		if i == 0 && g.Session.NewBest() {
			font, color = render.FontTitle, core.Ink
		}
		f.Texts = append(f.Texts, render.Text{Y: y + i, Content: line, Font: font, Color: color, Centered: true})
	}
	return f
}

func (g *Game) quit() {
	if g.Done() {
		return
	}
	_ = g.State.Quit()
}
