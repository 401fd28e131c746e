package state

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"concentool/internal/board"
	"concentool/internal/core"
	"concentool/internal/render"
)

// matchedLabel marks matched cards on the board.
const matchedLabel = "✓"

// Frame builds the draw commands for the current state. It never mutates
// the state.
func (s *State) Frame(now time.Time) render.Frame {
	f := render.Frame{Background: core.Background}
	switch s.FSM.Current() {
	case LevelSelect:
		s.levelSelectFrame(&f)
	case Playing:
		s.playFrame(&f, now)
	case Won, Lost:
		s.outcomeFrame(&f)
	}
	return f
}

func (s *State) levelSelectFrame(f *render.Frame) {
	lines := []string{"Choose a level:"}
	for i, d := range board.Difficulties {
		spec := s.cfg.Level(d)
		lines = append(lines, fmt.Sprintf("%d - %s (%s min / %d pairs)",
			i+1, capitalize(d.String()), minutes(spec.TimeLimit), spec.Pairs()))
	}

	top := s.Height/2 - len(lines)
	for i, line := range lines {
		font := render.FontBody
		if i == 0 {
			font = render.FontTitle
		}
		f.Texts = append(f.Texts, render.Text{
			Y:        top + i*2,
			Content:  line,
			Font:     font,
			Color:    core.Ink,
			Centered: true,
		})
	}
}

func (s *State) playFrame(f *render.Frame, now time.Time) {
	for _, c := range s.Board.Cards {
		shape := render.Shape{Kind: render.ShapeCircle, Rect: c.Rect, Color: c.Color}
		switch c.Face() {
		case board.FaceHidden:
			shape.Color = core.CardBack
		case board.FaceMatched:
			shape.Label = matchedLabel
		}
		f.Shapes = append(f.Shapes, shape)
	}

	f.Texts = append(f.Texts,
		render.Text{X: 1, Y: 0, Content: fmt.Sprintf("Score: %d", s.Score.CurrentScore), Font: render.FontTitle, Color: core.Ink},
		render.Text{X: 1, Y: 1, Content: fmt.Sprintf("Time: %d sec", s.Clock.Remaining()), Font: render.FontTitle, Color: core.Ink},
	)
	if s.Clock.PreviewActive() {
		left := int((s.Clock.PreviewLeft(now) + time.Second - 1) / time.Second)
		f.Texts = append(f.Texts, render.Text{
			Y:        2,
			Content:  fmt.Sprintf("Memorize the cards! %ds", left),
			Font:     render.FontTitle,
			Color:    core.Ink,
			Centered: true,
		})
	}
}

func (s *State) outcomeFrame(f *render.Frame) {
	var lines []string
	if s.Win {
		lines = []string{
			"You won!",
			fmt.Sprintf("Your score: %d.", s.Score.CurrentScore),
			"Play again?",
		}
	} else {
		lines = []string{
			"Time's up!",
			"Unfortunately, you lost.",
			fmt.Sprintf("Your score: %d.", s.Score.CurrentScore),
			"Play again?",
		}
	}

	top := s.Height/2 - len(lines)
	for i, line := range lines {
		font := render.FontBody
		if i == 0 {
			font = render.FontTitle
		}
		f.Texts = append(f.Texts, render.Text{Y: top + i*2, Content: line, Font: font, Color: core.Ink, Centered: true})
	}
	f.Texts = append(f.Texts, render.Text{
		Y:        s.Height - FooterRows - 1,
		Content:  "Press Y to play again or N to quit",
		Font:     render.FontHint,
		Color:    core.HintInk,
		Centered: true,
	})
}

// minutes formats seconds as minutes, e.g. 90 -> "1.5".
func minutes(seconds int) string {
	return strconv.FormatFloat(float64(seconds)/60, 'f', -1, 64)
}

func capitalize(word string) string {
	if len(word) == 0 {
		return word
	}
	return strings.ToUpper(string(word[0])) + word[1:]
}
