package state

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/looplab/fsm"

	"concentool/internal/audio"
	"concentool/internal/board"
	"concentool/internal/clock"
	"concentool/internal/config"
	"concentool/internal/core"
	"concentool/internal/match"
	"concentool/internal/scoring"
)

// FSM states.
const (
	LevelSelect = "levelSelect"
	Playing     = "playing"
	Won         = "won"
	Lost        = "lost"
	Exit        = "exit"
)

// Screen rows reserved above and below the board. The HUD holds the score,
// the time and the preview banner, one row each.
const (
	HUDRows    = 3
	FooterRows = 1
)

// Click is a pointer press in screen cells.
type Click struct {
	X, Y int
}

// Options configures a State. Zero values fall back to defaults.
type Options struct {
	Config config.Config
	Rand   *rand.Rand
	Audio  audio.Player
	Logger *log.Logger
	Width  int
	Height int
}

// State owns everything that belongs to a round. It is only mutated from
// the caller's update loop.
type State struct {
	FSM        *fsm.FSM
	Difficulty board.Difficulty
	Board      *board.Board
	Engine     *match.Engine
	Clock      *clock.RoundClock
	Score      *scoring.Scoring
	RoundID    string
	Win        bool // To determine if the user has won
	Loss       bool // To determine if the user ran out of time
	Width      int
	Height     int

	cfg    config.Config
	rng    *rand.Rand
	audio  audio.Player
	logger *log.Logger
}

// NewState returns a state waiting for a level to be chosen.
func NewState(opts Options) *State {
	if opts.Config.FPS == 0 {
		opts.Config = config.Default()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		opts.Width, opts.Height = 80, 24
	}

	s := &State{
		Clock:  clock.New(opts.Config.Preview()),
		Score:  scoring.NewScoring(),
		Width:  opts.Width,
		Height: opts.Height,
		cfg:    opts.Config,
		rng:    opts.Rand,
		audio:  opts.Audio,
		logger: opts.Logger,
	}

	s.FSM = fsm.NewFSM(
		LevelSelect,
		getStateTransitions(),
		getStateCallbacks(s),
	)

	return s
}

func getStateTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "chooseLevel", Src: []string{LevelSelect}, Dst: Playing},
		{Name: "win", Src: []string{Playing}, Dst: Won},
		{Name: "expire", Src: []string{Playing}, Dst: Lost},
		{Name: "restart", Src: []string{Won, Lost}, Dst: LevelSelect},
		{Name: "quit", Src: []string{LevelSelect, Playing, Won, Lost}, Dst: Exit},
	}
}

func getStateCallbacks(s *State) map[string]fsm.Callback {
	return fsm.Callbacks{
		"before_chooseLevel": func(_ context.Context, e *fsm.Event) {
			d, now, err := levelArgs(e.Args)
			if err != nil {
				e.Cancel(err)
				return
			}
			spec := s.cfg.Level(d)
			b, err := board.Generate(spec, s.BoardArea(), s.rng)
			if err != nil {
				e.Cancel(err)
				return
			}
			s.Difficulty = d
			s.Board = b
			s.Score.Reset()
			s.Engine = match.NewEngine(b, s.Score, s.cfg.MismatchDelay())
			s.Clock.Start(now, spec.TimeLimit)
			s.RoundID = uuid.NewString()
		},
		"enter_playing": func(_ context.Context, e *fsm.Event) {
			if s.Clock.PreviewActive() {
				s.Board.SetHidden(false)
			}
			s.logger.Info("round started",
				"round", s.RoundID,
				"difficulty", s.Difficulty,
				"cards", len(s.Board.Cards),
				"time_limit", s.Clock.Limit())
		},
		"enter_won": func(_ context.Context, e *fsm.Event) {
			s.Win = true
			s.Engine.Freeze()
			s.audio.Play(audio.CueVictory)
			s.logger.Info("round won", "round", s.RoundID, "score", s.Score.CurrentScore, "remaining", s.Clock.Remaining())
		},
		"enter_lost": func(_ context.Context, e *fsm.Event) {
			s.Loss = true
			s.Engine.Flush()
			s.Engine.Freeze()
			s.audio.Play(audio.CueFailure)
			s.logger.Info("round lost", "round", s.RoundID, "score", s.Score.CurrentScore, "matches", s.Score.MatchCount)
		},
		"enter_levelSelect": func(_ context.Context, e *fsm.Event) {
			s.reset()
		},
		"enter_exit": func(_ context.Context, e *fsm.Event) {
			s.logger.Debug("quit requested", "from", e.Src)
		},
	}
}

func levelArgs(args []interface{}) (board.Difficulty, time.Time, error) {
	if len(args) != 2 {
		return 0, time.Time{}, fmt.Errorf("chooseLevel expects 2 arguments, got %d", len(args))
	}
	d, ok := args[0].(board.Difficulty)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("chooseLevel: bad difficulty %v", args[0])
	}
	now, ok := args[1].(time.Time)
	if !ok {
		return 0, time.Time{}, fmt.Errorf("chooseLevel: bad time %v", args[1])
	}
	return d, now, nil
}

// reset drops the round so the next one starts from scratch.
func (s *State) reset() {
	s.Board = nil
	s.Engine = nil
	s.Score.Reset()
	s.Clock = clock.New(s.cfg.Preview())
	s.RoundID = ""
	s.Win = false
	s.Loss = false
}

// ChooseLevel starts a round at difficulty d with the clock started at now.
func (s *State) ChooseLevel(d board.Difficulty, now time.Time) error {
	return s.event("chooseLevel", d, now)
}

// Restart returns to level selection after a finished round.
func (s *State) Restart() error {
	return s.event("restart")
}

// Quit moves to the exit state from anywhere.
func (s *State) Quit() error {
	return s.event("quit")
}

func (s *State) event(name string, args ...interface{}) error {
	err := s.FSM.Event(context.Background(), name, args...)
	var canceled fsm.CanceledError
	if errors.As(err, &canceled) && canceled.Err != nil {
		return canceled.Err
	}
	return err
}

// Step advances a round by one frame. Clicks are applied in order.
func (s *State) Step(now time.Time, clicks []Click) {
	if !s.FSM.Is(Playing) {
		return
	}

	if s.Clock.Tick(now) {
		s.Board.SetHidden(true)
	}
	if s.Clock.PreviewActive() {
		s.Board.SetHidden(false)
	}

	s.Engine.Tick(now)
	for _, c := range clicks {
		if i := s.Board.HitTest(c.X, c.Y); i >= 0 {
			s.Engine.TrySelect(i)
		}
	}
	if res := s.Engine.Resolve(now); res != match.ResultNone {
		s.logger.Debug("pair resolved", "round", s.RoundID, "result", res, "score", s.Score.CurrentScore)
	}

	switch {
	case s.Engine.IsWon():
		s.transition("win")
	case s.Clock.Expired():
		s.transition("expire")
	}
}

func (s *State) transition(name string) {
	if err := s.event(name); err != nil {
		s.logger.Debug("transition rejected", "event", name, "state", s.FSM.Current(), "error", err)
	}
}

// GameOver reports whether the round has ended.
func (s *State) GameOver() bool {
	return s.Win || s.Loss
}

// Resize records a new screen size and re-centers the board.
func (s *State) Resize(width, height int) {
	s.Width, s.Height = width, height
	if s.Board != nil {
		s.Board.Relayout(s.BoardArea())
	}
}

// BoardArea is the part of the screen the board is centered in.
func (s *State) BoardArea() core.Rect {
	h := s.Height - HUDRows - FooterRows
	if h < 0 {
		h = 0
	}
	return core.NewRect(0, HUDRows, s.Width, h)
}
