package game

import (
	"time"

	"concentool/internal/scoring"
	"concentool/internal/state"
)

// Session tracks the rounds played since the program started.
type Session struct {
	History scoring.ScoreHistory
	Rounds  int
	Wins    int

	lastRound string
	newBest   bool
}

func NewSession() *Session {
	return &Session{}
}

// Update records the current round once it is over. Calling it again for
// the same round does nothing.
func (s *Session) Update(st *state.State, now time.Time) {
	if !st.GameOver() || st.RoundID == "" || st.RoundID == s.lastRound {
		return
	}
	s.lastRound = st.RoundID
	s.Rounds++
	if st.Win {
		s.Wins++
	}
	s.newBest = s.History.Record(scoring.ScoreHistoryEntry{
		RoundID:    st.RoundID,
		Difficulty: st.Difficulty.String(),
		Won:        st.Win,
		Score:      st.Score.CurrentScore,
		Timestamp:  now,
	})
}

// NewBest reports whether the last recorded round beat every earlier round
// at its difficulty.
func (s *Session) NewBest() bool {
	return s.newBest
}
