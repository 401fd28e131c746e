package scoring

// Scoring tracks the score of a single round.
type Scoring struct {
	CurrentScore  int
	MatchCount    int
	MismatchCount int

	scoreTable map[string]int
}

// NewScoring returns a zeroed score for a new round.
func NewScoring() *Scoring {
	return &Scoring{scoreTable: getScoreTable()}
}

// ScoreEvent updates the score based on a given game event.
func (s *Scoring) ScoreEvent(event string) {
	switch event {
	case "match":
		s.MatchCount++
	case "mismatch":
		s.MismatchCount++
	}
	s.CurrentScore += s.scoreTable[event]
}

// Reset clears the score for a new round.
func (s *Scoring) Reset() {
	s.CurrentScore = 0
	s.MatchCount = 0
	s.MismatchCount = 0
}

// getScoreTable returns the predefined values for different scoring events.
// Mismatches are counted but never cost points.
func getScoreTable() map[string]int {
	return map[string]int{
		"match":    10,
		"mismatch": 0,
	}
}
