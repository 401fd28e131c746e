package scoring

import (
	"testing"
	"time"
)

// TestScoreEvent checks that game events modify the score and counters.
func TestScoreEvent(t *testing.T) {
	s := NewScoring()

	s.ScoreEvent("match")
	if s.CurrentScore != 10 {
		t.Errorf("match: expected score 10, got %d", s.CurrentScore)
	}
	if s.MatchCount != 1 {
		t.Errorf("match: expected match count 1, got %d", s.MatchCount)
	}

	s.ScoreEvent("mismatch")
	if s.CurrentScore != 10 {
		t.Errorf("mismatch: expected score to stay 10, got %d", s.CurrentScore)
	}
	if s.MismatchCount != 1 {
		t.Errorf("mismatch: expected mismatch count 1, got %d", s.MismatchCount)
	}

	s.ScoreEvent("unknown")
	if s.CurrentScore != 10 {
		t.Errorf("unknown event should not change score, got %d", s.CurrentScore)
	}

	s.Reset()
	if s.CurrentScore != 0 || s.MatchCount != 0 || s.MismatchCount != 0 {
		t.Errorf("Reset should zero everything, got %+v", s)
	}
}

func TestScoreHistory_Record(t *testing.T) {
	var h ScoreHistory
	now := time.Now()

	if !h.Record(ScoreHistoryEntry{Difficulty: "easy", Score: 40, Timestamp: now}) {
		t.Error("first non-zero score should be a best")
	}
	if h.Record(ScoreHistoryEntry{Difficulty: "easy", Score: 30, Timestamp: now}) {
		t.Error("lower score should not be a best")
	}
	if h.Record(ScoreHistoryEntry{Difficulty: "easy", Score: 40, Timestamp: now}) {
		t.Error("tying score should not be a best")
	}
	if !h.Record(ScoreHistoryEntry{Difficulty: "easy", Score: 80, Won: true, Timestamp: now}) {
		t.Error("higher score should be a best")
	}
	if h.Record(ScoreHistoryEntry{Difficulty: "hard", Score: 0, Timestamp: now}) {
		t.Error("zero score should never be a best")
	}

	best, ok := h.HighScore("easy")
	if !ok || best.Score != 80 || !best.Won {
		t.Errorf("expected easy high score 80 (won), got %+v", best)
	}
	if _, ok := h.HighScore("medium"); ok {
		t.Error("expected no medium high score")
	}
	if h.Attempts("easy") != 4 {
		t.Errorf("expected 4 easy attempts, got %d", h.Attempts("easy"))
	}
}

func TestGetNScoreEntries(t *testing.T) {
	h := ScoreHistory{Entries: []ScoreHistoryEntry{
		{Difficulty: "easy", Score: 10},
		{Difficulty: "hard", Score: 999},
		{Difficulty: "easy", Score: 30},
		{Difficulty: "easy", Score: 20},
	}}

	entries := h.GetNScoreEntries("easy", 2)
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Score != 30 || entries[1].Score != 20 {
		t.Errorf("expected [30 20], got [%d %d]", entries[0].Score, entries[1].Score)
	}

	if all := h.GetNScoreEntries("easy", 10); len(all) != 3 {
		t.Errorf("expected all 3 easy entries, got %d", len(all))
	}
}
