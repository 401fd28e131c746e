package scoring

import (
	"sort"
	"time"
)

// ScoreHistory keeps the finished rounds of the current process.
// Nothing is written to disk; a new process starts with an empty history.
type ScoreHistory struct {
	Entries []ScoreHistoryEntry
}

// ScoreHistoryEntry is one finished round.
type ScoreHistoryEntry struct {
	RoundID    string
	Difficulty string
	Won        bool
	Score      int
	Timestamp  time.Time
}

// Record appends a finished round and reports whether it set a new best
// score for its difficulty. A zero score never counts as a best.
func (sh *ScoreHistory) Record(entry ScoreHistoryEntry) bool {
	prev, hadPrev := sh.HighScore(entry.Difficulty)
	sh.Entries = append(sh.Entries, entry)
	if entry.Score == 0 {
		return false
	}
	return !hadPrev || entry.Score > prev.Score
}

// HighScore returns the best round recorded for the difficulty.
func (sh ScoreHistory) HighScore(difficulty string) (ScoreHistoryEntry, bool) {
	var best ScoreHistoryEntry
	found := false
	for _, e := range sh.Entries {
		if e.Difficulty != difficulty {
			continue
		}
		if !found || e.Score > best.Score {
			best = e
			found = true
		}
	}
	return best, found
}

// GetNScoreEntries returns the top N entries for the difficulty, best first.
func (sh ScoreHistory) GetNScoreEntries(difficulty string, n int) []ScoreHistoryEntry {
	var filtered []ScoreHistoryEntry
	for _, e := range sh.Entries {
		if e.Difficulty == difficulty {
			filtered = append(filtered, e)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	if len(filtered) < n {
		return filtered
	}
	return filtered[:n]
}

// Attempts returns how many rounds were played at the difficulty.
func (sh ScoreHistory) Attempts(difficulty string) int {
	n := 0
	for _, e := range sh.Entries {
		if e.Difficulty == difficulty {
			n++
		}
	}
	return n
}
