package board

import (
	"fmt"
	"strings"
)

// Difficulty selects the grid size and the time limit of a round.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every difficulty in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseDifficulty accepts a difficulty name or its menu digit ("1".."3").
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy", "1":
		return Easy, nil
	case "medium", "2":
		return Medium, nil
	case "hard", "3":
		return Hard, nil
	}
	return Easy, fmt.Errorf("unknown difficulty %q", s)
}

// LevelSpec describes the board and time limit of one difficulty.
type LevelSpec struct {
	Rows       int
	Cols       int
	CardWidth  int
	CardHeight int
	TimeLimit  int // seconds
}

// Pairs returns the number of color pairs on the board.
func (l LevelSpec) Pairs() int {
	return l.Rows * l.Cols / 2
}

// Validate rejects grids that cannot hold an even pairing.
func (l LevelSpec) Validate() error {
	if l.Rows <= 0 || l.Cols <= 0 {
		return fmt.Errorf("grid must be positive, got %dx%d", l.Rows, l.Cols)
	}
	if (l.Rows*l.Cols)%2 != 0 {
		return fmt.Errorf("grid %dx%d has an odd number of cards", l.Rows, l.Cols)
	}
	if l.CardWidth <= 0 || l.CardHeight <= 0 {
		return fmt.Errorf("card size must be positive, got %dx%d", l.CardWidth, l.CardHeight)
	}
	if l.TimeLimit <= 0 {
		return fmt.Errorf("time limit must be positive, got %d", l.TimeLimit)
	}
	return nil
}
