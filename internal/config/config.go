// Package config loads the game configuration from YAML with embedded
// defaults.
package config

import (
	"fmt"
	"time"

	"concentool/internal/audio"
	"concentool/internal/board"
)

// Config is the full game configuration.
type Config struct {
	FPS             int          `yaml:"fps"`
	PreviewSeconds  int          `yaml:"preview_seconds"`
	MismatchDelayMS int          `yaml:"mismatch_delay_ms"`
	Levels          LevelsConfig `yaml:"levels"`
	Audio           AudioConfig  `yaml:"audio"`
}

// LevelsConfig holds one entry per difficulty.
type LevelsConfig struct {
	Easy   LevelConfig `yaml:"easy"`
	Medium LevelConfig `yaml:"medium"`
	Hard   LevelConfig `yaml:"hard"`
}

// LevelConfig defines the grid and time limit of a difficulty.
type LevelConfig struct {
	Rows             int `yaml:"rows"`
	Cols             int `yaml:"cols"`
	CardWidth        int `yaml:"card_width"`
	CardHeight       int `yaml:"card_height"`
	TimeLimitSeconds int `yaml:"time_limit_seconds"`
}

// AudioConfig names the cue files and the command used to play them.
type AudioConfig struct {
	Victory string   `yaml:"victory"`
	Failure string   `yaml:"failure"`
	Command []string `yaml:"command"`
}

// Level returns the board spec for a difficulty.
func (c Config) Level(d board.Difficulty) board.LevelSpec {
	var l LevelConfig
	switch d {
	case board.Medium:
		l = c.Levels.Medium
	case board.Hard:
		l = c.Levels.Hard
	default:
		l = c.Levels.Easy
	}
	return board.LevelSpec{
		Rows:       l.Rows,
		Cols:       l.Cols,
		CardWidth:  l.CardWidth,
		CardHeight: l.CardHeight,
		TimeLimit:  l.TimeLimitSeconds,
	}
}

// Preview returns the preview window duration.
func (c Config) Preview() time.Duration {
	return time.Duration(c.PreviewSeconds) * time.Second
}

// MismatchDelay returns how long a mismatched pair stays visible.
func (c Config) MismatchDelay() time.Duration {
	return time.Duration(c.MismatchDelayMS) * time.Millisecond
}

// AudioPlayerConfig converts the audio section for the audio package.
func (c Config) AudioPlayerConfig() audio.Config {
	return audio.Config{
		Victory: c.Audio.Victory,
		Failure: c.Audio.Failure,
		Command: c.Audio.Command,
	}
}

// Validate checks every level and the timing values.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("config: fps must be positive, got %d", c.FPS)
	}
	if c.PreviewSeconds < 0 {
		return fmt.Errorf("config: preview_seconds must not be negative, got %d", c.PreviewSeconds)
	}
	if c.MismatchDelayMS < 0 {
		return fmt.Errorf("config: mismatch_delay_ms must not be negative, got %d", c.MismatchDelayMS)
	}
	for _, d := range board.Difficulties {
		l := c.Level(d)
		if err := l.Validate(); err != nil {
			return fmt.Errorf("config: level %s: %w", d, err)
		}
		if c.PreviewSeconds >= l.TimeLimit {
			return fmt.Errorf("config: level %s: preview_seconds (%d) must be shorter than the time limit (%d)",
				d, c.PreviewSeconds, l.TimeLimit)
		}
	}
	return nil
}
