package config

import (
	_ "embed"
)

//go:embed defaults/concentool.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		FPS:             60,
		PreviewSeconds:  10,
		MismatchDelayMS: 500,
		Levels: LevelsConfig{
			Easy:   LevelConfig{Rows: 4, Cols: 4, CardWidth: 12, CardHeight: 5, TimeLimitSeconds: 90},
			Medium: LevelConfig{Rows: 4, Cols: 6, CardWidth: 10, CardHeight: 4, TimeLimitSeconds: 180},
			Hard:   LevelConfig{Rows: 4, Cols: 8, CardWidth: 9, CardHeight: 4, TimeLimitSeconds: 270},
		},
		Audio: AudioConfig{
			Victory: "sounds/victory.mp3",
			Failure: "sounds/failure.mp3",
			Command: []string{"paplay"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
