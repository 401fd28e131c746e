// Package audio plays the victory and failure cues of a round. Missing
// sound files never stop the game: the player degrades to a no-op.
package audio

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/log"
)

// Cue identifies a sound.
type Cue int

const (
	CueVictory Cue = iota
	CueFailure
)

func (c Cue) String() string {
	switch c {
	case CueVictory:
		return "victory"
	case CueFailure:
		return "failure"
	default:
		return "unknown"
	}
}

// Player plays cues without blocking the caller.
type Player interface {
	Play(cue Cue)
}

// Nop is a Player that stays silent.
type Nop struct{}

// Play does nothing.
func (Nop) Play(Cue) {}

// Config names the sound files and the external command that plays them.
type Config struct {
	Victory string
	Failure string
	Command []string // e.g. ["paplay"]; the file path is appended
}

// CommandPlayer plays cues by starting an external audio player.
type CommandPlayer struct {
	files   map[Cue]string
	command []string
	logger  *log.Logger
	start   func(name string, args ...string) error
}

// New returns a CommandPlayer for the cues whose files exist. When no cue
// can be played it logs why and returns Nop.
func New(cfg Config, logger *log.Logger) Player {
	p, err := newCommandPlayer(cfg, logger)
	if err != nil {
		logger.Warn("continuing without sound", "reason", err)
		return Nop{}
	}
	return p
}

func newCommandPlayer(cfg Config, logger *log.Logger) (*CommandPlayer, error) {
	if len(cfg.Command) == 0 {
		return nil, errors.New("no audio command configured")
	}
	if _, err := exec.LookPath(cfg.Command[0]); err != nil {
		return nil, fmt.Errorf("audio command %q not found: %w", cfg.Command[0], err)
	}

	files := map[Cue]string{}
	for cue, path := range map[Cue]string{CueVictory: cfg.Victory, CueFailure: cfg.Failure} {
		if path == "" {
			continue
		}
		if _, err := os.Stat(path); err != nil {
			logger.Warn("sound file not found", "cue", cue, "path", path)
			continue
		}
		files[cue] = path
	}
	if len(files) == 0 {
		return nil, errors.New("no sound files found")
	}

	return &CommandPlayer{
		files:   files,
		command: cfg.Command,
		logger:  logger,
		start:   startDetached,
	}, nil
}

// Play starts the audio command for the cue and returns immediately.
// Cues without a file are skipped.
func (p *CommandPlayer) Play(cue Cue) {
	path, ok := p.files[cue]
	if !ok {
		return
	}
	args := append(append([]string(nil), p.command[1:]...), path)
	if err := p.start(p.command[0], args...); err != nil {
		p.logger.Warn("could not play sound", "cue", cue, "error", err)
	}
}

// startDetached starts the process and reaps it in the background.
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
