// concentool is a memory-matching card game for the terminal.
//
// Usage:
//
//	concentool               - Play
//	concentool levels        - Show the difficulty table
//
// Flags:
//
//	--config <path>    - Custom YAML config
//	--fps <rate>       - Tick rate (default: from config)
//	--seed <value>     - RNG seed for a reproducible deal
//	--log-file <path>  - Write logs to a file (default: discarded)
//	--mute             - Disable sound
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"concentool/internal/audio"
	"concentool/internal/board"
	"concentool/internal/config"
	"concentool/internal/game"
	"concentool/internal/state"
)

var (
	flagConfig  string
	flagFPS     int
	flagSeed    int64
	flagLogFile string
	flagMute    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "concentool",
	Short: "Match pairs of colored cards before the clock runs out",
	Long: `concentool is a memory game. Pick a level, memorize the cards during
the preview, then click two cards at a time to find every pair.

Controls:
  1/2/3         - Choose easy, medium or hard
  Mouse click   - Reveal a card
  Y/N           - Play again or quit after a round
  Q/Esc/Ctrl+C  - Quit`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runGame,
}

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Show the difficulty table",
	Args:  cobra.NoArgs,
	RunE:  runLevels,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	rootCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate in frames per second (0 = from config)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(levelsCmd)
}

func runGame(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var player audio.Player = audio.Nop{}
	if !flagMute {
		player = audio.New(cfg.AudioPlayerConfig(), logger)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	logger.Info("starting", "fps", cfg.FPS, "seed", seed, "width", width, "height", height)

	g := game.NewGame(state.Options{
		Config: cfg,
		Rand:   rand.New(rand.NewSource(seed)),
		Audio:  player,
		Logger: logger,
		Width:  width,
		Height: height,
	})

	p := tea.NewProgram(newModel(g, cfg.FPS, width, height), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running the program: %w", err)
	}

	logger.Info("finished", "rounds", g.Session.Rounds, "wins", g.Session.Wins)
	return nil
}

func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "concentool",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

func runLevels(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s %-8s %-6s %-6s %s\n", "Key", "Level", "Grid", "Pairs", "Time")
	fmt.Fprintf(out, "  %-3s %-8s %-6s %-6s %s\n", "---", "-----", "----", "-----", "----")
	for i, d := range board.Difficulties {
		spec := cfg.Level(d)
		fmt.Fprintf(out, "  %-3d %-8s %-6s %-6d %ds\n",
			i+1, d, fmt.Sprintf("%dx%d", spec.Rows, spec.Cols), spec.Pairs(), spec.TimeLimit)
	}
	return nil
}
