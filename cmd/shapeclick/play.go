package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/shapeclick/internal/core"
	"github.com/vovakirdan/shapeclick/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the quiz in this terminal",
	Long: `Start a local game. Your terminal needs mouse support.

Controls:
  Left click   - Pick a shape (or start again after game over)
  R/Enter      - Play again (after game over)
  Ctrl+S       - Save a text screenshot to ~/.shapeclick/screenshots
  Q/Esc        - Quit

Difficulty options:
  easy   - 30 seconds, longer pause between rounds
  normal - 20 seconds, 10 points to win
  hard   - 15 seconds, short pause, 12 points to win

Examples:
  shapeclick play
  shapeclick play --difficulty easy
  shapeclick play --seed 42 --log-file quiz.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	quizCfg, err := loadQuizConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig(quizCfg.Gameplay.TickRate, int(os.Stdout.Fd()))

	runErr := tui.Run(quizCfg, cfg, tui.Options{Logger: logger})

	//nolint:errcheck // Best-effort close, nothing left to report to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the board from the terminal behind fd, falling back to
// the 80x24 defaults when it is not a terminal.
func runtimeConfig(tickRate, fd int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(fd); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = tickRate
	cfg.Seed = flagSeed
	return cfg
}
