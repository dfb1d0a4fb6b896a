package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/shapeclick/internal/config"
)

// loadQuizConfig resolves the quiz config from --config, --difficulty and --fps.
func loadQuizConfig() (config.QuizConfig, error) {
	cfg, err := config.LoadQuiz(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyQuizPreset(&cfg, preset)

	if flagFPS > 0 {
		cfg.Gameplay.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// newLogger builds the event logger. Without a file the bubble tea screen
// owns the terminal, so local play discards logs. The returned closer must
// be called on exit.
func newLogger(w io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	closer := func() error { return nil }
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("open log file: %w", openErr)
		}
		w, closer = f, f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "shapeclick",
		Level:           level,
	})
	return logger, closer, nil
}
