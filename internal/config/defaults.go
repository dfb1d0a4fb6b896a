package config

import (
	_ "embed"
)

//go:embed defaults/quiz.yaml
var defaultQuizYAML []byte

// DefaultQuizConfig returns the default shape quiz configuration.
func DefaultQuizConfig() QuizConfig {
	return QuizConfig{
		Gameplay: QuizGameplay{
			WinScore:       10,
			MaxTimeSeconds: 20,
			TickRate:       60,
			PauseTicks:     30,
		},
		Shapes: QuizShapes{
			SmallSize: 200,
			LargeSize: 300,
		},
		Layout: QuizLayout{
			ViewWidth:       1280,
			ViewHeight:      720,
			RowStartX:       240,
			RowSpacing:      300,
			RowY:            100,
			HintOffsetY:     20,
			DecoyY:          350,
			PromptY:         520,
			ClueY:           500,
			FeedbackY:       220,
			FeedbackOffsetX: 10,
			FeedbackSize:    10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultQuizYAML
}
