package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal or hard)", ErrInvalid, s)
	}
}

// ApplyQuizPreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplyQuizPreset(cfg *QuizConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.MaxTimeSeconds = 30
		cfg.Gameplay.PauseTicks = 45
	case DifficultyHard:
		cfg.Gameplay.MaxTimeSeconds = 15
		cfg.Gameplay.PauseTicks = 20
		cfg.Gameplay.WinScore = 12
	}
}
