package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg QuizConfig
	if err := yaml.Unmarshal(GetDefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultQuizConfig() {
		t.Errorf("embedded defaults drifted from DefaultQuizConfig():\n got %+v\nwant %+v", cfg, DefaultQuizConfig())
	}
}

func TestDefaultMaxTicks(t *testing.T) {
	if got := DefaultQuizConfig().MaxTicks(); got != 1200 {
		t.Errorf("MaxTicks() = %d, expected 1200 (20s at 60)", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*QuizConfig)
		valid  bool
	}{
		{"defaults", func(*QuizConfig) {}, true},
		{"zero win score", func(c *QuizConfig) { c.Gameplay.WinScore = 0 }, false},
		{"negative time", func(c *QuizConfig) { c.Gameplay.MaxTimeSeconds = -1 }, false},
		{"zero tick rate", func(c *QuizConfig) { c.Gameplay.TickRate = 0 }, false},
		{"zero small size", func(c *QuizConfig) { c.Shapes.SmallSize = 0 }, false},
		{"overlapping row", func(c *QuizConfig) { c.Layout.RowSpacing = 100 }, false},
		{"decoy over row", func(c *QuizConfig) { c.Layout.DecoyY = 250 }, false},
		{"decoy just above row", func(c *QuizConfig) { c.Layout.DecoyY = 300 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultQuizConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoadQuizFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, err := LoadQuiz("")
	if err != nil {
		t.Fatalf("LoadQuiz() failed: %v", err)
	}
	if cfg != DefaultQuizConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadQuizCustomPathPartial(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "mine.yaml")
	data := []byte("gameplay:\n  win_score: 3\n  pause_ticks: 5\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuiz(path)
	if err != nil {
		t.Fatalf("LoadQuiz() failed: %v", err)
	}
	if cfg.Gameplay.WinScore != 3 || cfg.Gameplay.PauseTicks != 5 {
		t.Errorf("overrides not applied: %+v", cfg.Gameplay)
	}
	if cfg.Gameplay.MaxTimeSeconds != 20 || cfg.Shapes.SmallSize != 200 {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadQuizCustomPathErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadQuiz(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("gameplay: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadQuiz(bad); err == nil {
		t.Error("malformed custom config should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("shapes:\n  small_size: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadQuiz(invalid); !errors.Is(err, ErrInvalid) {
		t.Errorf("invalid custom config should wrap ErrInvalid, got %v", err)
	}
}

func TestLoadQuizLocalConfigsDir(t *testing.T) {
	dir := isolate(t)
	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	data := []byte("gameplay:\n  max_time_seconds: 7\n")
	if err := os.WriteFile(filepath.Join(dir, "configs", "quiz.yaml"), data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadQuiz("")
	if err != nil {
		t.Fatalf("LoadQuiz() failed: %v", err)
	}
	if cfg.Gameplay.MaxTimeSeconds != 7 {
		t.Errorf("local config not picked up: %+v", cfg.Gameplay)
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"normal", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"hard", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestApplyQuizPreset(t *testing.T) {
	normal := DefaultQuizConfig()
	ApplyQuizPreset(&normal, DifficultyNormal)
	if normal != DefaultQuizConfig() {
		t.Error("normal preset should not change the config")
	}

	easy := DefaultQuizConfig()
	ApplyQuizPreset(&easy, DifficultyEasy)
	if easy.Gameplay.MaxTimeSeconds <= normal.Gameplay.MaxTimeSeconds {
		t.Error("easy should allow more time")
	}

	hard := DefaultQuizConfig()
	ApplyQuizPreset(&hard, DifficultyHard)
	if hard.Gameplay.MaxTimeSeconds >= normal.Gameplay.MaxTimeSeconds {
		t.Error("hard should allow less time")
	}
	if hard.Gameplay.WinScore <= normal.Gameplay.WinScore {
		t.Error("hard should need a higher score")
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced invalid config: %v", err)
	}
}
