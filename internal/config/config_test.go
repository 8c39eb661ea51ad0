package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := parse(defaultDebrisYAML)
	if err != nil {
		t.Fatalf("embedded default failed to parse: %v", err)
	}

	if cfg != Default() {
		t.Errorf("embedded default %+v does not match Default() %+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Default() should validate, got %v", err)
	}
}

func TestValidateRejectsBadConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"tiny grid", func(c *Config) { c.Grid.Width = 10 }},
		{"zero capacity", func(c *Config) { c.Pool.Capacity = 0 }},
		{"score column outside grid", func(c *Config) { c.Scoring.ScoreColumn = 200 }},
		{"zero spawn interval", func(c *Config) { c.Difficulty.Hard.SpawnInterval = 0 }},
		{"empty speed range", func(c *Config) { c.Difficulty.Easy.SpeedMax = c.Difficulty.Easy.SpeedMin }},
		{"zero speed min", func(c *Config) { c.Difficulty.Medium.SpeedMin = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate() should have failed")
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")

	yaml := `
grid:
  width: 60
  height: 20
pool:
  capacity: 30
scoring:
  score_column: 12
difficulty:
  easy: {spawn_interval: 20, speed_min: 5, speed_max: 10}
  medium: {spawn_interval: 10, speed_min: 3, speed_max: 7}
  hard: {spawn_interval: 4, speed_min: 1, speed_max: 3}
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Grid.Width != 60 || cfg.Grid.Height != 20 {
		t.Errorf("grid = %dx%d, expected 60x20", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Pool.Capacity != 30 {
		t.Errorf("capacity = %d, expected 30", cfg.Pool.Capacity)
	}
	if cfg.Difficulty.Hard.SpawnInterval != 4 {
		t.Errorf("hard spawn_interval = %d, expected 4", cfg.Difficulty.Hard.SpawnInterval)
	}
}

func TestLoadMissingCustomPathFails(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", "", false},
		{"easy", PresetEasy, false},
		{"medium", PresetMedium, false},
		{"normal", PresetMedium, false},
		{"hard", PresetHard, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		got, err := ParsePreset(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParsePreset(%q) should fail", tc.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.expected)
		}
	}
}
