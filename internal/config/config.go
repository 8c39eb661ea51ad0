// Package config provides YAML-based game configuration loading and the
// difficulty parameter table for the space debris game.
package config

import "fmt"

// Config contains all tunable parameters for the game.
type Config struct {
	Grid       GridConfig      `yaml:"grid"`
	Pool       PoolConfig      `yaml:"pool"`
	Scoring    ScoringConfig   `yaml:"scoring"`
	Difficulty DifficultyTable `yaml:"difficulty"`
}

// GridConfig defines the fixed logical play field.
// The simulation always runs on this grid regardless of terminal size;
// the platform clips rendering to the visible area.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PoolConfig defines the debris pool limits.
type PoolConfig struct {
	// Capacity bounds the number of concurrently live debris.
	// Spawns beyond capacity are silently dropped.
	Capacity int `yaml:"capacity"`
}

// ScoringConfig defines scoring parameters.
type ScoringConfig struct {
	// ScoreColumn is the column at which a passing debris awards one point.
	ScoreColumn int `yaml:"score_column"`
}

// DifficultyTable holds the per-tier spawn parameters.
type DifficultyTable struct {
	Easy   DifficultyParams `yaml:"easy"`
	Medium DifficultyParams `yaml:"medium"`
	Hard   DifficultyParams `yaml:"hard"`
}

// DifficultyParams are the spawn-scheduling parameters of one tier.
// Lower interval and lower speed bounds mean harder: more frequent,
// faster debris. Speed is a tick-delay, so a smaller value is faster.
type DifficultyParams struct {
	SpawnInterval int `yaml:"spawn_interval"` // Ticks between spawn attempts
	SpeedMin      int `yaml:"speed_min"`      // Inclusive lower speed bound
	SpeedMax      int `yaml:"speed_max"`      // Exclusive upper speed bound
}

// Validate checks that a loaded config is playable.
func (c Config) Validate() error {
	if c.Grid.Width < 40 || c.Grid.Height < 10 {
		return fmt.Errorf("config: grid %dx%d too small", c.Grid.Width, c.Grid.Height)
	}
	if c.Pool.Capacity < 1 {
		return fmt.Errorf("config: pool capacity must be positive, got %d", c.Pool.Capacity)
	}
	if c.Scoring.ScoreColumn < 1 || c.Scoring.ScoreColumn >= c.Grid.Width {
		return fmt.Errorf("config: score column %d outside grid", c.Scoring.ScoreColumn)
	}
	for _, tier := range []struct {
		name   string
		params DifficultyParams
	}{
		{"easy", c.Difficulty.Easy},
		{"medium", c.Difficulty.Medium},
		{"hard", c.Difficulty.Hard},
	} {
		p := tier.params
		if p.SpawnInterval < 1 {
			return fmt.Errorf("config: %s spawn_interval must be positive, got %d", tier.name, p.SpawnInterval)
		}
		if p.SpeedMin < 1 || p.SpeedMax <= p.SpeedMin {
			return fmt.Errorf("config: %s speed range [%d, %d) invalid", tier.name, p.SpeedMin, p.SpeedMax)
		}
	}
	return nil
}

// DifficultyPreset represents a named starting difficulty for the CLI.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetMedium DifficultyPreset = "medium"
	PresetHard   DifficultyPreset = "hard"
)

// ParsePreset maps a CLI flag value to a preset.
// An empty string means no preset (title screen picks the tier).
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", PresetEasy, PresetMedium, PresetHard:
		return DifficultyPreset(s), nil
	case "normal": // common alias
		return PresetMedium, nil
	}
	return "", fmt.Errorf("config: unknown difficulty preset %q", s)
}
