package config

import (
	_ "embed"
)

//go:embed defaults/debris.yaml
var defaultDebrisYAML []byte

// Default returns the built-in configuration.
// It mirrors defaults/debris.yaml and is used if the embedded YAML
// somehow fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  80,
			Height: 25,
		},
		Pool: PoolConfig{
			Capacity: 40,
		},
		Scoring: ScoringConfig{
			ScoreColumn: 18,
		},
		Difficulty: DifficultyTable{
			Easy: DifficultyParams{
				SpawnInterval: 14,
				SpeedMin:      4,
				SpeedMax:      9,
			},
			Medium: DifficultyParams{
				SpawnInterval: 9,
				SpeedMin:      2,
				SpeedMax:      6,
			},
			Hard: DifficultyParams{
				SpawnInterval: 5,
				SpeedMin:      1,
				SpeedMax:      4,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultDebrisYAML
}
