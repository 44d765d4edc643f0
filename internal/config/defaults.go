package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:  30,
			Height: 20,
		},
		WallMode: "normal",
		TickRate: 10,
		Rules: RulesConfig{
			MaxItems:        3,
			SpawnChance:     0.3,
			ObstacleDivisor: 20,
			SlowFactor:      0.6,
		},
		Player: "Player",
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
