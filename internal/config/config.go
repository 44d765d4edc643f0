// Package config provides YAML-based session settings for the snake game:
// grid size, wall mode, speed and engine rules, with embedded defaults and
// speed presets.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// SnakeConfig contains all settings for a snake session.
type SnakeConfig struct {
	Grid     GridConfig  `yaml:"grid"`
	WallMode string      `yaml:"wall_mode"` // "normal", "wrap" or "obstacles"
	TickRate int         `yaml:"tick_rate"` // Moves per second
	Seed     int64       `yaml:"seed"`      // 0 = random based on time
	Rules    RulesConfig `yaml:"rules"`
	Player   string      `yaml:"player"` // Profile name shown in rankings
}

// GridConfig defines the play field size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// RulesConfig mirrors the engine rules.
type RulesConfig struct {
	MaxItems        int     `yaml:"max_items"`
	SpawnChance     float64 `yaml:"spawn_chance"`
	ObstacleDivisor int     `yaml:"obstacle_divisor"` // One obstacle per N cells
	SlowFactor      float64 `yaml:"slow_factor"`
}

// Limits accepted by Validate.
const (
	MinWidth    = 5
	MinHeight   = 5
	MaxSide     = 200
	MaxTickRate = 60
)

// Validate reports every problem with the config at once.
func (c SnakeConfig) Validate() error {
	var errs []error

	if c.Grid.Width < MinWidth || c.Grid.Width > MaxSide {
		errs = append(errs, fmt.Errorf("grid.width %d out of range [%d, %d]", c.Grid.Width, MinWidth, MaxSide))
	}
	if c.Grid.Height < MinHeight || c.Grid.Height > MaxSide {
		errs = append(errs, fmt.Errorf("grid.height %d out of range [%d, %d]", c.Grid.Height, MinHeight, MaxSide))
	}
	if _, err := core.ParseWallMode(c.WallMode); err != nil {
		errs = append(errs, err)
	}
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		errs = append(errs, fmt.Errorf("tick_rate %d out of range [1, %d]", c.TickRate, MaxTickRate))
	}
	if c.Rules.MaxItems < 0 {
		errs = append(errs, fmt.Errorf("rules.max_items %d must not be negative", c.Rules.MaxItems))
	}
	if c.Rules.SpawnChance < 0 || c.Rules.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("rules.spawn_chance %v out of range [0, 1]", c.Rules.SpawnChance))
	}
	if c.Rules.ObstacleDivisor <= 0 {
		errs = append(errs, fmt.Errorf("rules.obstacle_divisor %d must be positive", c.Rules.ObstacleDivisor))
	}
	if c.Rules.SlowFactor <= 0 || c.Rules.SlowFactor > 1 {
		errs = append(errs, fmt.Errorf("rules.slow_factor %v out of range (0, 1]", c.Rules.SlowFactor))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Engine converts the settings into an engine config. The wall mode must
// already be valid; unknown modes fall back to normal.
func (c SnakeConfig) Engine() snake.Config {
	mode, err := core.ParseWallMode(c.WallMode)
	if err != nil {
		mode = core.WallNormal
	}
	return snake.Config{
		Width:    c.Grid.Width,
		Height:   c.Grid.Height,
		WallMode: mode,
		TickRate: c.TickRate,
		Seed:     c.Seed,
		Rules: snake.Rules{
			MaxItems:        c.Rules.MaxItems,
			SpawnChance:     c.Rules.SpawnChance,
			ObstacleDivisor: c.Rules.ObstacleDivisor,
			SlowFactor:      c.Rules.SlowFactor,
		},
	}
}
