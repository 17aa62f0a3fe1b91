// Package config provides YAML-based tuning configuration for the game.
// Shipped defaults give the intended balance; a custom file can override
// them for experimentation.
package config

import "fmt"

// Config contains all tuning parameters for the pursuit game.
type Config struct {
	Grid  GridConfig  `yaml:"grid"`
	Snake SnakeConfig `yaml:"snake"`
	Food  FoodConfig  `yaml:"food"`
}

// GridConfig defines the arena geometry. All lengths are in logical units;
// positions on the grid are multiples of cell_size.
type GridConfig struct {
	CellSize   int `yaml:"cell_size"`
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	ShrinkStep int `yaml:"shrink_step"` // Subtracted from each side per food eaten
	MinSize    int `yaml:"min_size"`    // Floor for both dimensions
}

// SnakeConfig defines the snake's timing parameters.
type SnakeConfig struct {
	BaseIntervalMs  int     `yaml:"base_interval_ms"`
	MinIntervalMs   int     `yaml:"min_interval_ms"`
	SpeedGainMs     int     `yaml:"speed_gain_ms"` // Interval reduction per food eaten
	BoostDurationMs int     `yaml:"boost_duration_ms"`
	BoostFactor     float64 `yaml:"boost_factor"` // Fraction of base interval while boosted
}

// FoodConfig defines the food agent's behavior parameters.
type FoodConfig struct {
	IntervalMs   int              `yaml:"interval_ms"`
	FleeDistance int              `yaml:"flee_distance"`
	Reward       int              `yaml:"reward"`
	LongEscape   LongEscapeConfig `yaml:"long_escape"`
}

// LongEscapeConfig defines the rare board-wide relocation.
type LongEscapeConfig struct {
	MaxPerSession int     `yaml:"max_per_session"`
	MinChaseMs    int     `yaml:"min_chase_ms"` // Chase duration window start
	MaxChaseMs    int     `yaml:"max_chase_ms"` // Chase duration window end
	Chance        float64 `yaml:"chance"`       // Draw probability per food tick
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	g := c.Grid
	if g.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %d", g.CellSize)
	}
	for name, v := range map[string]int{
		"width": g.Width, "height": g.Height,
		"shrink_step": g.ShrinkStep, "min_size": g.MinSize,
	} {
		if v <= 0 {
			return fmt.Errorf("config: grid %s must be positive, got %d", name, v)
		}
		if v%g.CellSize != 0 {
			return fmt.Errorf("config: grid %s (%d) must be a multiple of cell_size (%d)", name, v, g.CellSize)
		}
	}
	if g.MinSize > g.Width || g.MinSize > g.Height {
		return fmt.Errorf("config: min_size (%d) exceeds initial arena %dx%d", g.MinSize, g.Width, g.Height)
	}

	s := c.Snake
	if s.MinIntervalMs <= 0 || s.BaseIntervalMs < s.MinIntervalMs {
		return fmt.Errorf("config: snake intervals invalid (base %dms, min %dms)", s.BaseIntervalMs, s.MinIntervalMs)
	}
	if s.SpeedGainMs < 0 {
		return fmt.Errorf("config: speed_gain_ms must not be negative, got %d", s.SpeedGainMs)
	}
	if s.BoostFactor <= 0 || s.BoostFactor > 1 {
		return fmt.Errorf("config: boost_factor must be in (0, 1], got %v", s.BoostFactor)
	}
	if s.BoostDurationMs < 0 {
		return fmt.Errorf("config: boost_duration_ms must not be negative, got %d", s.BoostDurationMs)
	}

	f := c.Food
	if f.IntervalMs <= 0 {
		return fmt.Errorf("config: food interval_ms must be positive, got %d", f.IntervalMs)
	}
	if f.FleeDistance < 0 {
		return fmt.Errorf("config: flee_distance must not be negative, got %d", f.FleeDistance)
	}
	le := f.LongEscape
	if le.MaxPerSession < 0 {
		return fmt.Errorf("config: long_escape max_per_session must not be negative, got %d", le.MaxPerSession)
	}
	if le.MinChaseMs > le.MaxChaseMs {
		return fmt.Errorf("config: long_escape chase window inverted (%d > %d)", le.MinChaseMs, le.MaxChaseMs)
	}
	if le.Chance < 0 || le.Chance > 1 {
		return fmt.Errorf("config: long_escape chance must be in [0, 1], got %v", le.Chance)
	}

	return nil
}
