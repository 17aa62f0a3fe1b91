// Package game implements the pursuit simulation core: a player-driven
// snake chasing an evasive food agent on a shrinking arena. The package is
// pure logic driven by explicit timestamps, so tests and the platform layer
// control the clock.
package game

import (
	"time"

	"github.com/quietfall/tui-pursuit/internal/config"
)

// Params holds the session's tuning constants in native Go types.
type Params struct {
	CellSize    int
	ArenaWidth  int
	ArenaHeight int
	ShrinkStep  int // Per side, per food eaten
	MinArena    int

	SnakeInterval    time.Duration // Base logical tick period
	MinSnakeInterval time.Duration
	SpeedGain        time.Duration // Interval reduction per food eaten
	BoostDuration    time.Duration
	BoostFactor      float64

	FoodInterval time.Duration
	FleeDistance float64
	FoodReward   int

	MaxLongEscapes     int
	LongEscapeMinChase time.Duration
	LongEscapeMaxChase time.Duration
	LongEscapeChance   float64
}

// FromConfig converts a validated config into session parameters.
func FromConfig(cfg config.Config) Params {
	return Params{
		CellSize:    cfg.Grid.CellSize,
		ArenaWidth:  cfg.Grid.Width,
		ArenaHeight: cfg.Grid.Height,
		ShrinkStep:  cfg.Grid.ShrinkStep,
		MinArena:    cfg.Grid.MinSize,

		SnakeInterval:    time.Duration(cfg.Snake.BaseIntervalMs) * time.Millisecond,
		MinSnakeInterval: time.Duration(cfg.Snake.MinIntervalMs) * time.Millisecond,
		SpeedGain:        time.Duration(cfg.Snake.SpeedGainMs) * time.Millisecond,
		BoostDuration:    time.Duration(cfg.Snake.BoostDurationMs) * time.Millisecond,
		BoostFactor:      cfg.Snake.BoostFactor,

		FoodInterval: time.Duration(cfg.Food.IntervalMs) * time.Millisecond,
		FleeDistance: float64(cfg.Food.FleeDistance),
		FoodReward:   cfg.Food.Reward,

		MaxLongEscapes:     cfg.Food.LongEscape.MaxPerSession,
		LongEscapeMinChase: time.Duration(cfg.Food.LongEscape.MinChaseMs) * time.Millisecond,
		LongEscapeMaxChase: time.Duration(cfg.Food.LongEscape.MaxChaseMs) * time.Millisecond,
		LongEscapeChance:   cfg.Food.LongEscape.Chance,
	}
}

// DefaultParams returns parameters built from the shipped defaults.
func DefaultParams() Params {
	return FromConfig(config.Default())
}
