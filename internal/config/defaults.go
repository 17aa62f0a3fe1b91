package config

import (
	_ "embed"
)

//go:embed defaults/pursuit.yaml
var defaultPursuitYAML []byte

// Default returns the default configuration as a hardcoded struct.
// Kept in sync with defaults/pursuit.yaml, which is the preferred source.
func Default() Config {
	return Config{
		Grid: GridConfig{
			CellSize:   20,
			Width:      400,
			Height:     400,
			ShrinkStep: 20,
			MinSize:    100,
		},
		Snake: SnakeConfig{
			BaseIntervalMs:  150,
			MinIntervalMs:   50,
			SpeedGainMs:     5,
			BoostDurationMs: 500,
			BoostFactor:     0.4,
		},
		Food: FoodConfig{
			IntervalMs:   100,
			FleeDistance: 40,
			Reward:       10,
			LongEscape: LongEscapeConfig{
				MaxPerSession: 1,
				MinChaseMs:    3000,
				MaxChaseMs:    5000,
				Chance:        0.05,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML document.
func DefaultYAML() []byte {
	return defaultPursuitYAML
}
