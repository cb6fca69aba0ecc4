package config

import (
	_ "embed"
)

//go:embed defaults/classic.yaml
var defaultClassicYAML []byte

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultClassicConfig returns the hardcoded single-player configuration.
func DefaultClassicConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:    40,
			Height:   22,
			TileSize: 32,
		},
		Timing: TimingConfig{
			TickRate:      8,
			Deceleration:  0.95,
			MinIntervalMs: 30,
		},
		Snake: SnakeBodyConfig{
			InitialSegments: 3,
			RadiusFactor:    0.5,
		},
		Apple: AppleConfig{
			RadiusFactor: 0.5,
		},
		PauseKey: "p",
		Players: []PlayerConfig{
			{
				Name:      "Player 1",
				Direction: "right",
				Keys: map[string][]string{
					"up":    {"up", "w"},
					"down":  {"down", "s"},
					"left":  {"left", "a"},
					"right": {"right", "d"},
				},
			},
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// DefaultDuelConfig returns the hardcoded two-player configuration.
func DefaultDuelConfig() SnakeConfig {
	cfg := DefaultClassicConfig()
	cfg.Players = []PlayerConfig{
		{
			Name:      "Player 1",
			Start:     TilePos{X: -8, Y: 4},
			Direction: "right",
			Keys: map[string][]string{
				"up": {"w"}, "down": {"s"}, "left": {"a"}, "right": {"d"},
			},
		},
		{
			Name:      "Player 2",
			Start:     TilePos{X: 8, Y: -4},
			Direction: "left",
			Keys: map[string][]string{
				"up": {"up"}, "down": {"down"}, "left": {"left"}, "right": {"right"},
			},
		},
	}
	return cfg
}

// DefaultConfig returns the hardcoded configuration for a mode,
// falling back to classic for unknown modes.
func DefaultConfig(modeID string) SnakeConfig {
	if modeID == "duel" {
		return DefaultDuelConfig()
	}
	return DefaultClassicConfig()
}

// GetDefaultYAML returns the embedded default YAML for a mode.
func GetDefaultYAML(modeID string) []byte {
	switch modeID {
	case "classic":
		return defaultClassicYAML
	case "duel":
		return defaultDuelYAML
	default:
		return nil
	}
}
