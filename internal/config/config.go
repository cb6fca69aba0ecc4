// Package config provides YAML-based round configuration loading and
// difficulty management for the arena.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for one game mode.
type SnakeConfig struct {
	Arena      ArenaConfig      `yaml:"arena"`
	Timing     TimingConfig     `yaml:"timing"`
	Snake      SnakeBodyConfig  `yaml:"snake"`
	Apple      AppleConfig      `yaml:"apple"`
	PauseKey   string           `yaml:"pause_key"`
	Players    []PlayerConfig   `yaml:"players"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaConfig defines the play field size.
type ArenaConfig struct {
	Width    int     `yaml:"width"`     // Tiles
	Height   int     `yaml:"height"`    // Tiles
	TileSize float64 `yaml:"tile_size"` // World units per tile
}

// TimingConfig defines the fixed-tick schedule and its speed-up.
type TimingConfig struct {
	TickRate      float64 `yaml:"tick_rate"`       // Initial ticks per second
	Deceleration  float64 `yaml:"deceleration"`    // Interval multiplier applied per apple eaten
	MinIntervalMs int     `yaml:"min_interval_ms"` // Floor for the tick interval, 0 = none
}

// SnakeBodyConfig defines the starting snake.
type SnakeBodyConfig struct {
	InitialSegments int     `yaml:"initial_segments"` // Body segments including the tail
	RadiusFactor    float64 `yaml:"radius_factor"`    // Bounding radius as a fraction of a tile
}

// AppleConfig defines the apple.
type AppleConfig struct {
	RadiusFactor float64 `yaml:"radius_factor"`
}

// PlayerConfig defines one player's snake and controls.
type PlayerConfig struct {
	Name      string              `yaml:"name"`
	Start     TilePos             `yaml:"start"`
	Direction string              `yaml:"direction"`
	Keys      map[string][]string `yaml:"keys"` // Direction name -> bound keys
}

// TilePos is a tile coordinate relative to the arena centre.
type TilePos struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// DifficultyConfig defines how fast a round starts and whether it speeds up.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra tick rate fraction at level 1.0
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables the speed-up.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. The empty string is accepted and
// means "use the config as-is".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

var directionNames = map[string]bool{"up": true, "down": true, "left": true, "right": true}

// Validate checks the config for values the simulation cannot run with.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Arena.Width <= 0 || c.Arena.Height <= 0:
		return fmt.Errorf("%w: arena must be at least 1x1 tiles, got %dx%d", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Arena.TileSize <= 0:
		return fmt.Errorf("%w: tile_size must be positive, got %v", ErrInvalid, c.Arena.TileSize)
	case c.Timing.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate must be positive, got %v", ErrInvalid, c.Timing.TickRate)
	case c.Timing.Deceleration <= 0 || c.Timing.Deceleration > 1:
		return fmt.Errorf("%w: deceleration must be in (0, 1], got %v", ErrInvalid, c.Timing.Deceleration)
	case c.Timing.MinIntervalMs < 0:
		return fmt.Errorf("%w: min_interval_ms must not be negative", ErrInvalid)
	case c.Snake.InitialSegments < 1:
		return fmt.Errorf("%w: initial_segments must be at least 1 (the tail)", ErrInvalid)
	case c.Snake.RadiusFactor <= 0 || c.Apple.RadiusFactor <= 0:
		return fmt.Errorf("%w: radius factors must be positive", ErrInvalid)
	case len(c.Players) == 0:
		return fmt.Errorf("%w: at least one player is required", ErrInvalid)
	}

	bound := make(map[string]string)
	if c.PauseKey != "" {
		bound[c.PauseKey] = "pause"
	}
	for i, p := range c.Players {
		if !directionNames[p.Direction] {
			return fmt.Errorf("%w: player %d: unknown direction %q", ErrInvalid, i+1, p.Direction)
		}
		for dir, keys := range p.Keys {
			if !directionNames[dir] {
				return fmt.Errorf("%w: player %d: unknown direction %q in keys", ErrInvalid, i+1, dir)
			}
			for _, k := range keys {
				owner := fmt.Sprintf("player %d %s", i+1, dir)
				if prev, dup := bound[k]; dup {
					return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalid, k, prev, owner)
				}
				bound[k] = owner
			}
		}
	}
	return nil
}
