package config

import (
	"math"
	"time"
)

// Pace computes the fixed-tick interval of a round: where it starts and how
// it shrinks each time an apple is eaten.
type Pace struct {
	timing       TimingConfig
	cfg          DifficultyConfig
	initialLevel float64
}

// NewPace creates a pace calculator.
func NewPace(timing TimingConfig, cfg DifficultyConfig) *Pace {
	return &Pace{
		timing:       timing,
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (p *Pace) SetInitialLevel(level float64) {
	p.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables the per-apple speed-up.
func (p *Pace) SetEnabled(enabled bool) {
	p.cfg.Enabled = enabled
}

// IsEnabled returns whether the speed-up is active.
func (p *Pace) IsEnabled() bool {
	return p.cfg.Enabled
}

// InitialInterval returns the tick interval a round starts with.
// The base tick rate rises to rate * (1 + speedMultiplier) at level 1.0.
func (p *Pace) InitialInterval() time.Duration {
	rate := p.timing.TickRate * (1.0 + p.initialLevel*p.cfg.Scaling.SpeedMultiplier)
	if rate <= 0 {
		rate = 1
	}
	return p.floor(time.Duration(float64(time.Second) / rate))
}

// Next returns the interval after one more apple has been eaten.
// The result is never larger than cur.
func (p *Pace) Next(cur time.Duration) time.Duration {
	if !p.cfg.Enabled {
		return cur
	}
	next := p.floor(time.Duration(float64(cur) * p.timing.Deceleration))
	if next > cur {
		return cur
	}
	return next
}

// MinInterval returns the configured floor, zero if none.
func (p *Pace) MinInterval() time.Duration {
	return time.Duration(p.timing.MinIntervalMs) * time.Millisecond
}

func (p *Pace) floor(d time.Duration) time.Duration {
	if lo := p.MinInterval(); d < lo {
		return lo
	}
	return d
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
