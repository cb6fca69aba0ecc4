package snake

import (
	"fmt"
	"math"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// Direction represents a snake's movement direction.
type Direction int

const (
	DirRight Direction = iota
	DirUp
	DirLeft
	DirDown
)

// Opposite returns the direction a snake may never turn into from d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Vector returns the unit displacement for d. +Y is up.
func (d Direction) Vector() core.Vec2 {
	switch d {
	case DirUp:
		return core.Vec2{Y: 1}
	case DirDown:
		return core.Vec2{Y: -1}
	case DirLeft:
		return core.Vec2{X: -1}
	default:
		return core.Vec2{X: 1}
	}
}

// Rotation returns the facing angle in radians for d, counter-clockwise
// from +X.
func (d Direction) Rotation() float64 {
	switch d {
	case DirUp:
		return math.Pi / 2
	case DirLeft:
		return math.Pi
	case DirDown:
		return -math.Pi / 2
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// ParseDirection parses a direction name as used in config files.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	}
	return DirRight, fmt.Errorf("snake: unknown direction %q", s)
}

// directionOf classifies a displacement into one of the four directions.
// ok is false for a zero displacement.
func directionOf(delta core.Vec2) (d Direction, ok bool) {
	switch {
	case delta.X == 0 && delta.Y == 0:
		return DirRight, false
	case math.Abs(delta.X) >= math.Abs(delta.Y):
		if delta.X > 0 {
			return DirRight, true
		}
		return DirLeft, true
	default:
		if delta.Y > 0 {
			return DirUp, true
		}
		return DirDown, true
	}
}
