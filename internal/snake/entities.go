package snake

import (
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/entity"
)

// Role is the place a piece holds in a snake's chain.
type Role int

const (
	RoleHead Role = iota
	RoleBody
	RoleTail
)

// Collidible reports whether a piece with this role kills a head that
// overlaps it. Heads are never collidible.
func (r Role) Collidible() bool {
	return r == RoleBody || r == RoleTail
}

func (r Role) String() string {
	switch r {
	case RoleHead:
		return "head"
	case RoleBody:
		return "body"
	case RoleTail:
		return "tail"
	default:
		return "unknown"
	}
}

// DeathCause records why a snake died.
type DeathCause int

const (
	CauseNone  DeathCause = iota
	CauseWall             // Left the arena
	CauseSelf             // Hit its own body
	CauseSnake            // Hit another snake's body
)

func (c DeathCause) String() string {
	switch c {
	case CauseWall:
		return "wall-collision"
	case CauseSelf:
		return "self-collision"
	case CauseSnake:
		return "snake-collision"
	default:
		return ""
	}
}

// Head leads a snake. It owns the ordered chain of segment IDs,
// head-adjacent first; the segments themselves live in the round's store.
type Head struct {
	Pos       core.Vec2
	Rotation  float64
	Radius    float64
	Direction Direction
	Chain     []entity.ID
	Player    entity.ID
	Dead      bool
	Cause     DeathCause
}

// Circle returns the head's bounding circle.
func (h *Head) Circle() core.Circle {
	return core.Circle{Center: h.Pos, Radius: h.Radius}
}

// Segment is one body or tail piece.
type Segment struct {
	Pos      core.Vec2
	Rotation float64
	Radius   float64
	Role     Role
	Head     entity.ID // Owning head
}

// Circle returns the segment's bounding circle.
func (s *Segment) Circle() core.Circle {
	return core.Circle{Center: s.Pos, Radius: s.Radius}
}

// Apple is the objective every snake chases.
type Apple struct {
	Pos    core.Vec2
	Radius float64
}

// Circle returns the apple's bounding circle.
func (a *Apple) Circle() core.Circle {
	return core.Circle{Center: a.Pos, Radius: a.Radius}
}

// Player is a participant of the round.
type Player struct {
	Name     string
	Index    int // Position in the config's player list
	Controls ControlScheme
	Head     entity.ID
	Score    int
}
