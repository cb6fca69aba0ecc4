package snake

import (
	"time"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// SegmentView is the render state of one chain piece.
type SegmentView struct {
	Pos      core.Vec2
	Rotation float64
	Radius   float64
	Role     Role
}

// SnakeView is the render state of one player's snake.
type SnakeView struct {
	Player    string
	Index     int
	Score     int
	Dead      bool
	Cause     DeathCause
	Direction Direction
	Head      SegmentView
	Segments  []SegmentView // Head-adjacent first
}

// Snapshot captures the complete round state for rendering and
// determinism checks.
type Snapshot struct {
	RoundID  string
	Tick     uint64
	Phase    Phase
	Interval time.Duration
	Apples   int
	Apple    core.Vec2
	Snakes   []SnakeView
}

// Snapshot returns the current round state. Snakes are in player order.
func (r *Round) Snapshot() Snapshot {
	snap := Snapshot{
		RoundID:  r.id,
		Tick:     r.tick,
		Phase:    r.phase,
		Interval: r.interval,
		Apples:   r.applesEaten,
	}
	if a, err := r.apples.Get(r.apple); err == nil {
		snap.Apple = a.Pos
	}

	for _, pid := range r.playerOrder {
		p, err := r.players.Get(pid)
		if err != nil {
			continue
		}
		h, err := r.heads.Get(p.Head)
		if err != nil {
			continue
		}
		sv := SnakeView{
			Player:    p.Name,
			Index:     p.Index,
			Score:     p.Score,
			Dead:      h.Dead,
			Cause:     h.Cause,
			Direction: h.Direction,
			Head: SegmentView{
				Pos:      h.Pos,
				Rotation: h.Rotation,
				Radius:   h.Radius,
				Role:     RoleHead,
			},
			Segments: make([]SegmentView, 0, len(h.Chain)),
		}
		for _, id := range h.Chain {
			seg, err := r.segments.Get(id)
			if err != nil {
				continue
			}
			sv.Segments = append(sv.Segments, SegmentView{
				Pos:      seg.Pos,
				Rotation: seg.Rotation,
				Radius:   seg.Radius,
				Role:     seg.Role,
			})
		}
		snap.Snakes = append(snap.Snakes, sv)
	}
	return snap
}
