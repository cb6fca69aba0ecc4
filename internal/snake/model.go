package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/entity"
)

// spawnSnake creates a head at start facing dir, followed by the configured
// number of segments laid out behind it one tile apart. The last one is the tail.
func (r *Round) spawnSnake(player entity.ID, start core.Vec2, dir Direction) entity.ID {
	radius := r.cfg.Snake.RadiusFactor * r.arena.TileSize
	headID := r.heads.Insert(Head{
		Pos:       start,
		Rotation:  dir.Rotation(),
		Radius:    radius,
		Direction: dir,
		Player:    player,
	})

	n := r.cfg.Snake.InitialSegments
	back := dir.Opposite().Vector().Scale(r.arena.TileSize)
	chain := make([]entity.ID, 0, n)
	pos := start
	for i := range n {
		pos = pos.Add(back)
		role := RoleBody
		if i == n-1 {
			role = RoleTail
		}
		chain = append(chain, r.segments.Insert(Segment{
			Pos:      pos,
			Rotation: dir.Rotation(),
			Radius:   radius,
			Role:     role,
			Head:     headID,
		}))
	}

	head, _ := r.heads.Get(headID)
	head.Chain = chain
	return headID
}

// Grow appends a segment where the tail currently is. The old tail becomes
// an ordinary body segment and the new one takes the tail role.
// A head that no longer exists is ignored.
func (r *Round) Grow(headID entity.ID) error {
	head, err := r.heads.Get(headID)
	if err != nil {
		return nil
	}

	var tail *Segment
	for i := len(head.Chain) - 1; i >= 0; i-- {
		if seg, err := r.segments.Get(head.Chain[i]); err == nil {
			tail = seg
			break
		}
	}
	if tail == nil {
		return fmt.Errorf("%w: head %d has no live segments", ErrNoTail, headID.Index())
	}

	// Copy before Insert: it may move the backing array tail points into.
	grown := Segment{
		Pos:      tail.Pos,
		Rotation: tail.Rotation,
		Radius:   tail.Radius,
		Role:     RoleTail,
		Head:     headID,
	}
	tail.Role = RoleBody
	head.Chain = append(head.Chain, r.segments.Insert(grown))

	r.logger.Debug("snake grew", "head", headID.Index(), "length", r.chainLen(head))
	return nil
}

// chainLen counts the live segments behind a head.
func (r *Round) chainLen(h *Head) int {
	n := 0
	for _, id := range h.Chain {
		if r.segments.Has(id) {
			n++
		}
	}
	return n
}

// ChainLen returns the number of live segments behind a head,
// or -1 if the head does not exist.
func (r *Round) ChainLen(headID entity.ID) int {
	h, err := r.heads.Get(headID)
	if err != nil {
		return -1
	}
	return r.chainLen(h)
}
