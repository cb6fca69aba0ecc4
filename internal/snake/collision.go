package snake

import (
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/entity"
)

// liveHeads returns the heads not yet marked dead, in store order.
func (r *Round) liveHeads() []entity.ID {
	ids := make([]entity.ID, 0, r.heads.Len())
	r.heads.Each(func(id entity.ID, h *Head) {
		if !h.Dead {
			ids = append(ids, id)
		}
	})
	return ids
}

// detectCollisions checks every head that was alive at the start of the
// pass against the walls, all collidible segments and the apple. Deaths are
// applied immediately; eats are queued. A head that dies this tick can still
// eat the apple this tick.
func (r *Round) detectCollisions() {
	apple, appleErr := r.apples.Get(r.apple)

	for _, id := range r.liveHeads() {
		h, err := r.heads.Get(id)
		if err != nil {
			continue
		}
		hc := h.Circle()

		if !r.arena.Contains(h.Pos) {
			r.kill(id, h, CauseWall)
		}

		if !h.Dead {
			r.segments.Each(func(_ entity.ID, seg *Segment) {
				if h.Dead || !seg.Role.Collidible() {
					return
				}
				if core.Touching(hc, seg.Circle()) {
					cause := CauseSnake
					if seg.Head == id {
						cause = CauseSelf
					}
					r.kill(id, h, cause)
				}
			})
		}

		if appleErr == nil && core.Touching(hc, apple.Circle()) {
			r.queue.Push(EatEvent{Head: id, Player: h.Player})
			r.queue.Push(RelocateAppleEvent{})
		}
	}
}

func (r *Round) kill(id entity.ID, h *Head, cause DeathCause) {
	h.Dead = true
	h.Cause = cause
	r.queue.Push(DeathEvent{Head: id, Player: h.Player, Cause: cause})

	name := ""
	if p, err := r.players.Get(h.Player); err == nil {
		name = p.Name
	}
	r.logger.Info("snake died", "player", name, "cause", cause, "tick", r.tick)
}
