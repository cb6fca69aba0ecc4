package snake

import "github.com/vovakirdan/snake-arena/internal/entity"

// moveSnakes advances every live snake by one tile. Each segment takes the
// position its predecessor held before this tick.
func (r *Round) moveSnakes() {
	step := r.arena.TileSize

	r.heads.Each(func(_ entity.ID, h *Head) {
		if h.Dead {
			return
		}

		prev := h.Pos
		h.Pos = h.Pos.Add(h.Direction.Vector().Scale(step))
		h.Rotation = h.Direction.Rotation()

		for _, segID := range h.Chain {
			seg, err := r.segments.Get(segID)
			if err != nil {
				continue // torn down; the next segment follows the last one seen
			}
			old := seg.Pos
			seg.Pos = prev
			if seg.Role == RoleTail {
				if d, ok := directionOf(seg.Pos.Sub(old)); ok {
					seg.Rotation = d.Rotation()
				}
			}
			prev = old
		}
	})
}
