package snake

import "github.com/vovakirdan/snake-arena/internal/entity"

// Phase is the in-round state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseDead
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseDead:
		return "dead"
	default:
		return "unknown"
	}
}

// TogglePause switches between playing and paused. It does nothing once
// the round is dead.
func (r *Round) TogglePause() {
	switch r.phase {
	case PhasePlaying:
		r.setPhase(PhasePaused)
	case PhasePaused:
		r.setPhase(PhasePlaying)
	}
}

// aggregateDeaths moves the round to Dead once no snake is left alive.
// It is evaluated every tick, so it also catches heads marked dead
// outside collision detection.
func (r *Round) aggregateDeaths() {
	if r.phase == PhaseDead || r.heads.Len() == 0 {
		return
	}
	if r.Alive() == 0 {
		r.setPhase(PhaseDead)
	}
}

func (r *Round) setPhase(to Phase) {
	from := r.phase
	if from == to {
		return
	}
	r.phase = to
	r.report = append(r.report, PhaseChangedEvent{From: from, To: to})
	r.logger.Info("phase changed", "from", from, "to", to, "tick", r.tick)
}

// Alive returns how many snakes are still alive.
func (r *Round) Alive() int {
	n := 0
	r.heads.Each(func(_ entity.ID, h *Head) {
		if !h.Dead {
			n++
		}
	})
	return n
}
