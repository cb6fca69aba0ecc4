package snake

import "time"

// PlayerScore is one player's final standing.
type PlayerScore struct {
	Name  string
	Score int
	Cause DeathCause
}

// RoundResult summarises a finished (or abandoned) round.
type RoundResult struct {
	RoundID       string
	ModeID        string
	Ticks         uint64
	Apples        int
	FinalInterval time.Duration
	Players       []PlayerScore
}

// ResultSaver persists round results.
type ResultSaver interface {
	SaveRoundResult(res RoundResult) error
}

// Result returns the current standings of the round.
func (r *Round) Result() RoundResult {
	res := RoundResult{
		RoundID:       r.id,
		ModeID:        r.modeID,
		Ticks:         r.tick,
		Apples:        r.applesEaten,
		FinalInterval: r.interval,
	}
	for _, pid := range r.playerOrder {
		p, err := r.players.Get(pid)
		if err != nil {
			continue
		}
		ps := PlayerScore{Name: p.Name, Score: p.Score}
		if h, err := r.heads.Get(p.Head); err == nil {
			ps.Cause = h.Cause
		}
		res.Players = append(res.Players, ps)
	}
	return res
}
