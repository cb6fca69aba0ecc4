package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// spawnApple creates the round's single apple and places it.
func (r *Round) spawnApple() error {
	r.apple = r.apples.Insert(Apple{
		Radius: r.cfg.Apple.RadiusFactor * r.arena.TileSize,
	})
	return r.RelocateApple()
}

// RelocateApple moves the apple to a random point inside the arena.
// Snake bodies are not avoided.
func (r *Round) RelocateApple() error {
	a, err := r.apples.Get(r.apple)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNoApple, err)
	}
	a.Pos = r.randomPoint()
	r.logger.Debug("apple relocated", "x", a.Pos.X, "y", a.Pos.Y)
	return nil
}

// randomPoint samples each axis in [0, half extent) and mirrors it with a
// fair coin, covering the whole arena uniformly.
func (r *Round) randomPoint() core.Vec2 {
	x := r.rng.Float64() * r.arena.HalfWidth()
	if r.rng.Intn(2) == 0 {
		x = -x
	}
	y := r.rng.Float64() * r.arena.HalfHeight()
	if r.rng.Intn(2) == 0 {
		y = -y
	}
	return core.Vec2{X: x, Y: y}
}
