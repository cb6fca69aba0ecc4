// Package snake implements the fixed-tick arena simulation: snakes made of
// circular segments chasing a single apple, for one or more players.
package snake

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/entity"
)

var (
	ErrNoPlayers = errors.New("snake: round has no players")
	ErrNoHead    = errors.New("snake: player has no head")
	ErrNoApple   = errors.New("snake: apple missing")
	ErrNoTail    = errors.New("snake: snake has no tail")
	ErrInactive  = errors.New("snake: round not entered")
)

// StepResult reports what one tick did.
type StepResult struct {
	Tick     uint64
	Phase    Phase
	Interval time.Duration
	Events   []Event
}

// Round owns every entity of one play session. It is driven by the host
// calling Tick once per interval; nothing in it is safe for concurrent use.
type Round struct {
	modeID string
	cfg    config.SnakeConfig
	arena  core.Arena
	pace   *config.Pace
	logger *log.Logger
	rng    *rand.Rand

	heads    *entity.Store[Head]
	segments *entity.Store[Segment]
	players  *entity.Store[Player]
	apples   *entity.Store[Apple]

	playerOrder []entity.ID
	apple       entity.ID
	pauseKey    core.Key

	id          string
	active      bool
	phase       Phase
	interval    time.Duration
	tick        uint64
	applesEaten int

	queue  eventQueue
	report []Event
}

// Option configures a Round.
type Option func(*Round)

// WithLogger sets the logger used for round diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(r *Round) {
		if l != nil {
			r.logger = l
		}
	}
}

// NewRound creates an inactive round for the given mode. Call Enter to
// populate it.
func NewRound(modeID string, cfg config.SnakeConfig, opts ...Option) (*Round, error) {
	if len(cfg.Players) == 0 {
		return nil, ErrNoPlayers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Round{
		modeID:   modeID,
		cfg:      cfg,
		arena:    core.NewArena(cfg.Arena.Width, cfg.Arena.Height, cfg.Arena.TileSize),
		pace:     config.NewPace(cfg.Timing, cfg.Difficulty),
		logger:   log.New(io.Discard),
		rng:      rand.New(rand.NewSource(1)),
		heads:    entity.NewStore[Head](),
		segments: entity.NewStore[Segment](),
		players:  entity.NewStore[Player](),
		apples:   entity.NewStore[Apple](),
		pauseKey: core.Key(cfg.PauseKey),
		phase:    PhasePlaying,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Enter spawns players, snakes and the apple and starts the round in the
// playing phase. Any previous contents are discarded first.
func (r *Round) Enter(seed int64) error {
	if r.active {
		r.Exit()
	}
	r.rng = rand.New(rand.NewSource(seed))

	for i, pc := range r.cfg.Players {
		controls, err := NewControlScheme(pc.Keys)
		if err != nil {
			r.Exit()
			return fmt.Errorf("player %q: %w", pc.Name, err)
		}
		dir, err := ParseDirection(pc.Direction)
		if err != nil {
			r.Exit()
			return fmt.Errorf("player %q: %w", pc.Name, err)
		}

		pid := r.players.Insert(Player{Name: pc.Name, Index: i, Controls: controls})
		start := r.arena.TileCenter(pc.Start.X, pc.Start.Y)
		headID := r.spawnSnake(pid, start, dir)

		p, _ := r.players.Get(pid)
		p.Head = headID
		r.playerOrder = append(r.playerOrder, pid)
	}

	if err := r.spawnApple(); err != nil {
		r.Exit()
		return err
	}

	r.id = uuid.NewString()
	r.active = true
	r.phase = PhasePlaying
	r.interval = r.pace.InitialInterval()
	r.tick = 0
	r.applesEaten = 0

	r.logger.Info("round started",
		"round", r.id,
		"mode", r.modeID,
		"players", len(r.playerOrder),
		"interval", r.interval,
		"seed", seed)
	return nil
}

// Exit tears the round down. Every entity it spawned is removed.
func (r *Round) Exit() {
	if r.active {
		r.logger.Info("round ended",
			"round", r.id,
			"ticks", r.tick,
			"apples", r.applesEaten,
			"phase", r.phase)
	}
	r.heads.Clear()
	r.segments.Clear()
	r.players.Clear()
	r.apples.Clear()
	r.playerOrder = nil
	r.apple = entity.Nil
	r.queue.Reset()
	r.report = nil
	r.active = false
}

// Tick advances the round by one step. The pause key is honoured in every
// phase but Dead; everything else only runs while playing.
func (r *Round) Tick(in core.InputFrame) (StepResult, error) {
	if !r.active {
		return StepResult{}, ErrInactive
	}
	r.report = nil

	if r.pauseKey != "" && in.Has(r.pauseKey) {
		r.TogglePause()
	}
	if r.phase != PhasePlaying {
		return r.result(), nil
	}

	r.tick++
	if err := r.resolveControls(in.Pressed()); err != nil {
		return r.result(), err
	}
	r.moveSnakes()
	r.detectCollisions()
	if err := r.applyEvents(); err != nil {
		return r.result(), err
	}
	r.aggregateDeaths()

	return r.result(), nil
}

func (r *Round) result() StepResult {
	return StepResult{
		Tick:     r.tick,
		Phase:    r.phase,
		Interval: r.interval,
		Events:   r.report,
	}
}

// resolveControls turns each player's pressed keys into a new heading.
// Dead snakes keep theirs.
func (r *Round) resolveControls(pressed []core.Key) error {
	if len(pressed) == 0 {
		return nil
	}
	for _, pid := range r.playerOrder {
		p, err := r.players.Get(pid)
		if err != nil {
			continue
		}
		h, err := r.heads.Get(p.Head)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrNoHead, p.Name)
		}
		if h.Dead {
			continue
		}
		if dir, ok := p.Controls.Resolve(pressed, h.Direction); ok {
			h.Direction = dir
		}
	}
	return nil
}

// applyEvents drains the queue filled by collision detection. Each head
// eats at most once per tick and the apple moves at most once.
func (r *Round) applyEvents() error {
	ate := make(map[entity.ID]bool)
	relocate := false

	for _, ev := range r.queue.Consume() {
		switch e := ev.(type) {
		case EatEvent:
			if ate[e.Head] {
				continue
			}
			ate[e.Head] = true
			r.report = append(r.report, e)
			if err := r.eat(e); err != nil {
				return err
			}
		case RelocateAppleEvent:
			if relocate {
				continue
			}
			relocate = true
			r.report = append(r.report, e)
		default:
			r.report = append(r.report, ev)
		}
	}

	if relocate {
		return r.RelocateApple()
	}
	return nil
}

func (r *Round) eat(e EatEvent) error {
	if err := r.Grow(e.Head); err != nil {
		return err
	}
	if p, err := r.players.Get(e.Player); err == nil {
		p.Score++
	}
	r.applesEaten++

	next := r.pace.Next(r.interval)
	if next != r.interval {
		r.interval = next
		r.report = append(r.report, SpeedChangedEvent{Interval: next})
		r.logger.Debug("speed up", "interval", next)
	}
	return nil
}

// ID returns the round's unique identifier, assigned on Enter.
func (r *Round) ID() string { return r.id }

// ModeID returns the game mode the round was created for.
func (r *Round) ModeID() string { return r.modeID }

// Active reports whether the round has been entered and not yet exited.
func (r *Round) Active() bool { return r.active }

// Phase returns the current phase.
func (r *Round) Phase() Phase { return r.phase }

// Interval returns the current tick interval.
func (r *Round) Interval() time.Duration { return r.interval }

// Ticks returns how many simulation steps have run.
func (r *Round) Ticks() uint64 { return r.tick }

// ApplesEaten returns the total apples eaten by all players.
func (r *Round) ApplesEaten() int { return r.applesEaten }

// Arena returns the play field.
func (r *Round) Arena() core.Arena { return r.arena }

// Players returns the player IDs in config order.
func (r *Round) Players() []entity.ID {
	out := make([]entity.ID, len(r.playerOrder))
	copy(out, r.playerOrder)
	return out
}

// Player returns a copy of a player.
func (r *Round) Player(id entity.ID) (Player, error) {
	p, err := r.players.Get(id)
	if err != nil {
		return Player{}, err
	}
	return *p, nil
}

// Head returns a copy of a head.
func (r *Round) Head(id entity.ID) (Head, error) {
	h, err := r.heads.Get(id)
	if err != nil {
		return Head{}, err
	}
	out := *h
	out.Chain = append([]entity.ID(nil), h.Chain...)
	return out, nil
}

// Segment returns a copy of a segment.
func (r *Round) Segment(id entity.ID) (Segment, error) {
	s, err := r.segments.Get(id)
	if err != nil {
		return Segment{}, err
	}
	return *s, nil
}

// Apple returns a copy of the apple.
func (r *Round) Apple() (Apple, error) {
	a, err := r.apples.Get(r.apple)
	if err != nil {
		return Apple{}, fmt.Errorf("%w: %w", ErrNoApple, err)
	}
	return *a, nil
}

// EntityCount returns the number of live heads, segments and apples.
func (r *Round) EntityCount() int {
	return r.heads.Len() + r.segments.Len() + r.apples.Len()
}
