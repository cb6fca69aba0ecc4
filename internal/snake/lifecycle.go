package snake

import (
	"errors"
	"fmt"
)

// State is the outer application state a round lives inside.
type State int

const (
	StateAssetLoading State = iota
	StateMainMenu
	StateEnterGame
	StateInGame
	StateLeaveGame
)

func (s State) String() string {
	switch s {
	case StateAssetLoading:
		return "asset-loading"
	case StateMainMenu:
		return "main-menu"
	case StateEnterGame:
		return "enter-game"
	case StateInGame:
		return "in-game"
	case StateLeaveGame:
		return "leave-game"
	default:
		return "unknown"
	}
}

// ErrBadTransition is returned for a transition the lifecycle does not allow.
var ErrBadTransition = errors.New("snake: invalid state transition")

var transitions = map[State][]State{
	StateAssetLoading: {StateMainMenu},
	StateMainMenu:     {StateEnterGame, StateInGame},
	StateEnterGame:    {StateInGame, StateMainMenu},
	StateInGame:       {StateLeaveGame},
	StateLeaveGame:    {StateMainMenu},
}

// Lifecycle drives a round through the outer states. The round exists only
// while the lifecycle is InGame.
type Lifecycle struct {
	state State
	round *Round
	seed  func() int64
}

// NewLifecycle creates a lifecycle in AssetLoading. seed supplies the RNG
// seed for every round entry.
func NewLifecycle(round *Round, seed func() int64) *Lifecycle {
	if seed == nil {
		seed = func() int64 { return 1 }
	}
	return &Lifecycle{state: StateAssetLoading, round: round, seed: seed}
}

// State returns the current outer state.
func (l *Lifecycle) State() State { return l.state }

// Round returns the driven round.
func (l *Lifecycle) Round() *Round { return l.round }

// CanTransition reports whether to is reachable from the current state.
func (l *Lifecycle) CanTransition(to State) bool {
	for _, s := range transitions[l.state] {
		if s == to {
			return true
		}
	}
	return false
}

// Transition moves to a new state. Entering InGame enters the round;
// leaving InGame exits it. If entering the round fails the state is unchanged.
func (l *Lifecycle) Transition(to State) error {
	if !l.CanTransition(to) {
		return fmt.Errorf("%w: %s -> %s", ErrBadTransition, l.state, to)
	}

	if to == StateInGame {
		if err := l.round.Enter(l.seed()); err != nil {
			return err
		}
	}
	if l.state == StateInGame {
		l.round.Exit()
	}

	l.round.logger.Debug("lifecycle", "from", l.state, "to", to)
	l.state = to
	return nil
}

// Restart leaves the current round and enters a fresh one, passing through
// LeaveGame and MainMenu.
func (l *Lifecycle) Restart() error {
	if l.state == StateInGame {
		if err := l.Transition(StateLeaveGame); err != nil {
			return err
		}
	}
	if l.state == StateLeaveGame {
		if err := l.Transition(StateMainMenu); err != nil {
			return err
		}
	}
	return l.Transition(StateInGame)
}
