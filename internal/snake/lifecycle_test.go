package snake

import (
	"errors"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

func newTestLifecycle(t *testing.T) *Lifecycle {
	t.Helper()
	r, err := NewRound("test", testConfig())
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	seed := int64(0)
	return NewLifecycle(r, func() int64 {
		seed++
		return seed
	})
}

func TestLifecycleTransitions(t *testing.T) {
	l := newTestLifecycle(t)

	if l.State() != StateAssetLoading {
		t.Fatalf("initial state = %v, expected asset-loading", l.State())
	}

	steps := []State{StateMainMenu, StateEnterGame, StateInGame, StateLeaveGame, StateMainMenu}
	for _, to := range steps {
		if err := l.Transition(to); err != nil {
			t.Fatalf("Transition(%v) failed: %v", to, err)
		}
		if l.Round().Active() != (to == StateInGame) {
			t.Errorf("in %v: round active = %v", to, l.Round().Active())
		}
	}
	if l.Round().EntityCount() != 0 {
		t.Errorf("EntityCount() = %d after leaving, expected 0", l.Round().EntityCount())
	}
}

func TestLifecycleRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		path []State
		bad  State
	}{
		{"skip menu", nil, StateInGame},
		{"leave from menu", []State{StateMainMenu}, StateLeaveGame},
		{"menu from game", []State{StateMainMenu, StateInGame}, StateMainMenu},
		{"game from leave", []State{StateMainMenu, StateInGame, StateLeaveGame}, StateInGame},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestLifecycle(t)
			for _, s := range tt.path {
				if err := l.Transition(s); err != nil {
					t.Fatalf("Transition(%v) failed: %v", s, err)
				}
			}
			before := l.State()
			if err := l.Transition(tt.bad); !errors.Is(err, ErrBadTransition) {
				t.Errorf("Transition(%v) = %v, expected ErrBadTransition", tt.bad, err)
			}
			if l.State() != before {
				t.Errorf("state changed to %v on a rejected transition", l.State())
			}
		})
	}
}

func TestLifecycleRestart(t *testing.T) {
	l := newTestLifecycle(t)
	_ = l.Transition(StateMainMenu)
	_ = l.Transition(StateInGame)
	firstID := l.Round().ID()

	for i := 0; i < 25; i++ {
		_, _ = l.Round().Tick(core.NewInputFrame())
	}
	if l.Round().Phase() != PhaseDead {
		t.Fatalf("phase = %v, expected the snake to hit the wall", l.Round().Phase())
	}

	if err := l.Restart(); err != nil {
		t.Fatalf("Restart() failed: %v", err)
	}
	if l.State() != StateInGame {
		t.Errorf("state = %v after restart, expected in-game", l.State())
	}
	if l.Round().Phase() != PhasePlaying {
		t.Errorf("phase = %v after restart, expected playing", l.Round().Phase())
	}
	if l.Round().ID() == firstID {
		t.Error("restart should start a new round")
	}
}
