package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/core"
	"github.com/vovakirdan/snake-arena/internal/snake"
	"github.com/vovakirdan/snake-arena/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return nm, cmd
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(Config{
		Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 5},
		Store:   store,
		Mode:    "classic",
	})
}

func startedModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m := newTestModel(t, store)
	m, cmd := update(t, m, runes(" "))
	if cmd == nil {
		t.Fatal("starting a round should schedule a tick")
	}
	if m.state() != snake.StateInGame {
		t.Fatalf("state = %v, expected in-game", m.state())
	}
	return m
}

func TestKeyFromMsg(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want core.Key
	}{
		{runes(" "), "space"},
		{runes("w"), "w"},
		{tea.KeyMsg{Type: tea.KeyUp}, "up"},
		{tea.KeyMsg{Type: tea.KeyLeft}, "left"},
		{tea.KeyMsg{Type: tea.KeyEsc}, "esc"},
	}
	for _, tt := range tests {
		if got := KeyFromMsg(tt.msg); got != tt.want {
			t.Errorf("KeyFromMsg(%q) = %q, expected %q", tt.msg.String(), got, tt.want)
		}
	}
}

func TestModelStartScreen(t *testing.T) {
	m := newTestModel(t, nil)

	if m.state() != snake.StateEnterGame {
		t.Fatalf("state = %v, expected enter-game", m.state())
	}
	if !strings.Contains(m.View(), "SPACE TO START") {
		t.Error("start screen should prompt for space")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.lifecycle != nil {
		t.Error("esc on the start screen should return to the menu")
	}
	if !strings.Contains(m.View(), "Classic") {
		t.Error("menu should list the modes")
	}
}

func TestModelMenuSelectsMode(t *testing.T) {
	m := NewModel(Config{Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 1}})
	if m.lifecycle != nil {
		t.Fatal("without a preselected mode the menu should open first")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.state() != snake.StateEnterGame {
		t.Fatalf("state = %v, expected enter-game", m.state())
	}
	if m.lifecycle.Round().ModeID() != "duel" {
		t.Errorf("mode = %q, expected duel", m.lifecycle.Round().ModeID())
	}
}

func TestModelTickDrivesRound(t *testing.T) {
	m := startedModel(t, nil)
	round := m.lifecycle.Round()

	m, cmd := update(t, m, TickMsg{Loop: m.loop})
	if round.Ticks() != 1 {
		t.Fatalf("ticks = %d, expected 1", round.Ticks())
	}
	if cmd == nil {
		t.Error("a live round should schedule the next tick")
	}

	m, _ = update(t, m, TickMsg{Loop: m.loop - 1})
	if round.Ticks() != 1 {
		t.Error("ticks from an old loop should be ignored")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	snap := round.Snapshot()
	if snap.Snakes[0].Direction != snake.DirUp {
		t.Errorf("direction = %v, expected up", snap.Snakes[0].Direction)
	}
	if !strings.Contains(m.View(), "Player 1") {
		t.Error("HUD should show the player")
	}
}

func TestModelPauseAndLeave(t *testing.T) {
	m := startedModel(t, nil)
	round := m.lifecycle.Round()

	m, _ = update(t, m, runes("p"))
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	if round.Phase() != snake.PhasePaused {
		t.Fatalf("phase = %v, expected paused", round.Phase())
	}

	m, _ = update(t, m, runes("b"))
	if m.lifecycle != nil {
		t.Error("back while paused should return to the menu")
	}
	if round.Active() {
		t.Error("leaving should tear the round down")
	}
}

func TestModelSavesOnceAndRestarts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := startedModel(t, store)
	round := m.lifecycle.Round()
	firstID := round.ID()

	for i := 0; i < 40 && round.Phase() != snake.PhaseDead; i++ {
		m, _ = update(t, m, TickMsg{Loop: m.loop})
	}
	if round.Phase() != snake.PhaseDead {
		t.Fatal("snake should have hit the wall")
	}
	m, _ = update(t, m, TickMsg{Loop: m.loop})
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("game over overlay missing")
	}

	rounds, _ := store.RecentRounds(10)
	if len(rounds) != 1 || rounds[0].RoundID != firstID {
		t.Fatalf("saved rounds = %+v, expected exactly %q", rounds, firstID)
	}

	m, cmd := update(t, m, runes("r"))
	if cmd == nil {
		t.Error("restart should schedule a tick")
	}
	if round.Phase() != snake.PhasePlaying || round.ID() == firstID {
		t.Error("restart should enter a new round")
	}
	if m.saved {
		t.Error("a new round should not be marked saved")
	}
}

func TestModelQuit(t *testing.T) {
	m := startedModel(t, nil)
	round := m.lifecycle.Round()

	m, cmd := update(t, m, runes("q"))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
	if round.Active() {
		t.Error("quitting should exit the round")
	}
}

func TestModelScoreboard(t *testing.T) {
	m := NewModel(Config{Runtime: core.RuntimeConfig{ScreenW: 100, ScreenH: 40, Seed: 1}})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard title missing")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showScores {
		t.Error("esc should close the scoreboard")
	}
}

func TestDrawRound(t *testing.T) {
	round, err := snake.NewRound("classic", config.DefaultClassicConfig())
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	if err := round.Enter(1); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}

	screen := core.NewScreen(100, 30)
	DrawRound(screen, round.Snapshot(), round.Arena(), 0)

	pf := newPlayfield(round.Arena(), screen.Width())
	x, y := pf.cell(core.Vec2{})
	if got := screen.Get(x, y); got != '>' {
		t.Errorf("head cell = %q, expected '>'", got)
	}
	x, y = pf.cell(core.Vec2{X: -96})
	if got := screen.Get(x, y); got != '·' {
		t.Errorf("tail cell = %q, expected '·'", got)
	}

	small := core.NewScreen(20, 10)
	DrawRound(small, round.Snapshot(), round.Arena(), 0)
	if !strings.Contains(small.String(), "too small") {
		t.Error("small terminals should get a warning")
	}
}
