package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

func runTestSim(t *testing.T, cfg config.SnakeConfig, seed int64, ticks int) *snake.Round {
	t.Helper()
	round, err := snake.NewRound("duel", cfg)
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	if err := round.Enter(seed); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	if err := newSimulation(round, cfg, seed, 0.3).run(ticks); err != nil {
		t.Fatalf("run() failed: %v", err)
	}
	return round
}

func TestSimulationDeterministic(t *testing.T) {
	cfg := config.DefaultDuelConfig()

	a := runTestSim(t, cfg, 42, 300).Snapshot()
	b := runTestSim(t, cfg, 42, 300).Snapshot()

	if a.Tick != b.Tick || a.Apple != b.Apple || a.Apples != b.Apples || a.Phase != b.Phase {
		t.Fatalf("runs diverged: tick %d/%d apple %v/%v", a.Tick, b.Tick, a.Apple, b.Apple)
	}
	for i := range a.Snakes {
		if a.Snakes[i].Head.Pos != b.Snakes[i].Head.Pos || a.Snakes[i].Score != b.Snakes[i].Score {
			t.Errorf("snake %d diverged: %+v vs %+v", i, a.Snakes[i].Head, b.Snakes[i].Head)
		}
	}
}

func TestSimulationStopsWhenDead(t *testing.T) {
	cfg := config.DefaultClassicConfig()

	// Without steering the snake runs straight into the wall.
	round, err := snake.NewRound("classic", cfg)
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	if err := round.Enter(3); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	if err := newSimulation(round, cfg, 3, 0).run(1000); err != nil {
		t.Fatalf("run() failed: %v", err)
	}

	if round.Phase() != snake.PhaseDead {
		t.Fatalf("phase = %v, expected dead", round.Phase())
	}
	if round.Ticks() >= 1000 {
		t.Error("run should stop once the round is over")
	}
}

func TestSteerUsesPlayerKeys(t *testing.T) {
	cfg := config.DefaultDuelConfig()
	round, err := snake.NewRound("duel", cfg)
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	sim := newSimulation(round, cfg, 9, 1)

	owned := make(map[string]bool)
	for _, p := range cfg.Players {
		for _, keys := range p.Keys {
			for _, k := range keys {
				owned[k] = true
			}
		}
	}

	for i := 0; i < 50; i++ {
		frame := sim.steer()
		pressed := frame.Pressed()
		if len(pressed) == 0 {
			t.Fatal("turn probability 1 should always press")
		}
		for _, k := range pressed {
			if !owned[string(k)] {
				t.Errorf("pressed %q, which no player owns", k)
			}
		}
	}
}

func TestPrintSnapshot(t *testing.T) {
	round := runTestSim(t, config.DefaultDuelConfig(), 1, 5)

	var buf bytes.Buffer
	printSnapshot(&buf, round.Snapshot(), 1)

	out := buf.String()
	for _, want := range []string{round.ID(), "seed 1", "ticks: ", cfgName(0), cfgName(1)} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func cfgName(i int) string {
	return config.DefaultDuelConfig().Players[i].Name
}
