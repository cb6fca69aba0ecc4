package registry

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/snake-arena/internal/config"
)

func TestBuiltinModes(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("Expected at least 2 modes, got %d", len(list))
	}
	if list[0].ID != "classic" || list[1].ID != "duel" {
		t.Errorf("Modes not sorted: %v", list)
	}
	if !Exists("duel") || Exists("tetris") {
		t.Error("Exists() disagrees with the registered modes")
	}
	if _, err := Get("tetris"); err == nil {
		t.Error("Get() of an unknown mode should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Registering a duplicate mode should panic")
		}
	}()
	Register(Mode{ID: "classic"})
}

func TestNewRoundPerMode(t *testing.T) {
	tests := []struct {
		id      string
		players int
	}{
		{"classic", 1},
		{"duel", 2},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			r, err := NewRound(tt.id, Options{})
			if err != nil {
				t.Fatalf("NewRound() failed: %v", err)
			}
			if err := r.Enter(1); err != nil {
				t.Fatalf("Enter() failed: %v", err)
			}
			if got := len(r.Players()); got != tt.players {
				t.Errorf("players = %d, expected %d", got, tt.players)
			}
			if r.ModeID() != tt.id {
				t.Errorf("ModeID() = %q", r.ModeID())
			}
		})
	}
}

func TestModeConfigPreset(t *testing.T) {
	m, _ := Get("classic")

	cfg, err := m.Config(Options{Preset: config.DifficultyFixed})
	if err != nil {
		t.Fatalf("Config() failed: %v", err)
	}
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable the speed-up")
	}

	hard, _ := m.Config(Options{Preset: config.DifficultyHard})
	if hard.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard initial level = %v, expected 0.7", hard.Difficulty.InitialLevel)
	}
}

const fastClassic = `
arena: {width: 20, height: 12, tile_size: 16}
timing: {tick_rate: 20, deceleration: 0.9, min_interval_ms: 10}
snake: {initial_segments: 2, radius_factor: 0.5}
apple: {radius_factor: 0.5}
pause_key: p
players:
  - name: Solo
    start: {x: 0, y: 0}
    direction: up
    keys: {up: [up], down: [down], left: [left], right: [right]}
difficulty: {enabled: true, initial_level: 0.0, scaling: {speed_multiplier: 1.0}}
`

func TestModeCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fast.yaml")
	if err := os.WriteFile(path, []byte(fastClassic), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	r, err := NewRound("classic", Options{ConfigPath: path})
	if err != nil {
		t.Fatalf("NewRound() failed: %v", err)
	}
	if err := r.Enter(1); err != nil {
		t.Fatalf("Enter() failed: %v", err)
	}
	if r.Interval() != 50*time.Millisecond {
		t.Errorf("interval = %v, expected 50ms", r.Interval())
	}
	if got := r.Arena().HalfWidth(); got != 160 {
		t.Errorf("half width = %v, expected 160", got)
	}
}
