// Package registry provides a global registry of game modes.
// A mode names a config and knows how to build a round from it, allowing
// the CLI and the TUI to discover modes without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/snake-arena/internal/config"
	"github.com/vovakirdan/snake-arena/internal/snake"
)

// Mode describes a registered game mode.
type Mode struct {
	ID          string
	Title       string
	Description string
}

// Options selects how a mode's config is resolved.
type Options struct {
	ConfigPath string                  // Overrides the config search order
	Preset     config.DifficultyPreset // Empty keeps the config's difficulty
}

var (
	modes = make(map[string]Mode)
	mu    sync.RWMutex
)

func init() {
	Register(Mode{ID: "classic", Title: "Classic", Description: "One snake, arrows or WASD"})
	Register(Mode{ID: "duel", Title: "Duel", Description: "Two snakes on one keyboard"})
}

// Register adds a mode to the registry.
// Panics if a mode with the same ID is already registered.
func Register(m Mode) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := modes[m.ID]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", m.ID))
	}
	modes[m.ID] = m
}

// List returns all registered modes, sorted by ID.
func List() []Mode {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Mode, 0, len(modes))
	for _, m := range modes {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Get returns a mode by its ID.
func Get(id string) (Mode, error) {
	mu.RLock()
	defer mu.RUnlock()

	m, ok := modes[id]
	if !ok {
		return Mode{}, fmt.Errorf("registry: unknown mode %q", id)
	}
	return m, nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := modes[id]
	return ok
}

// Config loads and validates the mode's config with the preset applied.
func (m Mode) Config(opts Options) (config.SnakeConfig, error) {
	cfg, err := config.Load(m.ID, opts.ConfigPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, opts.Preset)
	return cfg, nil
}

// NewRound builds an inactive round for the mode.
func (m Mode) NewRound(opts Options, roundOpts ...snake.Option) (*snake.Round, error) {
	cfg, err := m.Config(opts)
	if err != nil {
		return nil, err
	}
	return snake.NewRound(m.ID, cfg, roundOpts...)
}

// NewRound is a shorthand for Get followed by Mode.NewRound.
func NewRound(id string, opts Options, roundOpts ...snake.Option) (*snake.Round, error) {
	m, err := Get(id)
	if err != nil {
		return nil, err
	}
	return m.NewRound(opts, roundOpts...)
}
