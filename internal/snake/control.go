package snake

import (
	"fmt"

	"github.com/vovakirdan/snake-arena/internal/core"
)

// ControlScheme maps a player's keys to directions. Keys are unique.
type ControlScheme struct {
	bindings map[core.Key]Direction
}

// NewControlScheme builds a scheme from direction names to key lists,
// the shape used by config files.
func NewControlScheme(keys map[string][]string) (ControlScheme, error) {
	cs := ControlScheme{bindings: make(map[core.Key]Direction)}
	for name, list := range keys {
		dir, err := ParseDirection(name)
		if err != nil {
			return ControlScheme{}, err
		}
		for _, k := range list {
			if prev, dup := cs.bindings[core.Key(k)]; dup && prev != dir {
				return ControlScheme{}, fmt.Errorf("snake: key %q bound to both %s and %s", k, prev, dir)
			}
			cs.bindings[core.Key(k)] = dir
		}
	}
	return cs, nil
}

// Bind maps a key to a direction, replacing any previous binding.
func (cs *ControlScheme) Bind(k core.Key, d Direction) {
	if cs.bindings == nil {
		cs.bindings = make(map[core.Key]Direction)
	}
	cs.bindings[k] = d
}

// Lookup returns the direction bound to k.
func (cs ControlScheme) Lookup(k core.Key) (Direction, bool) {
	d, ok := cs.bindings[k]
	return d, ok
}

// Owns reports whether k is bound in this scheme.
func (cs ControlScheme) Owns(k core.Key) bool {
	_, ok := cs.bindings[k]
	return ok
}

// Resolve picks the direction a snake heading in current should take given
// this tick's newly pressed keys. Keys are examined in arrival order and the
// last usable one wins. A direction opposite to current is never usable.
// ok is false when no key produced a usable direction.
func (cs ControlScheme) Resolve(pressed []core.Key, current Direction) (dir Direction, ok bool) {
	for _, k := range pressed {
		cand, bound := cs.bindings[k]
		if !bound || cand == current.Opposite() {
			continue
		}
		dir, ok = cand, true
	}
	return dir, ok
}
