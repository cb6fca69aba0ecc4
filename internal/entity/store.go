// Package entity provides a generational-index store for round-scoped
// entities. Entities refer to each other by ID only; a stale ID (one whose
// slot has since been freed or reused) never resolves to the new occupant.
package entity

import "errors"

// ErrNotFound is returned when an ID does not refer to a live entity.
var ErrNotFound = errors.New("entity: not found")

// ID is a generational handle into a Store.
// The zero ID is never issued and always fails lookups.
type ID struct {
	index uint32
	gen   uint32
}

// Nil is the zero ID.
var Nil ID

// IsNil reports whether id is the zero ID.
func (id ID) IsNil() bool {
	return id == Nil
}

// Index returns the slot index (for logging and debugging).
func (id ID) Index() uint32 {
	return id.index
}

type slot[T any] struct {
	gen   uint32 // Odd while occupied, even while free
	value T
}

// Store is a generic container for entities of type T.
// Slots are recycled; each reuse bumps the slot's generation.
// Not safe for concurrent use.
type Store[T any] struct {
	slots []slot[T]
	free  []uint32
	live  int
}

// NewStore creates an empty store.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		slots: make([]slot[T], 0, 64),
	}
}

// Insert adds an entity and returns its handle.
func (s *Store[T]) Insert(v T) ID {
	var idx uint32
	if n := len(s.free); n > 0 {
		idx = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		idx = uint32(len(s.slots))
		s.slots = append(s.slots, slot[T]{})
	}

	sl := &s.slots[idx]
	sl.gen++
	sl.value = v
	s.live++

	// Index is stored off by one so that the zero ID stays invalid.
	return ID{index: idx + 1, gen: sl.gen}
}

func (s *Store[T]) lookup(id ID) (*slot[T], bool) {
	if id.index == 0 || int(id.index) > len(s.slots) {
		return nil, false
	}
	sl := &s.slots[id.index-1]
	if sl.gen != id.gen || sl.gen%2 == 0 {
		return nil, false
	}
	return sl, true
}

// Get returns a pointer to the entity for in-place mutation.
// The pointer is valid until the next Insert.
func (s *Store[T]) Get(id ID) (*T, error) {
	sl, ok := s.lookup(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &sl.value, nil
}

// Has reports whether id refers to a live entity.
func (s *Store[T]) Has(id ID) bool {
	_, ok := s.lookup(id)
	return ok
}

// Remove deletes the entity. Returns false if it was already gone.
func (s *Store[T]) Remove(id ID) bool {
	sl, ok := s.lookup(id)
	if !ok {
		return false
	}
	var zero T
	sl.value = zero
	sl.gen++
	s.free = append(s.free, id.index-1)
	s.live--
	return true
}

// Len returns the number of live entities.
func (s *Store[T]) Len() int {
	return s.live
}

// IDs returns the handles of all live entities in slot order.
func (s *Store[T]) IDs() []ID {
	ids := make([]ID, 0, s.live)
	for i := range s.slots {
		if s.slots[i].gen%2 == 1 {
			ids = append(ids, ID{index: uint32(i) + 1, gen: s.slots[i].gen})
		}
	}
	return ids
}

// Each calls fn for every live entity in slot order.
// fn must not insert into or remove from the store.
func (s *Store[T]) Each(fn func(ID, *T)) {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.gen%2 == 1 {
			fn(ID{index: uint32(i) + 1, gen: sl.gen}, &sl.value)
		}
	}
}

// Clear removes every entity. Generations are preserved so that IDs issued
// before the clear stay invalid afterwards.
func (s *Store[T]) Clear() {
	var zero T
	s.free = s.free[:0]
	for i := len(s.slots) - 1; i >= 0; i-- {
		sl := &s.slots[i]
		if sl.gen%2 == 1 {
			sl.gen++
		}
		sl.value = zero
		s.free = append(s.free, uint32(i))
	}
	s.live = 0
}
