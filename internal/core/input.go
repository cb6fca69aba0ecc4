package core

// Key is a raw input symbol as reported by the input layer (e.g. "up", "w").
// The simulation never interprets keys itself; players bind them to
// directions through their control schemes.
type Key string

// InputFrame holds the keys that transitioned to pressed during one
// simulation tick, in the order they arrived.
type InputFrame struct {
	pressed []Key
	seen    map[Key]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(keys ...Key) InputFrame {
	f := InputFrame{seen: make(map[Key]bool)}
	for _, k := range keys {
		f.Press(k)
	}
	return f
}

// Press records a newly pressed key. Repeated presses within one frame are
// kept in arrival order so that the most recent one wins.
func (f *InputFrame) Press(k Key) {
	if f.seen == nil {
		f.seen = make(map[Key]bool)
	}
	f.pressed = append(f.pressed, k)
	f.seen[k] = true
}

// Has returns true if the key was pressed this frame.
func (f InputFrame) Has(k Key) bool {
	return f.seen[k]
}

// Pressed returns the newly pressed keys in arrival order.
func (f InputFrame) Pressed() []Key {
	return f.pressed
}

// Empty reports whether no key was pressed this frame.
func (f InputFrame) Empty() bool {
	return len(f.pressed) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.pressed = f.pressed[:0]
	for k := range f.seen {
		delete(f.seen, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	return NewInputFrame(f.pressed...)
}
