package snake

import (
	"math"
	"testing"

	"github.com/vovakirdan/snake-arena/internal/core"
)

func arrowScheme(t *testing.T) ControlScheme {
	t.Helper()
	cs, err := NewControlScheme(map[string][]string{
		"up":    {"up", "w"},
		"down":  {"down", "s"},
		"left":  {"left", "a"},
		"right": {"right", "d"},
	})
	if err != nil {
		t.Fatalf("NewControlScheme() failed: %v", err)
	}
	return cs
}

func TestResolve(t *testing.T) {
	cs := arrowScheme(t)

	tests := []struct {
		name    string
		current Direction
		pressed []core.Key
		want    Direction
		wantOK  bool
	}{
		{"no keys", DirRight, nil, DirRight, false},
		{"unbound key", DirRight, []core.Key{"x"}, DirRight, false},
		{"turn up", DirRight, []core.Key{"up"}, DirUp, true},
		{"alias key", DirRight, []core.Key{"s"}, DirDown, true},
		{"reversal ignored", DirRight, []core.Key{"left"}, DirRight, false},
		{"reversal ignored vertical", DirUp, []core.Key{"down"}, DirUp, false},
		{"last key wins", DirRight, []core.Key{"up", "down"}, DirDown, true},
		{"reversal after valid keeps valid", DirRight, []core.Key{"up", "left"}, DirUp, true},
		{"reversal before valid", DirRight, []core.Key{"left", "up"}, DirUp, true},
		{"same direction", DirRight, []core.Key{"d"}, DirRight, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := cs.Resolve(tt.pressed, tt.current)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, expected %v", ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("Resolve() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestNewControlSchemeErrors(t *testing.T) {
	if _, err := NewControlScheme(map[string][]string{"sideways": {"x"}}); err == nil {
		t.Error("unknown direction should fail")
	}
	if _, err := NewControlScheme(map[string][]string{"up": {"k"}, "down": {"k"}}); err == nil {
		t.Error("a key bound to two directions should fail")
	}
}

func TestControlSchemeOwns(t *testing.T) {
	var cs ControlScheme
	cs.Bind("i", DirUp)

	if !cs.Owns("i") {
		t.Error("bound key should be owned")
	}
	if cs.Owns("k") {
		t.Error("unbound key should not be owned")
	}
	if d, ok := cs.Lookup("i"); !ok || d != DirUp {
		t.Errorf("Lookup(i) = %v, %v", d, ok)
	}
}

func TestDirectionOpposite(t *testing.T) {
	pairs := map[Direction]Direction{
		DirUp:    DirDown,
		DirDown:  DirUp,
		DirLeft:  DirRight,
		DirRight: DirLeft,
	}
	for d, want := range pairs {
		if got := d.Opposite(); got != want {
			t.Errorf("%v.Opposite() = %v, expected %v", d, got, want)
		}
		if d.Vector().Add(d.Opposite().Vector()) != (core.Vec2{}) {
			t.Errorf("%v and its opposite should cancel out", d)
		}
	}
}

func TestDirectionRotation(t *testing.T) {
	tests := []struct {
		d    Direction
		want float64
	}{
		{DirRight, 0},
		{DirUp, math.Pi / 2},
		{DirLeft, math.Pi},
		{DirDown, -math.Pi / 2},
	}
	for _, tt := range tests {
		if got := tt.d.Rotation(); got != tt.want {
			t.Errorf("%v.Rotation() = %v, expected %v", tt.d, got, tt.want)
		}
	}
}

func TestDirectionOf(t *testing.T) {
	tests := []struct {
		delta  core.Vec2
		want   Direction
		wantOK bool
	}{
		{core.Vec2{X: 32}, DirRight, true},
		{core.Vec2{X: -32}, DirLeft, true},
		{core.Vec2{Y: 32}, DirUp, true},
		{core.Vec2{Y: -32}, DirDown, true},
		{core.Vec2{}, DirRight, false},
	}
	for _, tt := range tests {
		got, ok := directionOf(tt.delta)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("directionOf(%v) = %v, %v; expected %v, %v", tt.delta, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseDirection(t *testing.T) {
	for _, name := range []string{"up", "down", "left", "right"} {
		d, err := ParseDirection(name)
		if err != nil {
			t.Fatalf("ParseDirection(%q) failed: %v", name, err)
		}
		if d.String() != name {
			t.Errorf("round trip %q -> %q", name, d.String())
		}
	}
	if _, err := ParseDirection("north"); err == nil {
		t.Error("ParseDirection(north) should fail")
	}
}
