package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 {
		t.Errorf("Width() = %d, expected 80", s.Width())
	}
	if s.Height() != 24 {
		t.Errorf("Height() = %d, expected 24", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red 'X'", c)
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)
	s.DrawText(2, 1, "Hello")

	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q, expected prefix %q", got, "  Hello")
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "abc")
	if s.Get(18, 0) != 'a' || s.Get(19, 0) != 'b' {
		t.Errorf("clipped text not drawn correctly: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc")

	if got := s.Row(0); got != "    abc    " {
		t.Errorf("Row(0) = %q, expected %q", got, "    abc    ")
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorGray)

	expected := []string{
		"┌───┐",
		"│   │",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
	if s.GetCell(0, 0).Color != ColorGray {
		t.Error("box should carry the requested colour")
	}
}

func TestScreenFillRectAndClear(t *testing.T) {
	s := NewScreen(4, 4)
	s.FillRect(NewRect(1, 1, 2, 2), '#')

	if s.Get(1, 1) != '#' || s.Get(2, 2) != '#' || s.Get(3, 3) != ' ' {
		t.Errorf("FillRect drew wrong area:\n%s", s.String())
	}

	s.Clear()
	if strings.Contains(s.String(), "#") {
		t.Error("Clear should remove all content")
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(0, 0, 'X')
	s.Resize(6, 2)

	if s.Width() != 6 || s.Height() != 2 {
		t.Errorf("Resize: got %dx%d, expected 6x2", s.Width(), s.Height())
	}
	if lines := strings.Split(s.String(), "\n"); len(lines) != 2 {
		t.Errorf("String() has %d lines, expected 2", len(lines))
	}
}
