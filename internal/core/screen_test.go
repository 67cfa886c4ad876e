package core

import "testing"

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

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds should be silent
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.SetBg(0, -1, ColorWhite)
	s.SetCell(0, 100, Cell{Rune: 'A'})

	if s.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenSetBgBlanksRune(t *testing.T) {
	s := NewScreen(4, 4)
	s.Set(1, 1, 'X')
	s.SetBg(1, 1, ColorYellow)

	cell := s.GetCell(1, 1)
	if cell.Rune != ' ' || cell.Bg != ColorYellow {
		t.Errorf("SetBg should blank rune and set bg, got %+v", cell)
	}
}

func TestScreenDrawTextKeepsBackground(t *testing.T) {
	s := NewScreen(20, 5)
	s.SetBg(2, 1, ColorYellow)
	s.DrawText(2, 1, "Hi", ColorBlack)

	cell := s.GetCell(2, 1)
	if cell.Rune != 'H' || cell.Fg != ColorBlack || cell.Bg != ColorYellow {
		t.Errorf("DrawText cell = %+v", cell)
	}

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorBlack)
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("Text should be clipped at right boundary")
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorWhite)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("DrawTextCentered failed, row = %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(1, 1, 5, 4, ColorDark)

	if s.Get(1, 1) != '┌' || s.Get(5, 1) != '┐' || s.Get(1, 4) != '└' || s.Get(5, 4) != '┘' {
		t.Errorf("corners wrong:\n%s", s.String())
	}
	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge wrong at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge wrong at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Fg != ColorDark {
		t.Error("box should use the outline color")
	}
}

func TestScreenDrawBoxDegenerate(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(3, 2, 3, 5, ColorDark)
	for y := 2; y <= 5; y++ {
		if s.Get(3, y) != '│' {
			t.Errorf("single-column box should be a vertical line, got %q at y=%d", s.Get(3, y), y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorWhite)
	s.DrawText(0, 1, "BBBBB", ColorWhite)
	s.DrawText(0, 2, "CCCCC", ColorWhite)

	expected := "AAAAA\nBBBBB\nCCCCC"
	if result := s.String(); result != expected {
		t.Errorf("String() = %q, expected %q", result, expected)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.Resize(8, 4)

	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("After resize, dimensions should be 8x4, got %dx%d", s.Width(), s.Height())
	}
	if s.Row(3) != "        " {
		t.Errorf("Resized screen should be blank, row 3 = %q", s.Row(3))
	}
}
