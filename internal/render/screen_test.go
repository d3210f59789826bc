package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

func TestSetGet(t *testing.T) {
	s := NewScreen(10, 5)

	s.Set(3, 2, '#', ColorCyan)
	if got := s.Get(3, 2); got.Rune != '#' || got.Color != ColorCyan {
		t.Errorf("Get(3,2) = %+v, want '#' cyan", got)
	}
	if got := s.Get(0, 0); got.Rune != ' ' || got.Color != ColorDefault {
		t.Errorf("untouched cell = %+v, want blank", got)
	}
}

func TestSetOutOfBoundsIsIgnored(t *testing.T) {
	s := NewScreen(4, 4)

	for _, pt := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}, {100, 100}} {
		s.Set(pt[0], pt[1], 'X', ColorRed)
	}

	if strings.ContainsRune(s.String(), 'X') {
		t.Error("out-of-bounds Set leaked into the buffer")
	}
	if got := s.Get(-1, -1); got.Rune != ' ' {
		t.Errorf("out-of-bounds Get = %+v, want blank", got)
	}
}

func TestDrawTextClips(t *testing.T) {
	s := NewScreen(5, 1)
	s.DrawText(3, 0, "hello", ColorWhite)

	if got := s.String(); got != "   he" {
		t.Errorf("clipped text = %q, want %q", got, "   he")
	}
}

func TestDrawTextCentered(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "abc", ColorWhite)

	if got := s.String(); got != "    abc    " {
		t.Errorf("centered text = %q", got)
	}
}

func TestResizeClears(t *testing.T) {
	s := NewScreen(6, 3)
	s.Set(1, 1, '#', ColorWhite)

	s.Resize(8, 2)
	if s.Width() != 8 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, want 8x2", s.Width(), s.Height())
	}
	if strings.ContainsRune(s.String(), '#') {
		t.Error("Resize should clear the buffer")
	}

	// Same dimensions: contents survive.
	s.Set(1, 1, '#', ColorWhite)
	s.Resize(8, 2)
	if s.Get(1, 1).Rune != '#' {
		t.Error("no-op Resize should keep contents")
	}
}

func TestFillRectAndBox(t *testing.T) {
	s := NewScreen(8, 6)

	s.FillRect(2, 1, 4, 3, '.', ColorGray)
	if s.Get(2, 1).Rune != '.' || s.Get(5, 3).Rune != '.' {
		t.Error("FillRect missed a corner of the area")
	}
	if s.Get(6, 1).Rune != ' ' || s.Get(2, 4).Rune != ' ' {
		t.Error("FillRect spilled outside the area")
	}

	s.DrawBox(1, 0, 6, 5, ColorWhite)
	if s.Get(1, 0).Rune != '┌' || s.Get(6, 0).Rune != '┐' ||
		s.Get(1, 4).Rune != '└' || s.Get(6, 4).Rune != '┘' {
		t.Error("DrawBox corners wrong")
	}
	if s.Get(3, 0).Rune != '─' || s.Get(1, 2).Rune != '│' {
		t.Error("DrawBox edges wrong")
	}
}

func TestProjectionPoint(t *testing.T) {
	// 100-unit world onto a 50x25 grid: x halves, y quarters.
	p := NewProjection(100, 50, 25)

	x, y := p.Point(vec.New(100, 100))
	if x != 50 || y != 25 {
		t.Errorf("Point(100,100) = (%d,%d), want (50,25)", x, y)
	}
	x, y = p.Point(vec.New(40, 40))
	if x != 20 || y != 10 {
		t.Errorf("Point(40,40) = (%d,%d), want (20,10)", x, y)
	}

	rx, ry := p.Radii(10)
	if rx != 5 || ry != 2.5 {
		t.Errorf("Radii(10) = (%v,%v), want (5, 2.5)", rx, ry)
	}
}

func TestDrawEllipseTinyCollapsesToCell(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawEllipse(5, 5, 0.4, 0.2, 'o', ColorGray)

	count := 0
	for _, r := range s.String() {
		if r == 'o' {
			count++
		}
	}
	if count != 1 {
		t.Errorf("tiny ellipse drew %d cells, want 1", count)
	}
	if s.Get(5, 5).Rune != 'o' {
		t.Error("tiny ellipse missed its center cell")
	}
}

func TestDrawEllipseOutline(t *testing.T) {
	s := NewScreen(21, 21)
	s.DrawEllipse(10, 10, 6, 4, 'o', ColorGray)

	// Extremes of both axes are on the outline, the center is not.
	for _, pt := range [][2]int{{16, 10}, {4, 10}, {10, 14}, {10, 6}} {
		if s.Get(pt[0], pt[1]).Rune != 'o' {
			t.Errorf("outline missing at (%d,%d)", pt[0], pt[1])
		}
	}
	if s.Get(10, 10).Rune != ' ' {
		t.Error("ellipse outline should leave the center empty")
	}
}
