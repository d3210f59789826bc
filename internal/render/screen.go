// Package render provides a colored character buffer plus the world-to-cell
// projection used to draw simulation snapshots. It knows nothing about
// terminals; the TUI layer turns a Screen into styled output.
package render

import "strings"

// Cell is one character of the buffer with its color.
type Cell struct {
	Rune  rune
	Color Color
}

// Screen is a 2D cell buffer. Games draw into it with simple rune
// operations; the platform decides how to display it.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a cleared screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{width: width, height: height}
	s.allocate()
	s.Clear()
	return s
}

func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the buffer width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the buffer height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Resize changes the buffer dimensions and clears it.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width = width
	s.height = height
	s.allocate()
	s.Clear()
}

// Clear fills the buffer with uncolored spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = Cell{Rune: ' ', Color: ColorDefault}
		}
	}
}

// Set places a colored rune. Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Rune: r, Color: c}
}

// Get returns the cell at the given position, or a blank cell out of bounds.
func (s *Screen) Get(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' ', Color: ColorDefault}
	}
	return s.cells[y][x]
}

// DrawText writes a string horizontally starting at (x, y), clipped to the
// buffer.
func (s *Screen) DrawText(x, y int, text string, c Color) {
	for i, r := range text {
		s.Set(x+i, y, r, c)
	}
}

// DrawTextCentered draws text centered horizontally on the given row.
func (s *Screen) DrawTextCentered(y int, text string, c Color) {
	s.DrawText((s.width-len(text))/2, y, text, c)
}

// DrawBox draws a box outline using box-drawing characters.
func (s *Screen) DrawBox(x, y, w, h int, c Color) {
	s.Set(x, y, '┌', c)
	s.Set(x+w-1, y, '┐', c)
	s.Set(x, y+h-1, '└', c)
	s.Set(x+w-1, y+h-1, '┘', c)

	for i := x + 1; i < x+w-1; i++ {
		s.Set(i, y, '─', c)
		s.Set(i, y+h-1, '─', c)
	}
	for j := y + 1; j < y+h-1; j++ {
		s.Set(x, j, '│', c)
		s.Set(x+w-1, j, '│', c)
	}
}

// FillRect fills a rectangular area with the given rune.
func (s *Screen) FillRect(x, y, w, h int, r rune, c Color) {
	for j := y; j < y+h; j++ {
		for i := x; i < x+w; i++ {
			s.Set(i, j, r, c)
		}
	}
}

// String flattens the buffer to plain text, one line per row. Colors are
// dropped; used for tests and screenshots.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}
