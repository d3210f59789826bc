package render

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

// Projection maps square world coordinates onto a rectangular cell grid.
// Terminal cells are roughly twice as tall as wide, so the two axes carry
// independent scale factors and circles come out as ellipses in cell space.
type Projection struct {
	scaleX float64
	scaleY float64
}

// NewProjection builds the projection from the world bound onto a w x h grid.
func NewProjection(bound float64, w, h int) Projection {
	return Projection{
		scaleX: float64(w) / bound,
		scaleY: float64(h) / bound,
	}
}

// Point converts a world position to cell coordinates.
func (p Projection) Point(v vec.Vec) (int, int) {
	return int(v.X * p.scaleX), int(v.Y * p.scaleY)
}

// Radii converts a world radius to the horizontal and vertical cell radii of
// its projected ellipse.
func (p Projection) Radii(r float64) (float64, float64) {
	return r * p.scaleX, r * p.scaleY
}

// DrawEllipse draws an ellipse outline centered at cell (cx, cy). Radii of
// less than one cell collapse to a single cell.
func (s *Screen) DrawEllipse(cx, cy int, rx, ry float64, r rune, c Color) {
	if rx < 1 && ry < 1 {
		s.Set(cx, cy, r, c)
		return
	}

	// Sample densely enough that adjacent samples land on neighboring
	// cells even on the widest ellipse we draw.
	steps := int(8 * (rx + ry))
	if steps < 16 {
		steps = 16
	}
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		x := cx + int(math.Round(rx*math.Cos(a)))
		y := cy + int(math.Round(ry*math.Sin(a)))
		s.Set(x, y, r, c)
	}
}
