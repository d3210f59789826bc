package world

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

func TestWrapKeepsCoordinatesInBounds(t *testing.T) {
	const bound = 100.0

	positions := []float64{0, 0.5, 50, 99, 99.999}
	velocities := []float64{-99, -50, -0.1, 0, 0.1, 50, 99}

	for _, px := range positions {
		for _, py := range positions {
			for _, vx := range velocities {
				for _, vy := range velocities {
					b := Body{
						Position: vec.New(px, py),
						Velocity: vec.New(vx, vy),
					}
					got := Advance(b, bound).Position
					if got.X < 0 || got.X >= bound || got.Y < 0 || got.Y >= bound {
						t.Fatalf("Advance from (%v,%v) with velocity (%v,%v) left bounds: %v",
							px, py, vx, vy, got)
					}
				}
			}
		}
	}
}

func TestWrapReentersOppositeEdge(t *testing.T) {
	const bound = 100.0

	tests := []struct {
		name string
		pos  vec.Vec
		vel  vec.Vec
		want vec.Vec
	}{
		{"exit right", vec.New(99, 50), vec.New(3, 0), vec.New(2, 50)},
		{"exit left", vec.New(1, 50), vec.New(-3, 0), vec.New(98, 50)},
		{"exit bottom", vec.New(50, 99), vec.New(0, 3), vec.New(50, 2)},
		{"exit top", vec.New(50, 1), vec.New(0, -3), vec.New(50, 98)},
		{"no exit", vec.New(50, 50), vec.New(3, -3), vec.New(53, 47)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Advance(Body{Position: tc.pos, Velocity: tc.vel}, bound).Position
			if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
				t.Errorf("position = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAdvanceAppliesAngularAndLinearMotion(t *testing.T) {
	b := Body{
		Position:     vec.New(10, 10),
		Velocity:     vec.New(1, 2),
		Acceleration: vec.New(0.5, 0),
		Orientation:  30,
		AngularVel:   2,
		Torque:       1,
	}

	got := Advance(b, 100)

	if got.AngularVel != 3 {
		t.Errorf("AngularVel = %v, want 3 (angular velocity plus torque)", got.AngularVel)
	}
	if got.Orientation != 33 {
		t.Errorf("Orientation = %v, want 33 (orientation plus new angular velocity)", got.Orientation)
	}
	if got.Position.X != 11 || got.Position.Y != 12 {
		t.Errorf("Position = %v, want (11, 12)", got.Position)
	}
	if got.Velocity.X != 1.5 || got.Velocity.Y != 2 {
		t.Errorf("Velocity = %v, want (1.5, 2)", got.Velocity)
	}
}

func TestAdvanceLeavesInputUntouched(t *testing.T) {
	b := Body{
		Position: vec.New(99, 99),
		Velocity: vec.New(5, 5),
		Torque:   1,
	}
	before := b

	Advance(b, 100)

	if b != before {
		t.Errorf("Advance mutated its input: %+v, want %+v", b, before)
	}
}
