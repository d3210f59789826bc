package world

import "github.com/vovakirdan/tui-asteroids/internal/vec"

// Advance applies one step of motion to a body and returns the result:
// torque feeds angular velocity, angular velocity feeds orientation, velocity
// feeds position (wrapped across the toroidal boundary) and acceleration
// feeds velocity. Pure and total; the input body is untouched.
func Advance(b Body, bound float64) Body {
	b.AngularVel += b.Torque
	b.Orientation += b.AngularVel
	b.Position = Wrap(b.Position.Add(b.Velocity), bound)
	b.Velocity = b.Velocity.Add(b.Acceleration)
	return b
}

// Wrap maps a position onto the torus [0, bound) x [0, bound). A coordinate
// is corrected by at most one bound length, which covers any single-step
// displacement smaller than the world.
func Wrap(p vec.Vec, bound float64) vec.Vec {
	return vec.New(wrapCoord(p.X, bound), wrapCoord(p.Y, bound))
}

func wrapCoord(x, bound float64) float64 {
	if x < 0 {
		x += bound
	}
	if x >= bound {
		x -= bound
	}
	return x
}
