// Package world implements the deterministic asteroids simulation core:
// the immutable world state, the per-tick integrator, the collision and
// fragmentation engine, and the event reducer that folds timed ticks and
// player commands into successive states.
//
// The package contains no I/O, no clocks and no ambient randomness; the same
// event sequence applied to the same initial state always reproduces the
// same sequence of states.
package world

import (
	"strconv"

	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

// Kind classifies a body. It drives rendering and collision eligibility and
// never changes after creation.
type Kind int

const (
	KindCraft Kind = iota
	KindObstacle
	KindProjectile
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindCraft:
		return "craft"
	case KindObstacle:
		return "obstacle"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}

// CraftID is the identity of the single player craft.
const CraftID = "craft"

// Body is any circular physical object in the world: the craft, an obstacle
// or a projectile. Bodies are plain values; the reducer replaces them rather
// than mutating them in place.
type Body struct {
	// ID is unique among all currently live bodies of every kind.
	ID   string
	Kind Kind

	Position     vec.Vec
	Velocity     vec.Vec
	Acceleration vec.Vec

	// Orientation is the heading in degrees. AngularVel is added to it each
	// tick; Torque is the rotation input set by rotate commands and is added
	// to AngularVel each tick.
	Orientation float64
	AngularVel  float64
	Torque      float64

	// Radius is the collision geometry; always positive.
	Radius float64

	// CreatedAt is the tick count at which the body entered the world.
	// Projectile expiry is computed against it.
	CreatedAt int64
}

// Collides reports whether two bodies overlap. The test is symmetric.
func (b Body) Collides(other Body) bool {
	return b.Position.Dist(other.Position) < b.Radius+other.Radius
}

// obstacleID mints the identity for an obstacle from the state's ID counter.
func obstacleID(n int64) string {
	return "rock-" + strconv.FormatInt(n, 10)
}

// projectileID mints the identity for a projectile from the state's ID counter.
func projectileID(n int64) string {
	return "shot-" + strconv.FormatInt(n, 10)
}
