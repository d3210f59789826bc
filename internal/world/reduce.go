package world

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

// Reducer is the pure state-transition function of the simulation. It holds
// only the immutable world configuration; all mutable data travels inside
// the State values, so one reducer can serve any number of concurrent
// sessions or replays.
type Reducer struct {
	cfg config.Config
}

// NewReducer creates a reducer for the given world configuration.
func NewReducer(cfg config.Config) *Reducer {
	return &Reducer{cfg: cfg}
}

// Config returns the world configuration the reducer was built with.
func (r *Reducer) Config() config.Config {
	return r.cfg
}

// Reduce maps (state, event) to the next state. It is total: every event is
// defined for every reachable state and nothing fails. A terminated state is
// a fixed point; every event returns it unchanged.
func (r *Reducer) Reduce(s State, ev Event) State {
	if s.Terminated {
		return s
	}

	switch ev := ev.(type) {
	case TimeAdvance:
		return r.advanceTime(s, ev.Elapsed)
	case Rotate:
		craft := s.Craft
		craft.Torque = ev.Direction * r.cfg.Craft.RotateRate
		s.Craft = craft
		return s
	case Thrust:
		craft := s.Craft
		if ev.On {
			craft.Acceleration = vec.FromAngle(craft.Orientation).Scale(r.cfg.Craft.ThrustAccel)
		} else {
			craft.Acceleration = vec.Vec{}
		}
		s.Craft = craft
		return s
	case Fire:
		return r.fire(s)
	}

	// Unreachable for the closed event set.
	return s
}

// advanceTime performs one physics step: expire old projectiles, integrate
// every surviving body, then run the collision pass, which may extend the
// departed set and terminate the session.
func (r *Reducer) advanceTime(s State, elapsed int64) State {
	bound := r.cfg.World.BoundSize

	// Expiry happens before integration and collision so an expired
	// projectile can never also collide this step.
	var expired []Body
	active := make([]Body, 0, len(s.Projectiles))
	for _, p := range s.Projectiles {
		if elapsed-p.CreatedAt > r.cfg.Projectiles.LifetimeTicks {
			expired = append(expired, p)
			continue
		}
		active = append(active, Advance(p, bound))
	}

	obstacles := make([]Body, 0, len(s.Obstacles))
	for _, o := range s.Obstacles {
		obstacles = append(obstacles, Advance(o, bound))
	}

	s.Craft = Advance(s.Craft, bound)
	s.Projectiles = active
	s.Obstacles = obstacles
	s.Departed = expired
	s.Time = elapsed

	return r.resolveCollisions(s)
}

// fire appends one projectile at the craft's nose. No collision test runs on
// the firing step itself; the projectile first participates on the next
// time advance.
func (r *Reducer) fire(s State) State {
	nose := vec.FromAngle(s.Craft.Orientation)

	p := Body{
		ID:          projectileID(s.NextID),
		Kind:        KindProjectile,
		Position:    Wrap(s.Craft.Position.Add(nose.Scale(s.Craft.Radius)), r.cfg.World.BoundSize),
		Velocity:    s.Craft.Velocity.Add(nose.Scale(r.cfg.Projectiles.MuzzleVelocity)),
		Orientation: s.Craft.Orientation,
		Radius:      r.cfg.Projectiles.Radius,
		CreatedAt:   s.Time,
	}

	projectiles := make([]Body, 0, len(s.Projectiles)+1)
	projectiles = append(projectiles, s.Projectiles...)
	s.Projectiles = append(projectiles, p)
	s.NextID++

	return s
}
