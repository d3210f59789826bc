// Package config defines the world configuration and its YAML loading.
// The simulation core reads plain numbers from these structs; all file
// handling stays here so the core remains free of I/O.
package config

// Config holds every tunable constant of the asteroids world.
type Config struct {
	World       WorldSection      `yaml:"world"`
	Craft       CraftSection      `yaml:"craft"`
	Obstacles   ObstacleSection   `yaml:"obstacles"`
	Projectiles ProjectileSection `yaml:"projectiles"`
}

// WorldSection describes the toroidal play field.
type WorldSection struct {
	// BoundSize is the side length of the square world. Positions live in
	// [0, BoundSize) on both axes; exiting one edge re-enters the opposite.
	BoundSize float64 `yaml:"bound_size"`

	// InitialObstacles is the number of obstacles placed at world creation.
	InitialObstacles int `yaml:"initial_obstacles"`
}

// CraftSection describes the player craft.
type CraftSection struct {
	Radius float64 `yaml:"radius"`

	// ThrustAccel is the acceleration magnitude applied while thrust is on.
	ThrustAccel float64 `yaml:"thrust_accel"`

	// RotateRate is the torque magnitude set by a rotate command,
	// in degrees per tick squared.
	RotateRate float64 `yaml:"rotate_rate"`
}

// ObstacleSection describes the fragmenting obstacles.
type ObstacleSection struct {
	// StartRadius is the radius of freshly placed obstacles. An obstacle
	// fragments on destruction while its radius is at least StartRadius/4.
	StartRadius float64 `yaml:"start_radius"`

	// Speed is the magnitude of the initial obstacle velocity.
	Speed float64 `yaml:"speed"`
}

// ProjectileSection describes fired projectiles.
type ProjectileSection struct {
	Radius float64 `yaml:"radius"`

	// MuzzleVelocity is added along the craft's orientation on fire,
	// on top of the craft's own velocity.
	MuzzleVelocity float64 `yaml:"muzzle_velocity"`

	// LifetimeTicks is the projectile age limit; older projectiles expire.
	LifetimeTicks int64 `yaml:"lifetime_ticks"`
}

// FragmentThreshold returns the minimum radius at which a destroyed
// obstacle still splits into two children.
func (c Config) FragmentThreshold() float64 {
	return c.Obstacles.StartRadius / 4
}
