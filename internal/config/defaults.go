package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultYAML []byte

// Default returns the default world configuration.
// Kept in sync with the embedded defaults/asteroids.yaml.
func Default() Config {
	return Config{
		World: WorldSection{
			BoundSize:        480,
			InitialObstacles: 4,
		},
		Craft: CraftSection{
			Radius:      12,
			ThrustAccel: 0.18,
			RotateRate:  1.5,
		},
		Obstacles: ObstacleSection{
			StartRadius: 40,
			Speed:       2.5,
		},
		Projectiles: ProjectileSection{
			Radius:         2,
			MuzzleVelocity: 8,
			LifetimeTicks:  90,
		},
	}
}
