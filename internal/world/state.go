package world

import (
	"math/rand"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

// State is the complete snapshot of the simulation at one tick. Every event
// produces a brand-new State value; collections are rebuilt, never shared,
// so a snapshot handed to the presentation layer stays valid forever.
type State struct {
	// Time is the tick counter; monotonically non-decreasing.
	Time int64

	// Craft is the single player craft.
	Craft Body

	// Projectiles in firing order.
	Projectiles []Body

	// Obstacles in spawn order.
	Obstacles []Body

	// Departed holds the bodies removed during the current step (expired or
	// collided), deduplicated by ID. It exists for presentation cleanup only
	// and is replaced on every time advance.
	Departed []Body

	// NextID mints identities for new projectiles and obstacle fragments.
	NextID int64

	// Terminated is set when the craft hits an obstacle. Once set, no
	// further physics is applied.
	Terminated bool
}

// Spawn places one initial obstacle: a position and a heading in degrees for
// its unit-speed direction. Spawns are supplied externally so tests and
// replays control the otherwise random placement.
type Spawn struct {
	Position vec.Vec
	Heading  float64
}

// New builds the initial world: craft centered and at rest, no projectiles,
// one obstacle per spawn travelling at the configured speed.
func New(cfg config.Config, spawns []Spawn) State {
	center := vec.New(cfg.World.BoundSize/2, cfg.World.BoundSize/2)

	craft := Body{
		ID:          CraftID,
		Kind:        KindCraft,
		Position:    center,
		Orientation: -90, // pointing up on screen
		Radius:      cfg.Craft.Radius,
	}

	obstacles := make([]Body, 0, len(spawns))
	for i, sp := range spawns {
		obstacles = append(obstacles, Body{
			ID:       obstacleID(int64(i)),
			Kind:     KindObstacle,
			Position: Wrap(sp.Position, cfg.World.BoundSize),
			Velocity: vec.FromAngle(sp.Heading).Scale(cfg.Obstacles.Speed),
			Radius:   cfg.Obstacles.StartRadius,
		})
	}

	return State{
		Craft:     craft,
		Obstacles: obstacles,
		NextID:    int64(len(spawns)),
	}
}

// Scatter produces randomized obstacle spawns from the injected source.
// Obstacles are kept away from the craft's starting position at the center
// so a fresh world never begins terminated.
func Scatter(rng *rand.Rand, cfg config.Config) []Spawn {
	center := vec.New(cfg.World.BoundSize/2, cfg.World.BoundSize/2)
	clearance := cfg.Craft.Radius + cfg.Obstacles.StartRadius*2

	spawns := make([]Spawn, 0, cfg.World.InitialObstacles)
	for len(spawns) < cfg.World.InitialObstacles {
		pos := vec.New(
			rng.Float64()*cfg.World.BoundSize,
			rng.Float64()*cfg.World.BoundSize,
		)
		if pos.Dist(center) < clearance {
			continue
		}
		spawns = append(spawns, Spawn{
			Position: pos,
			Heading:  rng.Float64() * 360,
		})
	}
	return spawns
}
