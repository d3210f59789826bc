package world

import (
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/vec"
)

func TestNewWorld(t *testing.T) {
	cfg := testConfig()
	spawns := []Spawn{
		{Position: vec.New(10, 20), Heading: 0},
		{Position: vec.New(400, 100), Heading: 90},
		{Position: vec.New(50, 450), Heading: 180},
	}

	s := New(cfg, spawns)

	if s.Time != 0 || s.Terminated {
		t.Errorf("fresh world should start at time 0, not terminated")
	}
	if s.Craft.Kind != KindCraft || s.Craft.ID != CraftID {
		t.Errorf("craft = %+v", s.Craft)
	}

	center := vec.New(cfg.World.BoundSize/2, cfg.World.BoundSize/2)
	if s.Craft.Position != center {
		t.Errorf("craft position = %v, want centered at %v", s.Craft.Position, center)
	}
	if s.Craft.Velocity != (vec.Vec{}) {
		t.Errorf("craft should start at rest, velocity %v", s.Craft.Velocity)
	}

	if len(s.Projectiles) != 0 {
		t.Errorf("fresh world has %d projectiles, want 0", len(s.Projectiles))
	}
	if len(s.Obstacles) != len(spawns) {
		t.Fatalf("obstacle count = %d, want %d", len(s.Obstacles), len(spawns))
	}
	if s.NextID != int64(len(spawns)) {
		t.Errorf("NextID = %d, want %d", s.NextID, len(spawns))
	}

	for i, o := range s.Obstacles {
		if o.ID != obstacleID(int64(i)) {
			t.Errorf("obstacle %d ID = %q, want %q", i, o.ID, obstacleID(int64(i)))
		}
		if o.Radius != cfg.Obstacles.StartRadius {
			t.Errorf("obstacle %d radius = %v, want %v", i, o.Radius, cfg.Obstacles.StartRadius)
		}
		if got := o.Velocity.Length(); math.Abs(got-cfg.Obstacles.Speed) > 1e-9 {
			t.Errorf("obstacle %d speed = %v, want %v", i, got, cfg.Obstacles.Speed)
		}
	}
}

func TestScatterIsDeterministicPerSeed(t *testing.T) {
	cfg := testConfig()

	a := Scatter(rand.New(rand.NewSource(7)), cfg)
	b := Scatter(rand.New(rand.NewSource(7)), cfg)

	if !reflect.DeepEqual(a, b) {
		t.Error("same seed should produce the same spawns")
	}
	if len(a) != cfg.World.InitialObstacles {
		t.Errorf("spawn count = %d, want %d", len(a), cfg.World.InitialObstacles)
	}
}

func TestScatterKeepsClearOfCraft(t *testing.T) {
	cfg := testConfig()
	center := vec.New(cfg.World.BoundSize/2, cfg.World.BoundSize/2)
	clearance := cfg.Craft.Radius + cfg.Obstacles.StartRadius

	for seed := int64(0); seed < 25; seed++ {
		for _, sp := range Scatter(rand.New(rand.NewSource(seed)), cfg) {
			if sp.Position.Dist(center) < clearance {
				t.Fatalf("seed %d: spawn at %v too close to craft", seed, sp.Position)
			}
		}
	}
}

func TestNewWorldIsNotBornTerminated(t *testing.T) {
	cfg := testConfig()
	r := NewReducer(cfg)

	for seed := int64(0); seed < 25; seed++ {
		s := New(cfg, Scatter(rand.New(rand.NewSource(seed)), cfg))
		if got := r.Reduce(s, TimeAdvance{Elapsed: 1}); got.Terminated {
			t.Fatalf("seed %d: world terminated on the first tick", seed)
		}
	}
}
