package world

// resolveCollisions runs the per-step collision and fragmentation pass over
// an already-integrated state.
//
// All projectile-obstacle pairs are tested in one batch before anything is
// removed. A projectile within range of two obstacles destroys both; it is
// itself removed once. Computing the full batch instead of first-match-wins
// keeps the outcome independent of collection iteration order, which is what
// makes fragmentation reproducible in tests and replays.
func (r *Reducer) resolveCollisions(s State) State {
	// Craft-obstacle: any overlap ends the session. The colliding obstacle
	// is left in place; only the flag changes.
	for _, o := range s.Obstacles {
		if s.Craft.Collides(o) {
			s.Terminated = true
			break
		}
	}

	// Projectile-obstacle: full cross product, independent pair tests.
	hitShots := make(map[int]bool)
	hitRocks := make(map[int]bool)
	for pi, p := range s.Projectiles {
		for oi, o := range s.Obstacles {
			if p.Collides(o) {
				hitShots[pi] = true
				hitRocks[oi] = true
			}
		}
	}

	if len(hitShots) == 0 && len(hitRocks) == 0 {
		return s
	}

	departed := s.Departed

	projectiles := make([]Body, 0, len(s.Projectiles))
	for pi, p := range s.Projectiles {
		if hitShots[pi] {
			departed = appendDeparted(departed, p)
			continue
		}
		projectiles = append(projectiles, p)
	}
	s.Projectiles = projectiles

	threshold := r.cfg.FragmentThreshold()
	obstacles := make([]Body, 0, len(s.Obstacles)+2*len(hitRocks))
	for oi, o := range s.Obstacles {
		if !hitRocks[oi] {
			obstacles = append(obstacles, o)
			continue
		}
		departed = appendDeparted(departed, o)

		// Destroyed obstacles above the threshold split in two; smaller
		// ones simply vanish.
		if o.Radius >= threshold {
			left, right := r.fragment(o, s.Time, s.NextID)
			obstacles = append(obstacles, left, right)
			s.NextID += 2
		}
	}
	s.Obstacles = obstacles
	s.Departed = departed

	return s
}

// fragment spawns the two children of a destroyed obstacle: same position,
// half the radius, the parent's velocity turned 90 degrees either way so
// both keep the parent's speed.
func (r *Reducer) fragment(parent Body, now, nextID int64) (Body, Body) {
	child := Body{
		Kind:      KindObstacle,
		Position:  parent.Position,
		Radius:    parent.Radius / 2,
		CreatedAt: now,
	}

	left := child
	left.ID = obstacleID(nextID)
	left.Velocity = parent.Velocity.Orthogonal()

	right := child
	right.ID = obstacleID(nextID + 1)
	right.Velocity = parent.Velocity.Orthogonal().Scale(-1)

	return left, right
}

// appendDeparted adds a body to the departed set unless its ID is already
// present. A projectile that expires and collides in the same step must show
// up exactly once.
func appendDeparted(departed []Body, b Body) []Body {
	for _, d := range departed {
		if d.ID == b.ID {
			return departed
		}
	}
	return append(departed, b)
}
