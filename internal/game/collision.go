package game

// Outcome is the result of evaluating one tick.
type Outcome struct {
	Collided bool // the entity hit an obstacle
	Scored   int  // obstacles newly passed this tick
}

// Collides reports whether an entity at entityY hits obstacle o.
//
// The obstacle must overlap the entity's horizontal slot, and the entity's
// vertical span must leave the gap. Touching an edge is neither an overlap
// nor a gap exit.
func Collides(opts Options, entityY float64, o Obstacle) bool {
	entity := NewEntity(opts)
	entity.Y = entityY

	if !o.HSpan(opts.ObstacleWidth).Overlaps(entity.HSpan()) {
		return false
	}
	return !entity.VSpan().Within(o.Gap(opts.GapHeight))
}

// passed reports whether the obstacle's trailing edge is left of the entity.
func passed(opts Options, o Obstacle) bool {
	return o.X+opts.ObstacleWidth < opts.EntityX
}

// Evaluate checks the post-movement state of a tick for collisions and
// scoring. Newly passed obstacles are latched as scored in place. Scoring is
// evaluated for every obstacle regardless of whether another one collided.
func Evaluate(opts Options, entityY float64, obstacles []Obstacle) Outcome {
	var out Outcome
	for i := range obstacles {
		o := &obstacles[i]
		if Collides(opts, entityY, *o) {
			out.Collided = true
		}
		if !o.Scored && passed(opts, *o) {
			o.Scored = true
			out.Scored++
		}
	}
	return out
}
