package game

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Obstacle is a paired top/bottom barrier with a fixed-height gap.
type Obstacle struct {
	X      float64 // left edge
	GapTop float64 // top of the passable gap
	Scored bool    // set once the obstacle has been credited; never cleared
}

// HSpan returns the obstacle's horizontal extent for the given width.
func (o Obstacle) HSpan(width float64) core.Span {
	return core.NewSpan(o.X, width)
}

// Gap returns the obstacle's passable vertical window.
func (o Obstacle) Gap(gapHeight float64) core.Span {
	return core.NewSpan(o.GapTop, gapHeight)
}

// RandSource returns a uniformly distributed integer in [min, max].
type RandSource func(min, max int) int

// NewRandSource returns a RandSource backed by a seeded generator.
func NewRandSource(seed int64) RandSource {
	rng := rand.New(rand.NewSource(seed))
	return func(min, max int) int {
		if max <= min {
			return min
		}
		return min + rng.Intn(max-min+1)
	}
}

// ObstacleManager handles spawning, movement and removal of obstacles.
// Obstacles are kept in left-to-right order.
type ObstacleManager struct {
	obstacles []Obstacle
	rand      RandSource
	opts      Options
}

// NewObstacleManager creates a manager holding a single freshly spawned obstacle.
func NewObstacleManager(opts Options, src RandSource) *ObstacleManager {
	m := &ObstacleManager{
		obstacles: make([]Obstacle, 0, 4),
		rand:      src,
		opts:      opts,
	}
	m.Reset()
	return m
}

// Reset replaces the sequence with one new obstacle at the right edge.
func (m *ObstacleManager) Reset() {
	m.obstacles = m.obstacles[:0]
	m.spawn()
}

// Step moves every obstacle left, drops the ones that are fully off the left
// edge and spawns at most one new obstacle.
//
// A new obstacle is spawned when the sequence is empty or when the rightmost
// obstacle has moved further than SpawnSpacing from the right edge. Only the
// rightmost obstacle is inspected.
func (m *ObstacleManager) Step() {
	for i := range m.obstacles {
		m.obstacles[i].X -= m.opts.ObstacleSpeed
	}

	kept := m.obstacles[:0]
	for _, o := range m.obstacles {
		if o.X+m.opts.ObstacleWidth > 0 {
			kept = append(kept, o)
		}
	}
	m.obstacles = kept

	if len(m.obstacles) == 0 || m.obstacles[len(m.obstacles)-1].X < m.opts.FieldWidth-m.opts.SpawnSpacing {
		m.spawn()
	}
}

// spawn appends an obstacle at the right edge with a random gap offset.
func (m *ObstacleManager) spawn() {
	lo := m.opts.MinMargin
	hi := int(m.opts.FieldHeight-m.opts.GapHeight) - m.opts.MinMargin

	m.obstacles = append(m.obstacles, Obstacle{
		X:      m.opts.FieldWidth,
		GapTop: float64(m.rand(lo, hi)),
	})
}

// Obstacles returns the live sequence. Callers may update Scored in place.
func (m *ObstacleManager) Obstacles() []Obstacle {
	return m.obstacles
}

// Len returns the number of live obstacles.
func (m *ObstacleManager) Len() int {
	return len(m.obstacles)
}
