// Package game implements the gated-obstacle flyer simulation: an entity falls
// under gravity, is nudged upward by jump impulses, and must pass through the
// gaps of obstacles that scroll in from the right edge of the field.
//
// The package is pure simulation. Rendering, audio and input live in the
// platform layer and talk to a Session through observers and the single jump
// command.
package game

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Options are the fixed constants of a session. Distances are in field pixels
// measured from the top-left corner; rates are per tick.
type Options struct {
	FieldWidth  float64
	FieldHeight float64

	EntityX    float64 // fixed left edge of the entity's horizontal slot
	EntitySize float64

	Gravity     float64
	JumpImpulse float64

	ObstacleWidth float64
	GapHeight     float64
	ObstacleSpeed float64
	SpawnSpacing  float64
	MinMargin     int

	TickPeriod time.Duration
}

// OptionsFromConfig converts a loaded configuration into session options.
func OptionsFromConfig(cfg config.FlappyConfig) Options {
	return Options{
		FieldWidth:    cfg.Field.Width,
		FieldHeight:   cfg.Field.Height,
		EntityX:       cfg.Entity.X,
		EntitySize:    cfg.Entity.Size,
		Gravity:       cfg.Physics.Gravity,
		JumpImpulse:   cfg.Physics.JumpImpulse,
		ObstacleWidth: cfg.Obstacles.Width,
		GapHeight:     cfg.Obstacles.GapHeight,
		ObstacleSpeed: cfg.Obstacles.Speed,
		SpawnSpacing:  cfg.Obstacles.SpawnSpacing,
		MinMargin:     cfg.Obstacles.MinMargin,
		TickPeriod:    cfg.Clock.Period(),
	}
}

// DefaultOptions returns the options of the built-in configuration.
func DefaultOptions() Options {
	return OptionsFromConfig(config.DefaultFlappyConfig())
}

// MaxEntityY is the lowest position the entity's top edge can reach.
func (o Options) MaxEntityY() float64 {
	return o.FieldHeight - o.EntitySize
}

// StartY is the vertical position the entity is reset to at the start of a run.
func (o Options) StartY() float64 {
	return o.FieldHeight/2 - o.EntitySize/2
}
