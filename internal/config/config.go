// Package config provides YAML-based game configuration loading and
// validation.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is returned (wrapped) when a configuration cannot host a playable game.
var ErrInvalid = errors.New("invalid config")

// FlappyConfig contains all tunable constants of the game.
// Distances are in field pixels, rates are per tick.
type FlappyConfig struct {
	Field     FieldConfig    `yaml:"field"`
	Entity    EntityConfig   `yaml:"entity"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Clock     ClockConfig    `yaml:"clock"`
}

// FieldConfig defines the playing field dimensions.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EntityConfig defines the controlled entity's fixed horizontal slot and size.
type EntityConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// PhysicsConfig defines the gravity increment and jump impulse.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
}

// ObstacleConfig defines obstacle geometry, movement and spawning.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	GapHeight    float64 `yaml:"gap_height"`
	Speed        float64 `yaml:"speed"`
	SpawnSpacing float64 `yaml:"spawn_spacing"` // rightmost obstacle must be this far from the right edge before the next spawns
	MinMargin    int     `yaml:"min_margin"`    // minimum distance between a gap and the field edges
}

// ClockConfig defines the simulation tick period.
type ClockConfig struct {
	TickMillis int `yaml:"tick_ms"`
}

// Period returns the tick period as a duration.
func (c ClockConfig) Period() time.Duration {
	return time.Duration(c.TickMillis) * time.Millisecond
}

// Validate checks that the configuration describes a playable field.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("%w: field must have positive dimensions", ErrInvalid)
	case c.Entity.Size <= 0 || c.Entity.Size >= c.Field.Height:
		return fmt.Errorf("%w: entity size %.0f does not fit field height %.0f", ErrInvalid, c.Entity.Size, c.Field.Height)
	case c.Entity.X < 0 || c.Entity.X+c.Entity.Size > c.Field.Width:
		return fmt.Errorf("%w: entity slot outside the field", ErrInvalid)
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("%w: gravity must be positive", ErrInvalid)
	case c.Physics.JumpImpulse <= 0:
		return fmt.Errorf("%w: jump impulse must be positive", ErrInvalid)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacle width must be positive", ErrInvalid)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacle speed must be positive", ErrInvalid)
	case c.Obstacles.GapHeight < c.Entity.Size:
		return fmt.Errorf("%w: gap height %.0f is smaller than the entity", ErrInvalid, c.Obstacles.GapHeight)
	case c.Obstacles.MinMargin < 0:
		return fmt.Errorf("%w: min margin must not be negative", ErrInvalid)
	case c.Obstacles.GapHeight+2*float64(c.Obstacles.MinMargin) > c.Field.Height:
		return fmt.Errorf("%w: gap height plus margins exceed field height", ErrInvalid)
	case c.Obstacles.SpawnSpacing < c.Obstacles.Width:
		return fmt.Errorf("%w: spawn spacing %.0f lets obstacles overlap", ErrInvalid, c.Obstacles.SpawnSpacing)
	case c.Clock.TickMillis <= 0:
		return fmt.Errorf("%w: tick period must be positive", ErrInvalid)
	}
	return nil
}
