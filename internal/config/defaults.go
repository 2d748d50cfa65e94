package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Field: FieldConfig{
			Width:  400,
			Height: 500,
		},
		Entity: EntityConfig{
			X:    60,
			Size: 20,
		},
		Physics: PhysicsConfig{
			Gravity:     6,
			JumpImpulse: 60,
		},
		Obstacles: ObstacleConfig{
			Width:        60,
			GapHeight:    200,
			Speed:        5,
			SpawnSpacing: 220,
			MinMargin:    50,
		},
		Clock: ClockConfig{
			TickMillis: 24,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
