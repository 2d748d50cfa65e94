package core

// RuntimeConfig contains per-session settings supplied by the platform.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for the first run (0 = derive from time)
	Dark    bool  // Start with the dark theme enabled
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
	}
}
