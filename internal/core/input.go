package core

// Action represents a semantic game action, abstracted from physical key presses
// and pointer clicks.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, Up, W, Enter, mouse click - start/restart or flap
	ActionTheme        // T - toggle the cosmetic dark theme
	ActionQuit         // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionTheme:
		return "Theme"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Simulated reports whether the action is delivered to the simulation.
// Everything else is handled by the platform layer.
func (a Action) Simulated() bool {
	return a == ActionJump
}
