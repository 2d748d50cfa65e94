package game

// State is the phase of a session.
type State int

const (
	NotStarted State = iota
	Running
	GameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Running:
		return "Running"
	case GameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is something that can move the state machine.
type Event int

const (
	EventJump  Event = iota // the single user command
	EventCrash              // floor or obstacle collision
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventJump:
		return "Jump"
	case EventCrash:
		return "Crash"
	default:
		return "Unknown"
	}
}

// Effect is the work a transition asks the session to perform.
type Effect int

const (
	EffectNone    Effect = iota
	EffectStart          // replace entity, obstacles and score; start the clock
	EffectImpulse        // apply a jump impulse to the entity
	EffectHalt           // stop the clock and freeze the run
)

// Cause records why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseFloor
	CauseObstacle
)

// String returns the storage name of the cause.
func (c Cause) String() string {
	switch c {
	case CauseFloor:
		return "floor"
	case CauseObstacle:
		return "obstacle"
	default:
		return "none"
	}
}

// ParseCause is the inverse of Cause.String.
func ParseCause(s string) Cause {
	switch s {
	case "floor":
		return CauseFloor
	case "obstacle":
		return CauseObstacle
	default:
		return CauseNone
	}
}

type transitionKey struct {
	from State
	on   Event
}

type transition struct {
	to     State
	effect Effect
}

// transitions is the complete table. The jump command means "start" outside a
// run and "impulse" inside one.
var transitions = map[transitionKey]transition{
	{NotStarted, EventJump}: {Running, EffectStart},
	{Running, EventJump}:    {Running, EffectImpulse},
	{Running, EventCrash}:   {GameOver, EffectHalt},
	{GameOver, EventJump}:   {Running, EffectStart},
}

// Transition looks up the table. ok is false when the event has no effect in
// the given state.
func Transition(from State, on Event) (to State, effect Effect, ok bool) {
	t, ok := transitions[transitionKey{from, on}]
	if !ok {
		return from, EffectNone, false
	}
	return t.to, t.effect, true
}
