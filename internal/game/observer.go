package game

import "time"

// Snapshot is an immutable copy of the session state handed to render consumers.
type Snapshot struct {
	State     State
	Score     int
	EntityY   float64
	Obstacles []Obstacle
	Tick      int   // ticks applied in the current run
	Cause     Cause // why the last run ended; CauseNone while running
}

// Observer receives a snapshot after every applied tick and command.
// Observe runs on the session goroutine and must not block.
type Observer interface {
	Observe(Snapshot)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Snapshot)

// Observe implements Observer.
func (f ObserverFunc) Observe(s Snapshot) { f(s) }

// AudioSink is notified exactly once per Running -> GameOver transition.
type AudioSink interface {
	GameOver(score int)
}

// ThemeSink is told whether the session is in GameOver whenever that changes.
type ThemeSink interface {
	SetGameOver(bool)
}

// ThemeFunc adapts a function to ThemeSink.
type ThemeFunc func(bool)

// SetGameOver implements ThemeSink.
func (f ThemeFunc) SetGameOver(over bool) { f(over) }

// RunSummary describes a finished run with enough detail to replay it.
type RunSummary struct {
	Seed      int64
	Ticks     int
	Score     int
	Cause     Cause
	Jumps     []int // tick count at which each in-run jump was issued
	StartedAt time.Time
	EndedAt   time.Time
}

// Recorder persists finished runs.
type Recorder interface {
	RecordRun(RunSummary) error
}
