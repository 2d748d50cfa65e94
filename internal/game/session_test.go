package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// newTestSession creates a session on a manual clock whose gaps are always
// [150, 350), which the hovering bot below never leaves.
func newTestSession(options ...SessionOption) (*Session, *clock.Manual) {
	opts := DefaultOptions()
	m := clock.NewManual(opts.TickPeriod)
	options = append([]SessionOption{WithRandSource(constRand(150))}, options...)
	return NewSession(opts, m, options...), m
}

// advance fires n ticks and returns how many were applied.
func advance(s *Session, m *clock.Manual, n int) int {
	applied := 0
	for i := 0; i < n; i++ {
		tick, ok := m.Fire()
		if !ok {
			break
		}
		if s.HandleTick(tick) {
			applied++
		}
	}
	return applied
}

// hover jumps whenever the entity sinks below y=280, keeping it inside
// roughly [222, 306] for as long as needed.
func hover(s *Session) {
	if s.entity.Y > 280 {
		s.Jump()
	}
}

func assertFreshRun(t *testing.T, s *Session) {
	t.Helper()
	opts := s.Options()
	snap := s.Snapshot()

	if snap.State != Running {
		t.Fatalf("state = %v, expected Running", snap.State)
	}
	if snap.Score != 0 || snap.Tick != 0 || snap.Cause != CauseNone {
		t.Errorf("score/tick/cause = %d/%d/%v, expected 0/0/none", snap.Score, snap.Tick, snap.Cause)
	}
	if snap.EntityY != opts.FieldHeight/2-opts.EntitySize/2 {
		t.Errorf("entity Y = %v, expected centered", snap.EntityY)
	}
	if len(snap.Obstacles) != 1 || snap.Obstacles[0].X != opts.FieldWidth || snap.Obstacles[0].Scored {
		t.Errorf("obstacles = %+v, expected one fresh obstacle at the right edge", snap.Obstacles)
	}
}

func TestSessionStartsNotStarted(t *testing.T) {
	s, m := newTestSession()

	if s.State() != NotStarted {
		t.Fatalf("initial state = %v", s.State())
	}
	if m.Running() {
		t.Error("clock should not run before the first jump")
	}

	// Ticks before the game starts do nothing
	if s.HandleTick(clock.Tick{Epoch: 0}) {
		t.Error("tick applied while NotStarted")
	}
}

func TestSessionStart(t *testing.T) {
	s, m := newTestSession()

	s.Jump()
	assertFreshRun(t, s)
	if !m.Running() {
		t.Error("clock should run after start")
	}
}

func TestSessionJumpAtCeiling(t *testing.T) {
	s, _ := newTestSession()
	s.Jump()

	s.entity.Y = 0
	s.Jump()

	if s.entity.Y != 0 {
		t.Errorf("Y = %v, expected 0", s.entity.Y)
	}
	if s.State() != Running {
		t.Errorf("state = %v, expected Running", s.State())
	}
}

func TestSessionFloorCollision(t *testing.T) {
	s, m := newTestSession()
	s.Jump()

	// Falling from 240 at 6px per tick reaches the floor (480) on tick 40,
	// long before the first obstacle arrives.
	applied := advance(s, m, 100)
	if applied != 40 {
		t.Fatalf("applied %d ticks, expected 40", applied)
	}

	snap := s.Snapshot()
	if snap.State != GameOver || snap.Cause != CauseFloor {
		t.Fatalf("state/cause = %v/%v, expected GameOver/floor", snap.State, snap.Cause)
	}
	if snap.EntityY != s.Options().MaxEntityY() {
		t.Errorf("entity Y = %v, expected clamped to %v", snap.EntityY, s.Options().MaxEntityY())
	}
	if m.Running() {
		t.Error("clock should stop on GameOver")
	}
}

func TestSessionObstacleCollision(t *testing.T) {
	s, m := newTestSession(WithRandSource(constRand(50))) // gap [50, 250)
	s.Jump()

	// Put the obstacle one step away from the slot; the entity (246..266) sticks out of the gap.
	s.obstacles.obstacles[0].X = 80
	advance(s, m, 1)

	snap := s.Snapshot()
	if snap.State != GameOver || snap.Cause != CauseObstacle {
		t.Fatalf("state/cause = %v/%v, expected GameOver/obstacle", snap.State, snap.Cause)
	}
}

func TestSessionRestartAfterGameOver(t *testing.T) {
	s, m := newTestSession()

	s.Jump()
	for i := 0; i < 200 && s.State() == Running; i++ {
		hover(s)
		advance(s, m, 1)
	}
	if s.Score() == 0 {
		t.Fatal("hovering should have scored before the crash")
	}

	// Stop hovering and crash into the floor
	advance(s, m, 100)
	if s.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", s.State())
	}
	frozen := s.Snapshot()

	// Further ticks do not move a finished run
	if s.HandleTick(clock.Tick{Epoch: m.Epoch()}) {
		t.Error("tick applied after GameOver")
	}
	if s.Snapshot().EntityY != frozen.EntityY || s.Score() != frozen.Score {
		t.Error("GameOver state should be frozen")
	}

	s.Jump()
	assertFreshRun(t, s)
}

func TestSessionScoreMonotonic(t *testing.T) {
	s, m := newTestSession()
	s.Jump()

	prev := 0
	for i := 0; i < 1000; i++ {
		if len(s.Snapshot().Obstacles) == 0 {
			t.Fatalf("no obstacles at the start of tick %d", i+1)
		}
		hover(s)
		advance(s, m, 1)
		if s.State() != Running {
			t.Fatalf("bot crashed at tick %d: %v", i+1, s.Snapshot().Cause)
		}
		if s.Score() < prev || s.Score() > prev+1 {
			t.Fatalf("score went from %d to %d on tick %d", prev, s.Score(), i+1)
		}
		prev = s.Score()
	}

	// Obstacle k spawns on tick 45k and is passed on tick 45k+81.
	if s.Score() != 21 {
		t.Errorf("score after 1000 ticks = %d, expected 21", s.Score())
	}
}

func TestSessionIgnoresStaleTick(t *testing.T) {
	s, m := newTestSession()
	s.Jump()

	stale, _ := m.Fire() // produced by the first run, never delivered
	advance(s, m, 100)
	if s.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", s.State())
	}

	s.Jump()
	if s.HandleTick(stale) {
		t.Fatal("tick from the previous run was applied to the new run")
	}
	assertFreshRun(t, s)
}

func TestSessionClose(t *testing.T) {
	s, m := newTestSession()
	s.Jump()
	s.Close()

	if m.Running() {
		t.Error("Close should stop the clock")
	}
	if s.HandleTick(clock.Tick{Epoch: m.Epoch()}) {
		t.Error("tick applied after Close")
	}
	s.Jump()
	if s.Snapshot().EntityY != s.Options().StartY() {
		t.Error("jump applied after Close")
	}
}

type countingAudio struct{ calls []int }

func (a *countingAudio) GameOver(score int) { a.calls = append(a.calls, score) }

type capturingRecorder struct{ runs []RunSummary }

func (r *capturingRecorder) RecordRun(run RunSummary) error {
	r.runs = append(r.runs, run)
	return nil
}

type failingRecorder struct{}

func (failingRecorder) RecordRun(RunSummary) error { return errors.New("disk full") }

func TestSessionNotifiesObservers(t *testing.T) {
	audio := &countingAudio{}
	rec := &capturingRecorder{}
	var themes []bool
	var frames int

	s, m := newTestSession(
		WithAudio(audio),
		WithRecorder(rec),
		WithTheme(ThemeFunc(func(over bool) { themes = append(themes, over) })),
		WithObserver(ObserverFunc(func(Snapshot) { frames++ })),
		WithSeeds(func() int64 { return 7 }),
	)

	s.Jump()
	advance(s, m, 10)
	s.Jump()
	advance(s, m, 200)

	if len(audio.calls) != 1 {
		t.Fatalf("audio notified %d times, expected 1", len(audio.calls))
	}
	if len(themes) != 2 || themes[0] || !themes[1] {
		t.Errorf("theme calls = %v, expected [false true]", themes)
	}
	// start + impulse + every applied tick
	if frames != 2+s.Snapshot().Tick {
		t.Errorf("observer saw %d frames, expected %d", frames, 2+s.Snapshot().Tick)
	}

	if len(rec.runs) != 1 {
		t.Fatalf("recorded %d runs, expected 1", len(rec.runs))
	}
	run := rec.runs[0]
	if run.Seed != 7 || run.Cause != CauseFloor || run.Ticks != s.Snapshot().Tick {
		t.Errorf("run summary = %+v", run)
	}
	if len(run.Jumps) != 1 || run.Jumps[0] != 10 {
		t.Errorf("recorded jumps = %v, expected [10]", run.Jumps)
	}

	// A second run notifies again
	s.Jump()
	advance(s, m, 200)
	if len(audio.calls) != 2 || len(rec.runs) != 2 {
		t.Errorf("after second run: audio %d, runs %d", len(audio.calls), len(rec.runs))
	}
}

func TestSessionRecorderFailureIsNotFatal(t *testing.T) {
	s, m := newTestSession(WithRecorder(failingRecorder{}))
	s.Jump()
	advance(s, m, 100)

	if s.State() != GameOver {
		t.Fatalf("state = %v, expected GameOver", s.State())
	}
	s.Jump()
	assertFreshRun(t, s)
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := newTestSession()
	s.Jump()

	snap := s.Snapshot()
	snap.Obstacles[0].X = -1000

	if s.Snapshot().Obstacles[0].X == -1000 {
		t.Error("mutating a snapshot changed the session")
	}
}

func TestSessionRun(t *testing.T) {
	opts := DefaultOptions()
	tk := clock.NewTicker(time.Millisecond)

	frames := make(chan Snapshot, 64)
	s := NewSession(opts, tk,
		WithRandSource(constRand(150)),
		WithObserver(ObserverFunc(func(snap Snapshot) {
			select {
			case frames <- snap:
			default:
			}
		})),
	)

	ctx, cancel := context.WithCancel(context.Background())
	actions := make(chan core.Action)
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx, actions) }()

	actions <- core.ActionTheme // not for the simulation
	actions <- core.ActionJump

	deadline := time.After(2 * time.Second)
	for ticked := false; !ticked; {
		select {
		case snap := <-frames:
			ticked = snap.State == Running && snap.Tick > 0
		case <-deadline:
			t.Fatal("no tick observed")
		}
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Run() = %v, expected context.Canceled", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}

	if tk.Running() {
		t.Error("cancelling Run should stop the clock")
	}
}

func TestSeedsFrom(t *testing.T) {
	seeds := SeedsFrom(42)
	if got := seeds(); got != 42 {
		t.Errorf("first seed = %d, expected 42", got)
	}
	if got := seeds(); got == 42 || got == 0 {
		t.Errorf("second seed = %d, expected a time-based seed", got)
	}
}
