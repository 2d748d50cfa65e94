package game

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Session owns one entity, one obstacle sequence and one score, and moves
// them through the NotStarted -> Running -> GameOver cycle.
//
// A Session is not safe for concurrent use. All calls must happen on one
// goroutine; Run provides that goroutine for live play.
type Session struct {
	opts  Options
	clock clock.Clock

	seeds     func() int64
	fixedRand RandSource
	now       func() time.Time

	observers []Observer
	audio     AudioSink
	theme     ThemeSink
	recorder  Recorder
	logger    *log.Logger

	state     State
	entity    Entity
	obstacles *ObstacleManager
	score     int
	tick      int
	cause     Cause
	epoch     uint64
	closed    bool

	seed      int64
	startedAt time.Time
	jumps     []int
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithRandSource uses src for every run instead of a per-run seeded source.
// The recorded seed is then meaningless.
func WithRandSource(src RandSource) SessionOption {
	return func(s *Session) { s.fixedRand = src }
}

// WithSeeds sets the function that picks the seed of each run.
func WithSeeds(seeds func() int64) SessionOption {
	return func(s *Session) { s.seeds = seeds }
}

// WithObserver adds a render consumer.
func WithObserver(o Observer) SessionOption {
	return func(s *Session) { s.observers = append(s.observers, o) }
}

// WithAudio sets the game-over audio sink.
func WithAudio(a AudioSink) SessionOption {
	return func(s *Session) { s.audio = a }
}

// WithTheme sets the theme sink.
func WithTheme(t ThemeSink) SessionOption {
	return func(s *Session) { s.theme = t }
}

// WithRecorder sets where finished runs are journaled.
func WithRecorder(r Recorder) SessionOption {
	return func(s *Session) { s.recorder = r }
}

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// SeedsFrom returns a seed function that yields first (when non-zero) for
// the first run and time-based seeds afterwards.
func SeedsFrom(first int64) func() int64 {
	return func() int64 {
		if first != 0 {
			seed := first
			first = 0
			return seed
		}
		return time.Now().UnixNano()
	}
}

// NewSession creates a session in the NotStarted state. The clock must be
// stopped; the session starts and stops it as runs begin and end.
func NewSession(opts Options, c clock.Clock, options ...SessionOption) *Session {
	s := &Session{
		opts:   opts,
		clock:  c,
		seeds:  SeedsFrom(0),
		now:    time.Now,
		logger: log.New(io.Discard),
		state:  NotStarted,
		entity: NewEntity(opts),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Jump delivers the single user command. Its meaning depends on the state:
// it starts a run from NotStarted or GameOver and lifts the entity while Running.
func (s *Session) Jump() {
	if s.closed {
		return
	}
	if s.apply(EventJump) {
		s.publish()
	}
}

// HandleTick applies one simulation step. Ticks are ignored unless the session
// is Running and the tick belongs to the current run's clock epoch. It
// reports whether the tick was applied.
func (s *Session) HandleTick(t clock.Tick) bool {
	if s.closed || s.state != Running || t.Epoch != s.epoch {
		return false
	}

	s.tick++

	// Movement first, then evaluation on the moved state.
	floor := s.entity.Step()
	s.obstacles.Step()
	out := Evaluate(s.opts, s.entity.Y, s.obstacles.Obstacles())
	s.score += out.Scored

	switch {
	case floor:
		s.cause = CauseFloor
	case out.Collided:
		s.cause = CauseObstacle
	}
	if s.cause != CauseNone {
		s.apply(EventCrash)
	}

	s.publish()
	return true
}

// apply runs one state machine transition and its effect.
func (s *Session) apply(ev Event) bool {
	to, effect, ok := Transition(s.state, ev)
	if !ok {
		return false
	}

	switch effect {
	case EffectStart:
		s.start()
	case EffectImpulse:
		s.entity.Jump()
		s.jumps = append(s.jumps, s.tick)
	case EffectHalt:
		s.halt()
	}

	s.state = to
	return true
}

// start replaces all run state and opens a new clock epoch.
func (s *Session) start() {
	s.seed = s.seeds()
	src := s.fixedRand
	if src == nil {
		src = NewRandSource(s.seed)
	}

	s.entity.Reset()
	s.obstacles = NewObstacleManager(s.opts, src)
	s.score = 0
	s.tick = 0
	s.cause = CauseNone
	s.jumps = nil
	s.startedAt = s.now()
	s.epoch = s.clock.Start()

	if s.theme != nil {
		s.theme.SetGameOver(false)
	}
	s.logger.Debug("run started", "seed", s.seed, "epoch", s.epoch)
}

// halt stops the clock and notifies the game-over observers.
func (s *Session) halt() {
	s.clock.Stop()

	s.logger.Info("run ended", "score", s.score, "ticks", s.tick, "cause", s.cause)

	if s.audio != nil {
		s.audio.GameOver(s.score)
	}
	if s.theme != nil {
		s.theme.SetGameOver(true)
	}
	if s.recorder != nil {
		summary := RunSummary{
			Seed:      s.seed,
			Ticks:     s.tick,
			Score:     s.score,
			Cause:     s.cause,
			Jumps:     append([]int(nil), s.jumps...),
			StartedAt: s.startedAt,
			EndedAt:   s.now(),
		}
		if err := s.recorder.RecordRun(summary); err != nil {
			s.logger.Warn("could not record run", "error", err)
		}
	}
}

// Close stops the clock and detaches the session. Later ticks and commands
// are ignored.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.clock.Stop()
}

// Run drives the session from the clock and the actions channel until ctx is
// done or actions is closed. It publishes an initial snapshot before waiting.
// Run returns ctx.Err() on cancellation and nil when actions is closed.
func (s *Session) Run(ctx context.Context, actions <-chan core.Action) error {
	defer s.Close()

	s.publish()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case a, ok := <-actions:
			if !ok {
				return nil
			}
			if a.Simulated() {
				s.Jump()
			}
		case t := <-s.clock.Ticks():
			s.HandleTick(t)
		}
	}
}

// State returns the current phase.
func (s *Session) State() State {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Options returns the session constants.
func (s *Session) Options() Options {
	return s.opts
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:   s.state,
		Score:   s.score,
		EntityY: s.entity.Y,
		Tick:    s.tick,
		Cause:   s.cause,
	}
	if s.obstacles != nil {
		snap.Obstacles = append([]Obstacle(nil), s.obstacles.Obstacles()...)
	}
	return snap
}

func (s *Session) publish() {
	if len(s.observers) == 0 {
		return
	}
	snap := s.Snapshot()
	for _, o := range s.observers {
		o.Observe(snap)
	}
}
