package clock

import "time"

// Manual is a Clock that only ticks when told to. It is used by tests and by
// headless replays, where the caller decides when time advances.
type Manual struct {
	epoch   uint64
	running bool
	now     time.Time
	period  time.Duration
	out     chan Tick
}

// NewManual creates a stopped manual clock whose Fire advances simulated time by period.
func NewManual(period time.Duration) *Manual {
	return &Manual{
		period: period,
		now:    time.Unix(0, 0),
		out:    make(chan Tick, 1),
	}
}

// Start implements Clock.
func (m *Manual) Start() uint64 {
	m.epoch++
	m.running = true
	return m.epoch
}

// Stop implements Clock.
func (m *Manual) Stop() {
	m.running = false
}

// Ticks implements Clock. Manual never writes to it unless Queue is used.
func (m *Manual) Ticks() <-chan Tick {
	return m.out
}

// Running reports whether the clock is between Start and Stop.
func (m *Manual) Running() bool {
	return m.running
}

// Epoch returns the most recently started epoch.
func (m *Manual) Epoch() uint64 {
	return m.epoch
}

// Fire produces the next tick of the current epoch. ok is false when the
// clock is stopped, in which case no time passes.
func (m *Manual) Fire() (tick Tick, ok bool) {
	if !m.running {
		return Tick{}, false
	}
	m.now = m.now.Add(m.period)
	return Tick{Epoch: m.epoch, At: m.now}, true
}

// Queue fires a tick and pushes it onto the Ticks channel for loop-driven
// consumers. It reports false if the clock is stopped or a tick is already queued.
func (m *Manual) Queue() bool {
	tick, ok := m.Fire()
	if !ok {
		return false
	}
	select {
	case m.out <- tick:
		return true
	default:
		return false
	}
}
