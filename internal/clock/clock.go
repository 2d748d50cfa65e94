// Package clock provides the fixed-interval schedulers that drive simulation
// ticks. Every Start opens a new epoch and every tick carries the epoch it was
// produced under, so a consumer can tell a tick of the current run from one
// left in flight by a run that has already been stopped.
package clock

import (
	"sync"
	"time"
)

// Tick is a single scheduler firing.
type Tick struct {
	Epoch uint64
	At    time.Time
}

// Clock is a restartable scheduler.
type Clock interface {
	// Start begins delivering ticks under a new epoch and returns that epoch.
	// A running clock is stopped first.
	Start() uint64
	// Stop halts delivery and releases the underlying timer. Idempotent.
	Stop()
	// Ticks returns the delivery channel. It stays the same across epochs.
	Ticks() <-chan Tick
}

// Ticker is a wall-clock Clock backed by time.Ticker.
type Ticker struct {
	period time.Duration
	out    chan Tick

	mu     sync.Mutex
	epoch  uint64
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewTicker creates a stopped ticker with the given period.
func NewTicker(period time.Duration) *Ticker {
	return &Ticker{
		period: period,
		out:    make(chan Tick, 1),
	}
}

// Period returns the tick interval.
func (t *Ticker) Period() time.Duration {
	return t.period
}

// Start implements Clock.
func (t *Ticker) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.stopLocked()

	t.epoch++
	t.ticker = time.NewTicker(t.period)
	t.done = make(chan struct{})

	t.wg.Add(1)
	go t.forward(t.epoch, t.ticker.C, t.done)

	return t.epoch
}

// forward relays ticker firings tagged with epoch until done is closed.
// Like time.Ticker it drops firings a slow consumer has not picked up.
func (t *Ticker) forward(epoch uint64, c <-chan time.Time, done <-chan struct{}) {
	defer t.wg.Done()
	for {
		select {
		case <-done:
			return
		case at := <-c:
			select {
			case t.out <- Tick{Epoch: epoch, At: at}:
			case <-done:
				return
			default:
			}
		}
	}
}

// Stop implements Clock.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopLocked()
}

func (t *Ticker) stopLocked() {
	if t.ticker == nil {
		return
	}
	t.ticker.Stop()
	close(t.done)
	t.wg.Wait()
	t.ticker = nil
	t.done = nil
}

// Running reports whether the ticker is delivering ticks.
func (t *Ticker) Running() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.ticker != nil
}

// Ticks implements Clock.
func (t *Ticker) Ticks() <-chan Tick {
	return t.out
}
