package game

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/clock"
)

// ErrReplayDiverged is returned when a replay does not reproduce a recorded run.
var ErrReplayDiverged = errors.New("replay diverged")

// Replay re-simulates a run from its seed and jump ticks on a manual clock.
// The simulation stops at GameOver or after maxTicks ticks, whichever comes first.
func Replay(opts Options, seed int64, jumps []int, maxTicks int) Snapshot {
	m := clock.NewManual(opts.TickPeriod)
	s := NewSession(opts, m, WithSeeds(func() int64 { return seed }))
	defer s.Close()

	s.Jump() // start

	next := 0
	for s.State() == Running && s.tick < maxTicks {
		for next < len(jumps) && jumps[next] <= s.tick {
			s.Jump()
			next++
		}
		tick, ok := m.Fire()
		if !ok {
			break
		}
		s.HandleTick(tick)
	}

	return s.Snapshot()
}

// Verify replays a recorded run and checks that it ends the same way.
func Verify(opts Options, run RunSummary) (Snapshot, error) {
	// A little headroom so a run that lasted longer in replay is detected.
	snap := Replay(opts, run.Seed, run.Jumps, run.Ticks+1)

	if snap.State != GameOver || snap.Tick != run.Ticks || snap.Score != run.Score || snap.Cause != run.Cause {
		return snap, fmt.Errorf("%w: recorded score %d after %d ticks (%s), replay score %d after %d ticks (%s)",
			ErrReplayDiverged, run.Score, run.Ticks, run.Cause, snap.Score, snap.Tick, snap.Cause)
	}
	return snap, nil
}
