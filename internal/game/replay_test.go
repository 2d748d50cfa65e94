package game

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/clock"
)

// recordRun plays one run with the hovering bot on random gaps and returns
// its journal entry.
func recordRun(t *testing.T, seed int64) RunSummary {
	t.Helper()

	opts := DefaultOptions()
	rec := &capturingRecorder{}
	m := clock.NewManual(opts.TickPeriod)
	s := NewSession(opts, m, WithSeeds(func() int64 { return seed }), WithRecorder(rec))

	s.Jump()
	for i := 0; i < 20000 && s.State() == Running; i++ {
		hover(s)
		advance(s, m, 1)
	}
	if len(rec.runs) != 1 {
		t.Fatalf("run with seed %d did not finish", seed)
	}
	return rec.runs[0]
}

func TestReplayReproducesRun(t *testing.T) {
	for _, seed := range []int64{1, 99, 2024} {
		run := recordRun(t, seed)

		snap, err := Verify(DefaultOptions(), run)
		if err != nil {
			t.Errorf("seed %d: %v", seed, err)
			continue
		}
		if snap.Score != run.Score || snap.Tick != run.Ticks {
			t.Errorf("seed %d: replay %d/%d, recorded %d/%d", seed, snap.Score, snap.Tick, run.Score, run.Ticks)
		}
	}
}

func TestVerifyDetectsDivergence(t *testing.T) {
	run := recordRun(t, 5)
	run.Jumps = append([]int{0}, run.Jumps...)
	run.Score += 3

	if _, err := Verify(DefaultOptions(), run); !errors.Is(err, ErrReplayDiverged) {
		t.Errorf("Verify() = %v, expected ErrReplayDiverged", err)
	}
}

func TestReplayStopsAtMaxTicks(t *testing.T) {
	snap := Replay(DefaultOptions(), 1, nil, 5)
	if snap.State != Running || snap.Tick != 5 {
		t.Errorf("Replay() = %v after %d ticks, expected Running after 5", snap.State, snap.Tick)
	}
}
