// Package audio provides game-over sound sinks for the game session.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Speaker plays a short falling two-tone jingle through the audio device.
type Speaker struct {
	mu          sync.Mutex
	initialized bool
	volume      float64
}

// NewSpeaker creates a speaker sink. volume is linear in (0, 1].
func NewSpeaker(volume float64) *Speaker {
	return &Speaker{volume: volume}
}

// Init opens the audio device. It is safe to call more than once.
func (s *Speaker) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	s.initialized = true
	return nil
}

// GameOver implements game.AudioSink. Playback is asynchronous.
func (s *Speaker) GameOver(int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	jingle, err := GameOverJingle(s.volume)
	if err != nil {
		return
	}
	speaker.Play(jingle)
}

// Close stops playback and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	s.initialized = false
}

// GameOverJingle builds the game-over sound: two descending sine tones.
func GameOverJingle(volume float64) (beep.Streamer, error) {
	high, err := generators.SineTone(sampleRate, 660)
	if err != nil {
		return nil, err
	}
	low, err := generators.SineTone(sampleRate, 440)
	if err != nil {
		return nil, err
	}

	seq := beep.Seq(
		beep.Take(sampleRate.N(120*time.Millisecond), high),
		beep.Take(sampleRate.N(240*time.Millisecond), low),
	)
	return withVolume(seq, volume), nil
}

// withVolume scales a stream linearly. Zero or negative volume is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Bell rings the terminal bell on game over.
type Bell struct {
	w io.Writer
}

// NewBell creates a bell sink writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// GameOver implements game.AudioSink.
func (b *Bell) GameOver(int) {
	//nolint:errcheck // A missed bell is not worth reporting
	b.w.Write([]byte{'\a'})
}

// Nop discards game-over notifications.
type Nop struct{}

// GameOver implements game.AudioSink.
func (Nop) GameOver(int) {}
