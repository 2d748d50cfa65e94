package audio

import (
	"bytes"
	"math"
	"testing"
	"time"
)

func TestGameOverJingleLength(t *testing.T) {
	jingle, err := GameOverJingle(0.5)
	if err != nil {
		t.Fatalf("GameOverJingle() failed: %v", err)
	}

	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for {
		n, ok := jingle.Stream(buf)
		for _, sample := range buf[:n] {
			peak = math.Max(peak, math.Abs(sample[0]))
		}
		total += n
		if !ok {
			break
		}
	}

	expected := sampleRate.N(360 * time.Millisecond)
	if total != expected {
		t.Errorf("jingle has %d samples, expected %d", total, expected)
	}
	if peak == 0 || peak > 0.5+1e-9 {
		t.Errorf("peak amplitude = %v, expected within (0, 0.5]", peak)
	}
}

func TestSilentVolume(t *testing.T) {
	jingle, err := GameOverJingle(0)
	if err != nil {
		t.Fatalf("GameOverJingle() failed: %v", err)
	}

	buf := make([][2]float64, 256)
	n, _ := jingle.Stream(buf)
	for _, sample := range buf[:n] {
		if sample[0] != 0 || sample[1] != 0 {
			t.Fatal("zero volume should be silent")
		}
	}
}

func TestBell(t *testing.T) {
	var out bytes.Buffer
	b := NewBell(&out)
	b.GameOver(3)
	b.GameOver(4)

	if out.String() != "\a\a" {
		t.Errorf("bell wrote %q, expected two BEL bytes", out.String())
	}
}

func TestSpeakerWithoutInitIsSilent(t *testing.T) {
	// Must not touch the audio device
	s := NewSpeaker(1)
	s.GameOver(10)
	s.Close()
}
