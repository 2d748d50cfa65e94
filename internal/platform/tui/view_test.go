package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

func TestDrawFrameRunning(t *testing.T) {
	opts := game.DefaultOptions()
	s := core.NewScreen(80, 24)
	snap := game.Snapshot{
		State:     game.Running,
		Score:     3,
		EntityY:   opts.StartY(),
		Obstacles: []game.Obstacle{{X: 200, GapTop: 150}},
	}

	DrawFrame(s, snap, opts)

	if !strings.Contains(s.Row(0), "Score: 3") {
		t.Errorf("HUD row = %q, expected score", s.Row(0))
	}
	if got := s.Get(12, 11); got != entityRune {
		t.Errorf("entity cell = %q, expected %q", got, entityRune)
	}

	tests := []struct {
		name string
		x, y int
		pipe bool
	}{
		{"above gap", 45, 2, true},
		{"inside gap", 45, 10, false},
		{"below gap", 45, 20, true},
		{"left of obstacle", 39, 2, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Get(tc.x, tc.y) == pipeRune; got != tc.pipe {
				t.Errorf("pipe at (%d,%d) = %v, expected %v", tc.x, tc.y, got, tc.pipe)
			}
		})
	}

	if got := s.Get(0, 23); got != groundRune {
		t.Errorf("ground cell = %q, expected %q", got, groundRune)
	}
}

func TestDrawFrameMessages(t *testing.T) {
	opts := game.DefaultOptions()

	tests := []struct {
		name     string
		snap     game.Snapshot
		expected string
	}{
		{"not started", game.Snapshot{State: game.NotStarted, EntityY: opts.StartY()}, "Press space or click to start"},
		{"game over", game.Snapshot{State: game.GameOver, Score: 7, EntityY: opts.MaxEntityY()}, "Score: 7 | space to restart"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			DrawFrame(s, tc.snap, opts)
			if !strings.Contains(s.String(), tc.expected) {
				t.Errorf("frame missing %q:\n%s", tc.expected, s.String())
			}
		})
	}
}

func TestDrawFrameTooSmall(t *testing.T) {
	s := core.NewScreen(19, 6)
	DrawFrame(s, game.Snapshot{State: game.Running}, game.DefaultOptions())

	if !strings.Contains(s.String(), "Terminal too small") {
		t.Errorf("expected size warning, got:\n%s", s.String())
	}
}

func TestDrawFrameClipsOffscreenObstacle(t *testing.T) {
	opts := game.DefaultOptions()
	s := core.NewScreen(80, 24)
	snap := game.Snapshot{
		State:     game.Running,
		EntityY:   opts.StartY(),
		Obstacles: []game.Obstacle{{X: -30, GapTop: 150}, {X: 390, GapTop: 150}},
	}

	// Must not panic on partially visible obstacles.
	DrawFrame(s, snap, opts)

	if s.Get(0, 2) != pipeRune {
		t.Error("expected left obstacle remainder at column 0")
	}
	if s.Get(79, 2) != pipeRune {
		t.Error("expected right obstacle at last column")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(20, 2)
	s.DrawTextColor(0, 0, "Score: 3", core.ColorWhite)
	s.DrawTextColor(0, 1, "@@", core.ColorYellow)

	for _, p := range []Palette{
		PaletteFor(false, false),
		PaletteFor(true, false),
		PaletteFor(false, true),
		PaletteFor(true, true),
	} {
		out := RenderScreen(s, p)
		if !strings.Contains(out, "Score: 3") || !strings.Contains(out, "@@") {
			t.Errorf("rendered output lost text: %q", out)
		}
		if strings.Count(out, "\n") != 1 {
			t.Errorf("expected 2 rows, got %q", out)
		}
	}
}
