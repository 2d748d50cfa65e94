// Package tui hosts the game in a Bubble Tea program, locally or over SSH.
// The session runs on its own goroutine; the model only forwards actions to
// it and renders the snapshots it publishes.
package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// frameMsg carries the latest snapshot into the Bubble Tea loop.
type frameMsg game.Snapshot

// sessionDoneMsg is sent when the session goroutine returns.
type sessionDoneMsg struct{ err error }

// FrameSink is a latest-wins observer. A slow renderer skips frames instead
// of stalling the simulation.
type FrameSink struct {
	ch chan game.Snapshot
}

// NewFrameSink creates an empty frame sink.
func NewFrameSink() *FrameSink {
	return &FrameSink{ch: make(chan game.Snapshot, 1)}
}

// Observe implements game.Observer. It must be called from a single goroutine.
func (f *FrameSink) Observe(s game.Snapshot) {
	select {
	case f.ch <- s:
		return
	default:
	}
	// Replace the unread frame.
	select {
	case <-f.ch:
	default:
	}
	select {
	case f.ch <- s:
	default:
	}
}

// Frames returns the channel the latest snapshot is delivered on.
func (f *FrameSink) Frames() <-chan game.Snapshot {
	return f.ch
}

// waitForFrame blocks until the next snapshot or until ctx is done.
func waitForFrame(ctx context.Context, frames <-chan game.Snapshot) tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-frames:
			return frameMsg(s)
		case <-ctx.Done():
			return nil
		}
	}
}

// runSession runs the session loop as a long-lived command.
func runSession(ctx context.Context, s *game.Session, actions <-chan core.Action) tea.Cmd {
	return func() tea.Msg {
		return sessionDoneMsg{err: s.Run(ctx, actions)}
	}
}

// gameOverFlag is the theme observer. The session goroutine writes it and
// View reads it.
type gameOverFlag struct {
	v atomic.Bool
}

// SetGameOver implements game.ThemeSink.
func (g *gameOverFlag) SetGameOver(over bool) {
	g.v.Store(over)
}

func (g *gameOverFlag) Load() bool {
	return g.v.Load()
}
