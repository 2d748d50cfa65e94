package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/clock"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// actionBuffer bounds how many inputs may queue while the session is busy.
const actionBuffer = 16

// Model is the Bubble Tea model hosting one game session.
type Model struct {
	ctx     context.Context
	cancel  context.CancelFunc
	session *game.Session
	opts    game.Options
	frames  *FrameSink
	over    *gameOverFlag
	actions chan core.Action
	logger  *log.Logger

	screen   *core.Screen
	snap     game.Snapshot
	keys     KeyMap
	help     help.Model
	dark     bool
	quitting bool
}

// NewModel creates a model and the session it drives. The session is not
// running until Init's command starts it; cancelling ctx stops it.
// sessionOpts add audio, recorder and logger collaborators.
func NewModel(ctx context.Context, cfg core.RuntimeConfig, opts game.Options, c clock.Clock, sessionOpts ...game.SessionOption) Model {
	ctx, cancel := context.WithCancel(ctx)
	frames := NewFrameSink()
	over := &gameOverFlag{}

	sessionOpts = append(sessionOpts,
		game.WithSeeds(game.SeedsFrom(cfg.Seed)),
		game.WithObserver(frames),
		game.WithTheme(over),
	)
	session := game.NewSession(opts, c, sessionOpts...)

	return Model{
		ctx:     ctx,
		cancel:  cancel,
		session: session,
		opts:    opts,
		frames:  frames,
		over:    over,
		actions: make(chan core.Action, actionBuffer),
		logger:  log.New(io.Discard),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		dark:    cfg.Dark,
	}
}

// Init starts the session goroutine and the frame pump.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		runSession(m.ctx, m.session, m.actions),
		waitForFrame(m.ctx, m.frames.Frames()),
	)
}

// Update handles messages and forwards player actions to the session.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.send(MapMouse(msg))
		return m, nil

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		m.snap = game.Snapshot(msg)
		return m, waitForFrame(m.ctx, m.frames.Frames())

	case sessionDoneMsg:
		if msg.err != nil && !errors.Is(msg.err, context.Canceled) {
			m.logger.Error("session stopped", "error", msg.err)
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	switch a := m.keys.MapKey(msg); a {
	case core.ActionQuit:
		m.quitting = true
		m.cancel()
		return m, tea.Quit
	case core.ActionTheme:
		m.dark = !m.dark
	case core.ActionJump:
		m.send(a)
	}
	return m, nil
}

// send hands an action to the session without blocking the UI.
func (m Model) send(a core.Action) {
	if !a.Simulated() {
		return
	}
	select {
	case m.actions <- a:
	default:
		m.logger.Debug("input dropped", "action", a)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m Model) saveScreenshot() {
	DrawFrame(m.screen, m.snap, m.opts)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	name := fmt.Sprintf("flappy_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the latest snapshot.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	DrawFrame(m.screen, m.snap, m.opts)
	return RenderScreen(m.screen, PaletteFor(m.dark, m.over.Load())) +
		"\n" + helpStyle.Render(m.help.View(m.keys))
}

// Snapshot returns the last frame the model received.
func (m Model) Snapshot() game.Snapshot {
	return m.snap
}

// Dark reports whether the dark theme is active.
func (m Model) Dark() bool {
	return m.dark
}

// WithLogger returns a copy of the model that logs UI events to l.
func (m Model) WithLogger(l *log.Logger) Model {
	m.logger = l
	return m
}

// Run starts the Bubble Tea program for a local session on a wall clock.
func Run(ctx context.Context, cfg core.RuntimeConfig, opts game.Options, logger *log.Logger, sessionOpts ...game.SessionOption) error {
	sessionOpts = append(sessionOpts, game.WithLogger(logger))
	model := NewModel(ctx, cfg, opts, clock.NewTicker(opts.TickPeriod), sessionOpts...).WithLogger(logger)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
