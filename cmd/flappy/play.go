package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"os/user"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/audio"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/game"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagSound  bool
	flagQuiet  bool
	flagDark   bool
	flagNoSave bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a local game.

Controls:
  Space/Up/Enter/Click - Start, flap, restart after game over
  T                    - Toggle dark theme
  Ctrl+S               - Save a text screenshot
  Q/Ctrl+C             - Quit

Every finished run is journaled so it can be replayed later.
Logs go to ~/.flappy/flappy.log while the game owns the terminal.

Examples:
  flappy play
  flappy play --sound
  flappy play --seed 42 --dark
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play a jingle on game over through the audio device")
	playCmd.Flags().BoolVar(&flagQuiet, "quiet", false, "Disable all game-over sounds")
	playCmd.Flags().BoolVar(&flagDark, "dark", false, "Start with the dark theme")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Jingle volume for --sound, in (0, 1]")
	playCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not journal finished runs")
}

func runPlay(_ *cobra.Command, _ []string) error {
	opts, err := loadOptions()
	if err != nil {
		return err
	}

	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "flappy")
	if err != nil {
		return err
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    flagSeed,
		Dark:    flagDark,
	}

	sink := newAudio(logger)
	if c, ok := sink.(closingAudio); ok {
		defer c.Close()
	}
	sessionOpts := []game.SessionOption{game.WithAudio(sink)}

	if !flagNoSave {
		store, storeErr := storage.Open(flagDBPath)
		if storeErr != nil {
			logger.Warn("could not open run journal", "error", storeErr)
		} else {
			defer store.Close()
			sessionOpts = append(sessionOpts, game.WithRecorder(store.Recorder(localPlayer())))
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting local game", "width", width, "height", height, "seed", flagSeed)
	if err := tui.Run(ctx, cfg, opts, logger, sessionOpts...); err != nil {
		return fmt.Errorf("game error: %w", err)
	}
	return nil
}

// closingAudio is an audio sink that owns a device to release on exit.
type closingAudio interface {
	game.AudioSink
	Close()
}

// newAudio picks the game-over sound for local play.
func newAudio(logger *log.Logger) game.AudioSink {
	switch {
	case flagQuiet:
		return audio.Nop{}
	case flagSound:
		spk := audio.NewSpeaker(flagVolume)
		if err := spk.Init(); err != nil {
			logger.Warn("audio device unavailable, using terminal bell", "error", err)
			return audio.NewBell(os.Stdout)
		}
		return spk
	default:
		return audio.NewBell(os.Stdout)
	}
}

// localPlayer names local runs in the journal.
func localPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}

// openLogFile opens ~/.flappy/flappy.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".flappy")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "flappy.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
