package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/games/heartjump"
	"github.com/vovakirdan/heartjump/internal/platform/tui"
	"github.com/vovakirdan/heartjump/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal.

Controls:
  Left/Right, A/D, H/L  - Move
  Space/Up, W/K         - Jump
  Space/R               - Restart (after the game ends)
  Q/Esc/Ctrl+C          - Quit

Logs are discarded unless --log-file is set, since the game owns the screen.

Examples:
  heartjump play
  heartjump play --config ./tuning.yaml --watch-config
  heartjump play --log-file /tmp/heartjump.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	game, err := newGame()
	if err != nil {
		return err
	}

	// Terminal size
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		FrameRate: flagFPS,
	}

	saver, closeStore := openSaver(logger)
	defer closeStore()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model := tui.NewModel(game, saver, cfg, logger)
	if ch := watchTuning(ctx, logger); ch != nil {
		model = model.WithTuning(ch)
	}

	if err := tui.Run(model); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// newGame builds a game from the tuning file, or the defaults.
func newGame() (*heartjump.Game, error) {
	tuning, err := config.LoadHeartJump(flagConfig)
	if err != nil {
		return nil, err
	}
	game, err := heartjump.New(tuning)
	if err != nil {
		return nil, fmt.Errorf("creating game: %w", err)
	}
	return game, nil
}

// openSaver opens the score store. The game still runs without one, so a
// failure only logs a warning and returns a nil saver.
func openSaver(logger *log.Logger) (core.ScoreSaver, func()) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil, func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warn("could not close scores database", "error", err)
		}
	}
}

// watchTuning starts the tuning watcher when --watch-config is set.
func watchTuning(ctx context.Context, logger *log.Logger) <-chan config.HeartJumpConfig {
	if !flagWatchConfig {
		return nil
	}
	ch, err := config.WatchHeartJump(ctx, flagConfig, logger)
	if err != nil {
		logger.Warn("config watching disabled", "error", err)
		return nil
	}
	logger.Info("watching tuning for changes", "path", config.WatchPath("heartjump", flagConfig))
	return ch
}
