package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a native window",
	Long: `Open an 800x600 game window.

Controls:
  Left/Right, A/D  - Move
  Space/Up, W      - Jump
  Space/R          - Restart (after the game ends)
  Esc              - Quit

The window title and size come from the launcher config.

Examples:
  heartjump window
  heartjump window --launcher-config ./launcher.yaml`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	launcherCfg, err := config.LoadLauncher(flagLauncherConfig)
	if err != nil {
		return err
	}

	game, err := newGame()
	if err != nil {
		return err
	}

	saver, closeStore := openSaver(logger)
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w := window.New(game, saver, logger)
	if ch := watchTuning(ctx, logger); ch != nil {
		w.WithTuning(ch)
	}

	return window.Run(ctx, w, window.OptionsFrom(launcherCfg))
}
