package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/launcher"
)

var launchCmd = &cobra.Command{
	Use:   "launch",
	Short: "Open the game window if a display is available",
	Long: `Start the game window as a separate process.

On a host without a display (no DISPLAY or WAYLAND_DISPLAY on Linux) nothing
is started; instead a download link and instructions for running the game
locally are printed.

Examples:
  heartjump launch
  heartjump launch --config ./tuning.yaml`,
	Args: cobra.NoArgs,
	RunE: runLaunch,
}

// forwardedFlags are passed on to the spawned window when set.
var forwardedFlags = []string{"db", "config", "launcher-config", "watch-config", "log-level", "log-file"}

func runLaunch(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	launcherCfg, err := config.LoadLauncher(flagLauncherConfig)
	if err != nil {
		return err
	}

	var args []string
	for _, name := range forwardedFlags {
		if cmd.Flags().Changed(name) {
			args = append(args, "--"+name+"="+cmd.Flags().Lookup(name).Value.String())
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := launcher.New(launcherCfg, logger).WithArgs(args...).Launch(ctx)
	if err != nil {
		return err
	}

	if !out.Launched {
		fmt.Print(out.Notice)
		return nil
	}

	fmt.Println("Starting game... close the game window when you are done.")
	fmt.Println()
	fmt.Println("Controls:")
	fmt.Println("  LEFT / RIGHT arrows - move")
	fmt.Println("  SPACE               - jump")
	return nil
}
