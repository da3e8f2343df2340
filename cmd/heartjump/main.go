// heartjump is a single-screen platformer you can play in a terminal, over
// SSH or in a native window.
//
// Usage:
//
//	heartjump play           - Play in the terminal
//	heartjump window         - Play in a native window
//	heartjump launch         - Open the window if a display is available
//	heartjump serve          - Start SSH server for remote play
//	heartjump scores         - Show high scores
//	heartjump config [name]  - Print a default config file
//
// Global flags:
//
//	--fps <rate>        - Terminal redraw rate (default: 60)
//	--db <path>         - Set database path (default: ~/.heartjump/scores.db)
//	--config <path>     - Game tuning YAML
//	--watch-config      - Reload tuning when the YAML file changes
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/storage"
)

var (
	// Global flags
	flagFPS            int
	flagDBPath         string
	flagConfig         string
	flagLauncherConfig string
	flagWatchConfig    bool
	flagLogLevel       string
	flagLogFile        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "heartjump",
	Short: "Heart Jump - a retro platformer for terminals and windows",
	Long: `Heart Jump is a single-screen platformer in the style of the classic
plumber games. Collect the heart blocks, stomp the walkers and climb to the
platform at the top of the screen.

Available commands:
  play     - Play in the terminal
  window   - Play in a native window
  launch   - Open the window when a display is available
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print a default config file

Examples:
  heartjump play
  heartjump play --config ./tuning.yaml --watch-config
  heartjump play --fps 30
  heartjump serve --ssh :2222
  heartjump scores`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.TickRate, "Terminal redraw rate; the game always runs at 60 ticks per second")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLauncherConfig, "launcher-config", "", "Path to launcher YAML")
	rootCmd.PersistentFlags().BoolVar(&flagWatchConfig, "watch-config", false, "Reload tuning when the config file changes")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(launchCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the process logger. Logs go to --log-file when set and to
// fallback otherwise. The returned close func must be called on exit.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          "heartjump",
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}
