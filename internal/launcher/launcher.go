// Package launcher starts the native game window as a separate process when
// a display is available, and explains how to run the game locally when not.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heartjump/internal/config"
)

// Headless reports whether the host has no display a window could open on.
// Windows and macOS always have one; elsewhere an X11 or Wayland display
// must be advertised in the environment.
func Headless(goos string, getenv func(string) string) bool {
	switch goos {
	case "windows", "darwin":
		return false
	}
	return getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == ""
}

// Notice tells the user how to get the game running without this launcher.
type Notice struct {
	Message     string
	DownloadURL string
	Steps       []string
}

// String formats the notice for a terminal.
func (n Notice) String() string {
	var b strings.Builder
	b.WriteString(n.Message)
	b.WriteString("\n")
	fmt.Fprintf(&b, "  - Download the game to run locally: %s\n", n.DownloadURL)
	for _, step := range n.Steps {
		fmt.Fprintf(&b, "  - %s\n", step)
	}
	return b.String()
}

// Outcome is what a launch attempt produced.
type Outcome struct {
	Launched bool
	PID      int    // Set when launched
	Notice   Notice // Set when not launched
}

// Starter starts a detached process and returns its pid.
type Starter func(name string, args ...string) (int, error)

// startDetached runs name without waiting for it. The process keeps running
// after the launcher exits.
func startDetached(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return 0, err
	}
	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		return pid, err
	}
	return pid, nil
}

// Launcher decides whether the window can be opened and opens it.
type Launcher struct {
	cfg    config.LauncherConfig
	logger *log.Logger
	args   []string // Extra flags passed to the window command

	goos       string
	getenv     func(string) string
	executable func() (string, error)
	start      Starter
}

// New creates a launcher for the current host. logger may be nil.
func New(cfg config.LauncherConfig, logger *log.Logger) *Launcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Launcher{
		cfg:        cfg,
		logger:     logger,
		goos:       runtime.GOOS,
		getenv:     os.Getenv,
		executable: os.Executable,
		start:      startDetached,
	}
}

// WithArgs appends flags to the spawned window command.
func (l *Launcher) WithArgs(args ...string) *Launcher {
	l.args = append(l.args, args...)
	return l
}

// Headless reports whether this host has no display.
func (l *Launcher) Headless() bool {
	return Headless(l.goos, l.getenv)
}

// Launch opens the game window in its own process, or returns a notice when
// no display is available. A failure to start is returned as an error and is
// not retried.
func (l *Launcher) Launch(ctx context.Context) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}

	if l.Headless() {
		l.logger.Info("no display available, not launching")
		return Outcome{Notice: l.notice()}, nil
	}

	exe, err := l.executable()
	if err != nil {
		return Outcome{}, fmt.Errorf("launcher: locate executable: %w", err)
	}

	args := append([]string{"window"}, l.args...)
	l.logger.Debug("starting game window", "exe", exe, "args", args)

	pid, err := l.start(exe, args...)
	if err != nil {
		return Outcome{}, fmt.Errorf("launcher: failed to start game: %w", err)
	}

	l.logger.Info("game window started", "pid", pid)
	return Outcome{Launched: true, PID: pid}, nil
}

func (l *Launcher) notice() Notice {
	return Notice{
		Message:     "This environment is headless, a game window cannot open here.",
		DownloadURL: l.cfg.DownloadURL,
		Steps: []string{
			"After downloading, install Go 1.25 or newer",
			"Run locally with: go run ./cmd/heartjump window",
			"Or play in this terminal with: heartjump play",
		},
	}
}
