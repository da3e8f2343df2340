// Package tui runs the game in a terminal with Bubble Tea.
// It handles the fixed-rate loop, key mapping, colored rendering, the
// scoreboard and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// TuningMsg carries reloaded game tuning from the config watcher.
type TuningMsg config.HeartJumpConfig

// tickInterval is the time between simulation ticks.
const tickInterval = time.Second / core.TickRate

// tickCmd returns a Bubble Tea command that sends the next tick message.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// waitForTuning blocks until the watcher delivers a new config.
// Returns nil once the channel is closed, which stops the loop.
func waitForTuning(ch <-chan config.HeartJumpConfig) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		cfg, ok := <-ch
		if !ok {
			return nil
		}
		return TuningMsg(cfg)
	}
}
