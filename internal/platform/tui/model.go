package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// holdDuration is how long a movement key counts as held after a press.
// Terminal key repeat refreshes it while the key is down.
const holdDuration = 150 * time.Millisecond

// footerHeight is the number of rows reserved below the game for help.
const footerHeight = 1

// Tunable is implemented by games that accept reloaded tuning.
type Tunable interface {
	SetTuning(cfg config.HeartJumpConfig) error
}

// Model is the Bubble Tea model for running a game session.
type Model struct {
	game      core.Game
	screen    *core.Screen
	recorder  *core.SessionRecorder
	logger    *log.Logger
	config    core.RuntimeConfig
	keys      KeyMap
	keyMapper *KeyMapper
	help      help.Model
	held      *heldInput
	tuning    <-chan config.HeartJumpConfig
	gameState core.GameState
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
// cfg.ScreenH is the full terminal height; one row is kept for the footer.
// saver and logger may be nil.
func NewModel(game core.Game, saver core.ScoreSaver, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.TickRate
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	h := help.New()
	h.Width = cfg.ScreenW


	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH)),
		recorder:  core.NewSessionRecorder(saver, game.ID()),
		logger:    logger,
		config:    cfg,
		keys:      keys,
		keyMapper: NewKeyMapper(keys),
		help:      h,
		held:      newHeldInput(holdTicks),
		gameState: game.State(),
	}
}

// WithTuning makes the model apply configs received on ch at the next restart.
func (m Model) WithTuning(ch <-chan config.HeartJumpConfig) Model {
	m.tuning = ch
	return m
}

// holdTicks is the hold window in simulation ticks.
const holdTicks = int(holdDuration * core.TickRate / time.Second)

func gameRows(height int) int {
	return max(height-footerHeight, 0)
}

// Init starts the tick loop and the tuning listener.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), waitForTuning(m.tuning))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, gameRows(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case tea.BlurMsg:
		m.held.Release()
		return m, nil

	case TuningMsg:
		return m.handleTuning(config.HeartJumpConfig(msg))

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	for _, action := range m.keyMapper.MapKey(msg) {
		if action == core.ActionQuit {
			m.quitting = true
			return m, tea.Quit
		}
		m.held.Press(action)
	}

	return m, nil
}

// handleTuning queues reloaded tuning and waits for the next one.
func (m Model) handleTuning(cfg config.HeartJumpConfig) (tea.Model, tea.Cmd) {
	tunable, ok := m.game.(Tunable)
	if !ok {
		return m, waitForTuning(m.tuning)
	}

	if err := tunable.SetTuning(cfg); err != nil {
		m.logger.Warn("ignoring reloaded tuning", "error", err)
	} else {
		m.logger.Info("tuning reloaded, applies at next restart")
	}
	return m, waitForTuning(m.tuning)
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.held.Frame())
	m.gameState = result.State

	saved, err := m.recorder.Observe(m.gameState)
	if err != nil {
		m.logger.Warn("could not save score", "game", m.game.ID(), "error", err)
	} else if saved {
		m.logger.Debug("score saved", "game", m.game.ID(), "score", m.gameState.Score)
	}

	return m, tickCmd()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// State returns the last observed game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
// The simulation always ticks at core.TickRate; the config's FrameRate only
// caps how often the terminal is redrawn.
func Run(m Model) error {
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithFPS(m.config.FrameRate),
	)

	_, err := p.Run()
	return err
}
