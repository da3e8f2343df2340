package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// stubGame replays a fixed sequence of states and records its inputs.
type stubGame struct {
	states  []core.GameState
	inputs  []core.InputFrame
	tuning  *config.HeartJumpConfig
	resets  int
	current core.GameState
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset()        { g.resets++ }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.states) > 0 {
		g.current = g.states[0]
		g.states = g.states[1:]
	}
	return core.StepResult{State: g.current}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub", core.ColorRed)
}

func (g *stubGame) State() core.GameState { return g.current }

func (g *stubGame) SetTuning(cfg config.HeartJumpConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.tuning = &cfg
	return nil
}

type recordingSaver struct {
	scores []int
}

func (s *recordingSaver) SaveScore(gameID string, score int) (int64, error) {
	s.scores = append(s.scores, score)
	return int64(len(s.scores)), nil
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 25, FrameRate: 60}
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestKeyMapper(t *testing.T) {
	km := NewKeyMapper(DefaultKeyMap())

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []core.Action
	}{
		{"space jumps and restarts", tea.KeyMsg{Type: tea.KeySpace}, []core.Action{core.ActionJump, core.ActionRestart}},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, []core.Action{core.ActionJump}},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, []core.Action{core.ActionLeft}},
		{"d moves right", keyRunes("d"), []core.Action{core.ActionRight}},
		{"r restarts", keyRunes("r"), []core.Action{core.ActionRestart}},
		{"q quits", keyRunes("q"), []core.Action{core.ActionQuit}},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, []core.Action{core.ActionQuit}},
		{"unbound key", keyRunes("x"), nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := km.MapKey(tc.msg)
			if len(got) != len(tc.want) {
				t.Fatalf("MapKey() = %v, expected %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Errorf("MapKey()[%d] = %v, expected %v", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestHeldInputWindow(t *testing.T) {
	h := newHeldInput(3)
	h.Press(core.ActionLeft)
	h.Press(core.ActionJump)

	f := h.Frame()
	if !f.Has(core.ActionLeft) || !f.Has(core.ActionJump) {
		t.Fatal("first frame should carry both actions")
	}

	for i := 0; i < 2; i++ {
		f = h.Frame()
		if !f.Has(core.ActionLeft) {
			t.Errorf("left should still be held on frame %d", i+2)
		}
		if f.Has(core.ActionJump) {
			t.Error("jump should only last one tick")
		}
	}

	if h.Frame().Has(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHeldInputOppositeDirection(t *testing.T) {
	h := newHeldInput(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	f := h.Frame()
	if f.Has(core.ActionLeft) || !f.Has(core.ActionRight) {
		t.Error("pressing right should cancel a held left")
	}

	h.Release()
	if h.Frame().Has(core.ActionRight) {
		t.Error("Release should drop held keys")
	}
}

func TestModelReservesFooterRow(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), nil)
	if m.screen.Height() != 24 {
		t.Errorf("game rows = %d, expected 24", m.screen.Height())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("after resize: %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}

	view := m.View()
	if !strings.Contains(view, "stub") || !strings.Contains(view, "jump") {
		t.Error("view should contain the game and the help footer")
	}
}

func TestModelFeedsHeldKeysToGame(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, nil, testConfig(), nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m, _ = update(t, m, TickMsg{})

	if len(game.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(game.inputs))
	}
	for i, in := range game.inputs {
		if !in.Has(core.ActionRight) {
			t.Errorf("step %d should see right held", i)
		}
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), nil)

	m, cmd := update(t, m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelSavesFinishedSessionOnce(t *testing.T) {
	game := &stubGame{states: []core.GameState{
		{Score: 1500},
		{Score: 3000, GameOver: true},
		{Score: 3000, GameOver: true},
		{Score: 0},
		{Score: 1000, Won: true},
	}}
	saver := &recordingSaver{}
	m := NewModel(game, saver, testConfig(), nil)

	for i := 0; i < 5; i++ {
		m, _ = update(t, m, TickMsg{})
	}

	if len(saver.scores) != 2 || saver.scores[0] != 3000 || saver.scores[1] != 1000 {
		t.Errorf("saved scores = %v, expected [3000 1000]", saver.scores)
	}
	if !m.State().Won {
		t.Error("model should track the last state")
	}
}

func TestModelAppliesTuning(t *testing.T) {
	game := &stubGame{}
	ch := make(chan config.HeartJumpConfig)
	m := NewModel(game, nil, testConfig(), nil).WithTuning(ch)

	cfg := config.DefaultHeartJumpConfig()
	cfg.Physics.Gravity = 0.3

	m, cmd := update(t, m, TuningMsg(cfg))
	if game.tuning == nil || game.tuning.Physics.Gravity != 0.3 {
		t.Error("tuning should be passed to the game")
	}
	if cmd == nil {
		t.Error("model should keep listening for tuning")
	}

	bad := config.DefaultHeartJumpConfig()
	bad.Physics.Gravity = -1
	update(t, m, TuningMsg(bad))
	if game.tuning.Physics.Gravity != 0.3 {
		t.Error("invalid tuning should be ignored")
	}
}

func TestWaitForTuningClosedChannel(t *testing.T) {
	if waitForTuning(nil) != nil {
		t.Error("nil channel should not start a listener")
	}

	ch := make(chan config.HeartJumpConfig)
	close(ch)
	if msg := waitForTuning(ch)(); msg != nil {
		t.Errorf("closed channel should yield nil, got %v", msg)
	}
}

func TestFrameRateDoesNotChangeSimulationRate(t *testing.T) {
	if time.Second/tickInterval != core.TickRate {
		t.Errorf("tick interval = %v, expected 1/%d s", tickInterval, core.TickRate)
	}

	for _, fps := range []int{0, 15, 30, 120} {
		cfg := testConfig()
		cfg.FrameRate = fps
		m := NewModel(&stubGame{}, nil, cfg, nil)

		if m.held.window != 9 {
			t.Errorf("fps %d: hold window = %d ticks, expected 9", fps, m.held.window)
		}
		if fps == 0 && m.config.FrameRate != core.TickRate {
			t.Errorf("default frame rate = %d, expected %d", m.config.FrameRate, core.TickRate)
		}
	}
}
