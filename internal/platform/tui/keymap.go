package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/heartjump/internal/core"
)

// KeyMap defines the key bindings for a game session.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Jump    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Restart, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Jump},
		{k.Restart, k.Quit},
	}
}

// DefaultKeyMap returns the fixed game controls.
// Space both jumps and restarts; the game ignores whichever does not apply.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Restart: key.NewBinding(
			key.WithKeys(" ", "r"),
			key.WithHelp("space/r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message to the actions it triggers.
// A single key may trigger several actions.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) []core.Action {
	if key.Matches(msg, km.keys.Quit) {
		return []core.Action{core.ActionQuit}
	}

	var actions []core.Action
	if key.Matches(msg, km.keys.Left) {
		actions = append(actions, core.ActionLeft)
	}
	if key.Matches(msg, km.keys.Right) {
		actions = append(actions, core.ActionRight)
	}
	if key.Matches(msg, km.keys.Jump) {
		actions = append(actions, core.ActionJump)
	}
	if key.Matches(msg, km.keys.Restart) {
		actions = append(actions, core.ActionRestart)
	}
	return actions
}

// heldInput emulates held keys on terminals, which only report presses.
// A movement press stays active for a short window that key repeat keeps
// refreshing. Other actions last for a single tick.
type heldInput struct {
	window    int
	remaining map[core.Action]int
}

func newHeldInput(window int) *heldInput {
	if window < 1 {
		window = 1
	}
	return &heldInput{
		window:    window,
		remaining: make(map[core.Action]int),
	}
}

// Press registers an action reported by the terminal.
func (h *heldInput) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.remaining, core.ActionRight)
		h.remaining[a] = h.window
	case core.ActionRight:
		delete(h.remaining, core.ActionLeft)
		h.remaining[a] = h.window
	default:
		h.remaining[a] = 1
	}
}

// Frame returns the actions active for the next tick and ages them.
func (h *heldInput) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops every held action.
func (h *heldInput) Release() {
	for a := range h.remaining {
		delete(h.remaining, a)
	}
}
