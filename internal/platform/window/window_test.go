package window

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/games/heartjump"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	held map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func newFakeKeys() *fakeKeys {
	return &fakeKeys{held: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
}

func (f *fakeKeys) IsKeyPressed(k ebiten.Key) bool     { return f.held[k] }
func (f *fakeKeys) IsKeyJustPressed(k ebiten.Key) bool { return f.just[k] }

func newTestWindow(t *testing.T) (*Window, *heartjump.Game, *fakeKeys) {
	t.Helper()
	game, err := heartjump.New(config.DefaultHeartJumpConfig())
	if err != nil {
		t.Fatalf("heartjump.New() failed: %v", err)
	}
	keys := newFakeKeys()
	w := New(game, nil, nil)
	w.keys = keys
	return w, game, keys
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name string
		held []ebiten.Key
		just []ebiten.Key
		want []core.Action
	}{
		{"nothing", nil, nil, nil},
		{"arrow left", []ebiten.Key{ebiten.KeyArrowLeft}, nil, []core.Action{core.ActionLeft}},
		{"d right", []ebiten.Key{ebiten.KeyD}, nil, []core.Action{core.ActionRight}},
		{"held space jumps", []ebiten.Key{ebiten.KeySpace}, nil, []core.Action{core.ActionJump}},
		{"pressed space also restarts", []ebiten.Key{ebiten.KeySpace}, []ebiten.Key{ebiten.KeySpace}, []core.Action{core.ActionJump, core.ActionRestart}},
		{"r restarts", nil, []ebiten.Key{ebiten.KeyR}, []core.Action{core.ActionRestart}},
		{"escape quits", nil, []ebiten.Key{ebiten.KeyEscape}, []core.Action{core.ActionQuit}},
	}

	all := []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionRestart, core.ActionQuit}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys := newFakeKeys()
			for _, k := range tc.held {
				keys.held[k] = true
			}
			for _, k := range tc.just {
				keys.just[k] = true
			}

			in := readInput(keys)
			want := make(map[core.Action]bool)
			for _, a := range tc.want {
				want[a] = true
			}
			for _, a := range all {
				if in.Has(a) != want[a] {
					t.Errorf("Has(%v) = %v, expected %v", a, in.Has(a), want[a])
				}
			}
		})
	}
}

func TestUpdateStepsGame(t *testing.T) {
	w, game, keys := newTestWindow(t)
	keys.held[ebiten.KeyArrowRight] = true

	for i := 0; i < 10; i++ {
		if err := w.Update(); err != nil {
			t.Fatalf("Update() failed: %v", err)
		}
	}

	snap := game.Snapshot()
	if snap.Tick != 10 {
		t.Errorf("tick = %d, expected 10", snap.Tick)
	}
	if snap.Player.Box.X != 150 {
		t.Errorf("player x = %f, expected 150 after 10 ticks right", snap.Player.Box.X)
	}
}

func TestUpdateQuit(t *testing.T) {
	w, game, keys := newTestWindow(t)
	keys.just[ebiten.KeyEscape] = true

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected termination", err)
	}
	if game.Snapshot().Tick != 0 {
		t.Error("quitting should not step the game")
	}
}

func TestUpdateStopsOnCancelledContext(t *testing.T) {
	w, _, _ := newTestWindow(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.ctx = ctx

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update() = %v, expected termination", err)
	}
}

func TestUpdateDrainsTuning(t *testing.T) {
	w, _, _ := newTestWindow(t)

	ch := make(chan config.HeartJumpConfig, 2)
	bad := config.DefaultHeartJumpConfig()
	bad.Physics.Gravity = 0
	ch <- bad
	ch <- config.DefaultHeartJumpConfig()
	close(ch)
	w.WithTuning(ch)

	if err := w.Update(); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if len(ch) != 0 {
		t.Error("all pending configs should be consumed")
	}
	if w.tuning != nil {
		t.Error("closed tuning channel should be dropped")
	}
}

func TestLayoutIsWorldSize(t *testing.T) {
	w, _, _ := newTestWindow(t)

	width, height := w.Layout(1920, 1080)
	if width != heartjump.WorldWidth || height != heartjump.WorldHeight {
		t.Errorf("Layout() = %dx%d", width, height)
	}
}

func TestOptionsFrom(t *testing.T) {
	opts := OptionsFrom(config.DefaultLauncherConfig())
	if opts.Title != "Super Mario - Vintage Edition" || opts.Scale != 1 {
		t.Errorf("unexpected options: %+v", opts)
	}
}
