// Package window runs the game in a native window with Ebitengine.
package window

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/games/heartjump"
)

// KeySource reports keyboard state once per tick.
type KeySource interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Key bindings, matching the terminal controls.
var (
	leftKeys    = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys   = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	jumpKeys    = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
	restartKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyR}
	quitKeys    = []ebiten.Key{ebiten.KeyEscape}
)

func anyPressed(src KeySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(src KeySource, keys []ebiten.Key) bool {
	for _, k := range keys {
		if src.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// readInput samples held movement and jump keys. Restart is edge triggered.
func readInput(src KeySource) core.InputFrame {
	in := core.NewInputFrame()
	if anyPressed(src, leftKeys) {
		in.Set(core.ActionLeft)
	}
	if anyPressed(src, rightKeys) {
		in.Set(core.ActionRight)
	}
	if anyPressed(src, jumpKeys) {
		in.Set(core.ActionJump)
	}
	if anyJustPressed(src, restartKeys) {
		in.Set(core.ActionRestart)
	}
	if anyJustPressed(src, quitKeys) {
		in.Set(core.ActionQuit)
	}
	return in
}

// Window implements ebiten.Game for one game session.
type Window struct {
	ctx      context.Context
	game     *heartjump.Game
	keys     KeySource
	recorder *core.SessionRecorder
	logger   *log.Logger
	tuning   <-chan config.HeartJumpConfig
	face     ebtext.Face
}

var _ ebiten.Game = (*Window)(nil)

// New creates a window adapter for game. saver and logger may be nil.
func New(game *heartjump.Game, saver core.ScoreSaver, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Window{
		ctx:      context.Background(),
		game:     game,
		keys:     ebitenKeys{},
		recorder: core.NewSessionRecorder(saver, game.ID()),
		logger:   logger,
		face:     ebtext.NewGoXFace(basicfont.Face7x13),
	}
}

// WithTuning makes the window apply configs received on ch at the next restart.
func (w *Window) WithTuning(ch <-chan config.HeartJumpConfig) *Window {
	w.tuning = ch
	return w
}

// Update advances the game by one tick. Ebitengine calls it at the TPS rate.
func (w *Window) Update() error {
	if w.ctx.Err() != nil {
		return ebiten.Termination
	}

	w.drainTuning()

	in := readInput(w.keys)
	if in.Has(core.ActionQuit) {
		return ebiten.Termination
	}

	result := w.game.Step(in)
	saved, err := w.recorder.Observe(result.State)
	if err != nil {
		w.logger.Warn("could not save score", "game", w.game.ID(), "error", err)
	} else if saved {
		w.logger.Info("score saved", "game", w.game.ID(), "score", result.State.Score)
	}
	return nil
}

// drainTuning applies every config waiting on the channel without blocking.
func (w *Window) drainTuning() {
	for {
		select {
		case cfg, ok := <-w.tuning:
			if !ok {
				w.tuning = nil
				return
			}
			if err := w.game.SetTuning(cfg); err != nil {
				w.logger.Warn("ignoring reloaded tuning", "error", err)
				continue
			}
			w.logger.Info("tuning reloaded, applies at next restart")
		default:
			return
		}
	}
}

// Draw renders the current snapshot.
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(colorSky)

	snap := w.game.Snapshot()
	for _, s := range scene(snap) {
		paint(screen, s)
	}
	for _, l := range labels(snap) {
		w.drawLabel(screen, l)
	}
}

// Layout fixes the logical screen to the world size; Ebitengine scales it.
func (w *Window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return heartjump.WorldWidth, heartjump.WorldHeight
}

func paint(dst *ebiten.Image, s shape) {
	switch s.kind {
	case shapeRect:
		vector.FillRect(dst, s.X, s.Y, s.W, s.H, s.Color, false)
	case shapeRectOutline:
		vector.StrokeRect(dst, s.X, s.Y, s.W, s.H, s.Stroke, s.Color, false)
	case shapeCircle:
		vector.FillCircle(dst, s.X, s.Y, s.R, s.Color, true)
	case shapeLine:
		vector.StrokeLine(dst, s.X, s.Y, s.X2, s.Y2, s.Stroke, s.Color, false)
	}
}

func (w *Window) drawLabel(dst *ebiten.Image, l label) {
	op := &ebtext.DrawOptions{}
	if !l.Left {
		op.PrimaryAlign = ebtext.AlignCenter
		op.SecondaryAlign = ebtext.AlignCenter
	}
	op.GeoM.Scale(l.Scale, l.Scale)
	op.GeoM.Translate(l.X, l.Y)
	op.ColorScale.ScaleWithColor(l.Color)
	ebtext.Draw(dst, l.Text, w.face, op)
}

// Options configures the native window.
type Options struct {
	Title string
	Scale float64 // Window size multiplier over the world size
}

// OptionsFrom builds window options from the launcher config.
func OptionsFrom(cfg config.LauncherConfig) Options {
	return Options{
		Title: cfg.WindowTitle,
		Scale: cfg.WindowScale,
	}
}

// Run opens the window and blocks until it is closed, Escape is pressed or
// ctx is cancelled.
func Run(ctx context.Context, w *Window, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.Title == "" {
		opts.Title = w.game.Title()
	}

	w.ctx = ctx

	ebiten.SetWindowSize(
		int(float64(heartjump.WorldWidth)*opts.Scale),
		int(float64(heartjump.WorldHeight)*opts.Scale),
	)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetTPS(core.TickRate)

	w.logger.Debug("opening window", "title", opts.Title, "tps", core.TickRate, "scale", opts.Scale)

	if err := ebiten.RunGame(w); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
