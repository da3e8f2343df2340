package heartjump

import (
	"fmt"
	"math"

	"github.com/vovakirdan/heartjump/internal/core"
)

// Visual characters for terminal rendering
const (
	GroundChar   = '▒'
	PipeChar     = '█'
	BlockChar    = '▓'
	HeartChar    = '♥'
	EnemyChar    = '▆'
	EnemyEyeChar = 'o'
	PlayerChar   = '█'
	PlayerHead   = '▀'
	PlayerEye    = '•'
)

// groundMinWidth separates wide brick platforms from narrow pipe platforms.
const groundMinWidth = 200

// Render draws the current game state, scaled to fit the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// RenderSnapshot draws a snapshot into a character screen.
// World pixels are mapped onto the cell grid so the whole level is always
// visible regardless of terminal size.
func RenderSnapshot(dst *core.Screen, s Snapshot) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	v := newViewport(dst.Width(), dst.Height())

	for _, p := range s.Platforms {
		drawPlatform(dst, v.cells(p), p.W >= groundMinWidth)
	}

	for _, b := range s.Blocks {
		if b.Active {
			drawHeartBlock(dst, v.cells(b.Box))
		}
	}

	for _, e := range s.Enemies {
		drawEnemy(dst, v.cells(e.Box), e.Facing)
	}

	drawPlayer(dst, v.cells(s.Player.Box), s.Player.Facing)

	// HUD
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
	levelText := fmt.Sprintf("Level: %d", s.Level)
	dst.DrawText(dst.Width()-len(levelText)-1, 0, levelText, core.ColorBrightWhite)

	if banner, ok := s.Banner(); ok {
		drawBanner(dst, banner)
	}
}

// viewport maps world pixels to screen cells.
type viewport struct {
	sx, sy float64
}

func newViewport(cols, rows int) viewport {
	return viewport{
		sx: float64(cols) / WorldWidth,
		sy: float64(rows) / WorldHeight,
	}
}

// cells returns the smallest cell rectangle covering the box, at least one cell.
func (v viewport) cells(b core.Box) core.Rect {
	x0 := int(math.Floor(b.X * v.sx))
	y0 := int(math.Floor(b.Y * v.sy))
	x1 := int(math.Ceil(b.Right() * v.sx))
	y1 := int(math.Ceil(b.Bottom() * v.sy))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

func drawPlatform(dst *core.Screen, r core.Rect, ground bool) {
	if ground {
		dst.DrawRect(r, GroundChar, core.ColorBrown)
		return
	}
	dst.DrawRect(r, PipeChar, core.ColorGreen)
}

func drawHeartBlock(dst *core.Screen, r core.Rect) {
	dst.DrawRect(r, BlockChar, core.ColorYellow)
	dst.SetColored(r.X+r.W/2, r.Y+r.H/2, HeartChar, core.ColorBrightRed)
}

func drawEnemy(dst *core.Screen, r core.Rect, facing Direction) {
	dst.DrawRect(r, EnemyChar, core.ColorBrown)
	eyeX := r.X
	if facing == Right {
		eyeX = r.Right() - 1
	}
	dst.SetColored(eyeX, r.Y, EnemyEyeChar, core.ColorBrightWhite)
}

// drawPlayer draws a head, red shirt and blue trousers when there is room
// for three rows, and a single red block otherwise.
func drawPlayer(dst *core.Screen, r core.Rect, facing Direction) {
	if r.H < 3 {
		dst.DrawRect(r, PlayerChar, core.ColorRed)
		return
	}

	dst.DrawHLine(r.X, r.Y, r.W, PlayerHead, core.ColorSkin)
	eyeX := r.X
	if facing == Right {
		eyeX = r.Right() - 1
	}
	dst.SetColored(eyeX, r.Y, PlayerEye, core.ColorSkin)

	dst.DrawRect(core.NewRect(r.X, r.Y+1, r.W, r.H-2), PlayerChar, core.ColorRed)
	dst.DrawHLine(r.X, r.Bottom()-1, r.W, PlayerChar, core.ColorBlue)
}

// drawBanner draws a message box in the center of the screen.
func drawBanner(dst *core.Screen, b Banner) {
	w := dst.Width()
	h := dst.Height()

	lines := []string{b.Title}
	if b.Subtitle != "" {
		lines = append(lines, b.Subtitle)
	}
	lines = append(lines, b.Hint)

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len(l))
	}
	boxW += 4
	boxH := len(lines)*2 + 1
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)

	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = b.Color
		}
		dst.DrawText(boxX+(boxW-len(l))/2, boxY+1+i*2, l, color)
	}
}
