package window

import (
	"fmt"
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/vovakirdan/heartjump/internal/core"
	"github.com/vovakirdan/heartjump/internal/games/heartjump"
)

// NES-style palette.
var (
	colorSky      = colornames.Skyblue
	colorBrown    = colornames.Saddlebrown
	colorMortar   = color.RGBA{R: 100, G: 50, A: 255}
	colorRed      = color.RGBA{R: 240, A: 255}
	colorGreen    = color.RGBA{G: 160, A: 255}
	colorPipeLip  = color.RGBA{G: 120, A: 255}
	colorGold     = colornames.Yellow
	colorGoldEdge = color.RGBA{R: 200, G: 150, A: 255}
	colorSkin     = color.RGBA{R: 255, G: 204, B: 102, A: 255}
	colorOveralls = color.RGBA{G: 100, B: 200, A: 255}
	colorBlack    = colornames.Black
	colorWhite    = colornames.White
)

// brickWidth is the minimum platform width drawn as brick rather than pipe.
const brickWidth = 200

type shapeKind int

const (
	shapeRect shapeKind = iota
	shapeRectOutline
	shapeCircle
	shapeLine
)

// shape is one drawing primitive in world pixels.
// Rects use X, Y, W, H. Circles are centered on X, Y with radius R.
// Lines run from X, Y to X2, Y2.
type shape struct {
	kind   shapeKind
	X, Y   float32
	W, H   float32
	R      float32
	X2, Y2 float32
	Stroke float32
	Color  color.Color
}

func rect(x, y, w, h float64, c color.Color) shape {
	return shape{kind: shapeRect, X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Color: c}
}

func outline(x, y, w, h, stroke float64, c color.Color) shape {
	return shape{kind: shapeRectOutline, X: float32(x), Y: float32(y), W: float32(w), H: float32(h), Stroke: float32(stroke), Color: c}
}

func circle(x, y, r float64, c color.Color) shape {
	return shape{kind: shapeCircle, X: float32(x), Y: float32(y), R: float32(r), Color: c}
}

func line(x1, y1, x2, y2, stroke float64, c color.Color) shape {
	return shape{kind: shapeLine, X: float32(x1), Y: float32(y1), X2: float32(x2), Y2: float32(y2), Stroke: float32(stroke), Color: c}
}

// label is a line of text centered on X, Y unless Left is set.
type label struct {
	Text  string
	X, Y  float64
	Scale float64
	Color color.Color
	Left  bool
}

// scene converts a snapshot into primitives, back to front.
func scene(s heartjump.Snapshot) []shape {
	var shapes []shape
	for _, p := range s.Platforms {
		shapes = appendPlatform(shapes, p)
	}
	for _, b := range s.Blocks {
		if b.Active {
			shapes = appendHeartBlock(shapes, b.Box)
		}
	}
	for _, e := range s.Enemies {
		shapes = appendEnemy(shapes, e)
	}
	return appendPlayer(shapes, s.Player)
}

// appendPlatform draws wide platforms as brick and narrow ones as pipes.
func appendPlatform(shapes []shape, b core.Box) []shape {
	if b.W < brickWidth {
		return append(shapes,
			rect(b.X, b.Y, b.W, b.H, colorGreen),
			rect(b.X, b.Y, b.W, 4, colorPipeLip),
		)
	}

	shapes = append(shapes, rect(b.X, b.Y, b.W, b.H, colorBrown))
	for i := 0.0; i < b.W; i += 16 {
		shapes = append(shapes, line(b.X+i, b.Y+8, b.X+i+16, b.Y+8, 1, colorMortar))
	}
	for i := 0.0; i < b.H; i += 8 {
		shapes = append(shapes, line(b.X, b.Y+i, b.Right(), b.Y+i, 1, colorMortar))
	}
	return shapes
}

// appendHeartBlock draws a golden block with a red heart.
func appendHeartBlock(shapes []shape, b core.Box) []shape {
	cx := b.X + b.W/2
	cy := b.Y + b.H/2

	shapes = append(shapes,
		rect(b.X, b.Y, b.W, b.H, colorGold),
		outline(b.X, b.Y, b.W, b.H, 3, colorGoldEdge),
		circle(cx-6, cy-4, 4, colorRed),
		circle(cx+6, cy-4, 4, colorRed),
	)

	// Point of the heart, narrowing one pixel per row
	for i := 0.0; i < 8; i++ {
		half := 8 - i
		shapes = append(shapes, line(cx-half, cy+2+i, cx+half, cy+2+i, 1, colorRed))
	}
	return shapes
}

// appendEnemy draws a mushroom walker from two capsules and one eye.
func appendEnemy(shapes []shape, e heartjump.EnemyView) []shape {
	b := e.Box
	shapes = appendCapsule(shapes, b.X, b.Y+8, b.W, 20, colorBrown)
	shapes = appendCapsule(shapes, b.X+2, b.Y, b.W-4, 16, colorBrown)

	eyeX := b.X + 16
	if e.Facing == heartjump.Right {
		eyeX = b.X + 8
	}
	return append(shapes,
		circle(eyeX, b.Y+6, 3, colorWhite),
		circle(eyeX, b.Y+6, 1, colorBlack),
	)
}

// appendCapsule approximates an ellipse with a rect between two circles.
func appendCapsule(shapes []shape, x, y, w, h float64, c color.Color) []shape {
	r := h / 2
	if w < h {
		return append(shapes, circle(x+w/2, y+r, w/2, c))
	}
	return append(shapes,
		circle(x+r, y+r, r, c),
		circle(x+w-r, y+r, r, c),
		rect(x+r, y, w-h, h, c),
	)
}

// appendPlayer draws the plumber: shirt, head, eyes, mustache, overalls, shoes.
func appendPlayer(shapes []shape, p heartjump.PlayerView) []shape {
	x, y := p.Box.X, p.Box.Y

	eyeOffset := -4.0
	if p.Facing == heartjump.Right {
		eyeOffset = 4
	}

	return append(shapes,
		rect(x+8, y+16, 16, 20, colorRed),
		rect(x+6, y+4, 20, 12, colorSkin),
		circle(x+12+eyeOffset, y+8, 2, colorBlack),
		circle(x+18+eyeOffset, y+8, 2, colorBlack),
		line(x+12, y+12, x+16, y+12, 2, colorBlack),
		rect(x+8, y+36, 16, 12, colorOveralls),
		rect(x+6, y+44, 8, 4, colorBlack),
		rect(x+18, y+44, 8, 4, colorBlack),
	)
}

// labels returns the HUD and, in a terminal state, the end-of-game banner.
func labels(s heartjump.Snapshot) []label {
	out := []label{
		{Text: fmt.Sprintf("Score: %d", s.Score), X: 10, Y: 10, Scale: 2, Color: colorWhite, Left: true},
		{Text: fmt.Sprintf("Level: %d", s.Level), X: heartjump.WorldWidth - 150, Y: 10, Scale: 2, Color: colorWhite, Left: true},
	}

	banner, ok := s.Banner()
	if !ok {
		return out
	}

	cx := float64(heartjump.WorldWidth) / 2
	cy := float64(heartjump.WorldHeight) / 2

	titleColor := color.Color(colorGold)
	if banner.Color == core.ColorBrightRed {
		titleColor = colorRed
	}

	out = append(out, label{Text: banner.Title, X: cx, Y: cy - 40, Scale: 3, Color: titleColor})
	if banner.Subtitle != "" {
		out = append(out,
			label{Text: banner.Subtitle, X: cx, Y: cy + 10, Scale: 2, Color: colorWhite},
			label{Text: banner.Hint, X: cx, Y: cy + 50, Scale: 2, Color: colorWhite},
		)
		return out
	}
	return append(out, label{Text: banner.Hint, X: cx, Y: cy + 40, Scale: 2, Color: colorWhite})
}
