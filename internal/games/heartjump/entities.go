package heartjump

import "github.com/vovakirdan/heartjump/internal/core"

// Direction is a horizontal facing or movement direction.
type Direction int

const (
	Left  Direction = -1
	Right Direction = 1
)

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return -d
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Platform is a static, immovable collision surface.
type Platform struct {
	box core.Box
}

// NewPlatform creates a platform.
func NewPlatform(x, y, w, h float64) Platform {
	return Platform{box: core.NewBox(x, y, w, h)}
}

// Box returns the platform's bounds.
func (p Platform) Box() core.Box {
	return p.box
}

// HeartBlock is a one-shot collectible. Once collected it stays inactive
// until the session is reset; it is kept in the level so renderers can skip it.
type HeartBlock struct {
	box    core.Box
	active bool
}

// NewHeartBlock creates an active heart block at (x, y).
func NewHeartBlock(x, y float64) HeartBlock {
	return HeartBlock{
		box:    core.NewBox(x, y, BlockSize, BlockSize),
		active: true,
	}
}

// Box returns the block's bounds.
func (b HeartBlock) Box() core.Box {
	return b.box
}

// Active reports whether the block can still be collected.
func (b HeartBlock) Active() bool {
	return b.active
}

// Collect deactivates the block if it is active and overlaps the player.
// Returns true only on the tick the block is collected.
func (b *HeartBlock) Collect(player core.Box) bool {
	if !b.active || !b.box.Overlaps(player) {
		return false
	}
	b.active = false
	return true
}
