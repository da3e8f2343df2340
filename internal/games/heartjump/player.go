package heartjump

import (
	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// Player is the controlled character.
type Player struct {
	X, Y    float64   // Top-left position
	VX, VY  float64   // Velocity in pixels per tick
	Facing  Direction // Last horizontal input direction
	Jumping bool      // True while airborne (not resting on a platform)

	physics config.HeartJumpPhysics
}

// NewPlayer creates a grounded-state player facing right.
func NewPlayer(x, y float64, physics config.HeartJumpPhysics) *Player {
	return &Player{
		X:       x,
		Y:       y,
		Facing:  Right,
		physics: physics,
	}
}

// Box returns the player's collision bounds.
func (p *Player) Box() core.Box {
	return core.NewBox(p.X, p.Y, PlayerWidth, PlayerHeight)
}

// ApplyInput sets the intended velocity for this tick.
// Left wins when both directions are held. A jump is only accepted while not
// airborne; there is no double jump and no buffering.
func (p *Player) ApplyInput(in core.InputFrame) {
	p.VX = 0
	switch {
	case in.Has(core.ActionLeft):
		p.VX = -p.physics.RunSpeed
		p.Facing = Left
	case in.Has(core.ActionRight):
		p.VX = p.physics.RunSpeed
		p.Facing = Right
	}

	if in.Has(core.ActionJump) && !p.Jumping {
		p.VY = p.physics.JumpImpulse
		p.Jumping = true
	}
}

// Advance integrates one tick of motion and resolves platform contacts.
// Returns false when the player has fallen below the bottom of the world.
func (p *Player) Advance(platforms []Platform) bool {
	// Apply gravity
	p.VY += p.physics.Gravity
	if p.VY > p.physics.MaxFallSpeed {
		p.VY = p.physics.MaxFallSpeed
	}

	// Update position
	p.X += p.VX
	p.Y += p.VY

	// Horizontal world bounds; the top is open
	if p.X < 0 {
		p.X = 0
	} else if p.X+PlayerWidth > WorldWidth {
		p.X = WorldWidth - PlayerWidth
	}

	// Only tops and undersides are solid. Each overlapping platform is applied
	// in order, so the last one wins when several conflict.
	p.Jumping = true
	for _, platform := range platforms {
		box := platform.Box()
		if !p.Box().Overlaps(box) {
			continue
		}
		if p.VY > 0 {
			// Landed on top
			p.Y = box.Y - PlayerHeight
			p.VY = 0
			p.Jumping = false
		} else if p.VY < 0 {
			// Bumped the underside, still airborne
			p.Y = box.Bottom()
			p.VY = 0
		}
	}

	return p.Y <= WorldHeight
}
