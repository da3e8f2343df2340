package heartjump

import (
	"math"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// Enemy is a horizontally patrolling walker.
type Enemy struct {
	X, Y   float64
	Facing Direction

	speed           float64
	groundTolerance float64
}

// NewEnemy creates an enemy walking left.
func NewEnemy(x, y float64, cfg config.HeartJumpEnemies) Enemy {
	return Enemy{
		X:               x,
		Y:               y,
		Facing:          Left,
		speed:           cfg.Speed,
		groundTolerance: cfg.GroundTolerance,
	}
}

// Box returns the enemy's collision bounds.
func (e *Enemy) Box() core.Box {
	return core.NewBox(e.X, e.Y, EnemySize, EnemySize)
}

// Advance moves the enemy one tick and turns it around for the next tick when
// it has crossed a screen edge or has no ground-adjacent platform under it.
// Ground adjacency is approximate: any horizontally overlapping platform whose
// top is within the tolerance of the enemy's bottom counts.
func (e *Enemy) Advance(platforms []Platform) {
	e.X += e.speed * float64(e.Facing)

	if e.X < 0 || e.X+EnemySize > WorldWidth || !e.grounded(platforms) {
		e.Facing = e.Facing.Reverse()
	}
}

// grounded reports whether a platform is close enough under the enemy's feet.
func (e *Enemy) grounded(platforms []Platform) bool {
	bottom := e.Y + EnemySize
	for _, platform := range platforms {
		box := platform.Box()
		if e.X+EnemySize > box.X &&
			e.X < box.Right() &&
			math.Abs(bottom-box.Y) < e.groundTolerance {
			return true
		}
	}
	return false
}
