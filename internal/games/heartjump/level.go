package heartjump

import (
	"fmt"

	"github.com/vovakirdan/heartjump/internal/config"
	"github.com/vovakirdan/heartjump/internal/core"
)

// World dimensions in pixels.
const (
	WorldWidth  = 800
	WorldHeight = 600
)

// Entity sizes in pixels.
const (
	PlayerWidth  = 32
	PlayerHeight = 48
	EnemySize    = 32
	BlockSize    = 32
)

// StartLevel is the level number shown in the HUD. There is a single level.
const StartLevel = 1

// Player spawn point.
const (
	playerStartX = 100
	playerStartY = WorldHeight - 150
)

// buildPlatforms returns the fixed platform layout, ground first.
func buildPlatforms() []Platform {
	return []Platform{
		// Ground
		NewPlatform(0, WorldHeight-60, WorldWidth, 60),

		// Floating platforms
		NewPlatform(200, WorldHeight-200, 150, 16),
		NewPlatform(500, WorldHeight-250, 150, 16),
		NewPlatform(150, WorldHeight-350, 120, 16),
		NewPlatform(550, WorldHeight-350, 120, 16),
		NewPlatform(350, WorldHeight-450, 100, 16),

		// Goal
		NewPlatform(300, WorldHeight-550, 200, 20),
	}
}

// buildBlocks returns the fixed heart block layout, all active.
func buildBlocks() []HeartBlock {
	return []HeartBlock{
		NewHeartBlock(100, WorldHeight-350),
		NewHeartBlock(650, WorldHeight-300),
	}
}

// buildEnemies returns the fixed enemy roster.
func buildEnemies(cfg config.HeartJumpEnemies) []Enemy {
	return []Enemy{
		NewEnemy(300, WorldHeight-200, cfg),
		NewEnemy(500, WorldHeight-250, cfg),
	}
}

// validateLayout checks the fixed layout once at construction.
// A broken layout is a programming error, not a per-tick condition.
func validateLayout(platforms []Platform, blocks []HeartBlock, enemies []Enemy) error {
	if len(platforms) == 0 {
		return fmt.Errorf("heartjump: layout has no platforms")
	}

	boxes := make([]core.Box, 0, len(platforms)+len(blocks)+len(enemies))
	for _, p := range platforms {
		boxes = append(boxes, p.Box())
	}
	for _, b := range blocks {
		boxes = append(boxes, b.Box())
	}
	for _, e := range enemies {
		boxes = append(boxes, e.Box())
	}

	for _, b := range boxes {
		if b.W <= 0 || b.H <= 0 {
			return fmt.Errorf("heartjump: layout box %+v has no area", b)
		}
		if b.X < 0 || b.Right() > WorldWidth {
			return fmt.Errorf("heartjump: layout box %+v is outside the world", b)
		}
	}
	return nil
}
