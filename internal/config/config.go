// Package config provides YAML-based configuration loading for the game
// tuning and the launcher, plus change notifications for hot reload.
package config

import "fmt"

// HeartJumpConfig contains the tuning of the platformer simulation.
// All values are per tick and assume the fixed 60 Hz update rate.
type HeartJumpConfig struct {
	Physics HeartJumpPhysics `yaml:"physics"`
	Enemies HeartJumpEnemies `yaml:"enemies"`
	Scoring HeartJumpScoring `yaml:"scoring"`
	Goal    HeartJumpGoal    `yaml:"goal"`
}

// HeartJumpPhysics defines player kinematics.
type HeartJumpPhysics struct {
	Gravity      float64 `yaml:"gravity"`        // Added to vy every tick
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // Terminal velocity cap for vy
	RunSpeed     float64 `yaml:"run_speed"`      // |vx| while left/right is held
	JumpImpulse  float64 `yaml:"jump_impulse"`   // vy set on jump (negative = up)
	StompBounce  float64 `yaml:"stomp_bounce"`   // vy set after defeating an enemy
}

// HeartJumpEnemies defines patrol AI and stomp parameters.
type HeartJumpEnemies struct {
	Speed           float64 `yaml:"speed"`            // Horizontal pixels per tick
	GroundTolerance float64 `yaml:"ground_tolerance"` // Max |enemy bottom - platform top| to count as grounded
	StompTolerance  float64 `yaml:"stomp_tolerance"`  // Player top must be above enemy.y + this to stomp
}

// HeartJumpScoring defines points and the score threshold ending.
type HeartJumpScoring struct {
	HeartPoints    int `yaml:"heart_points"`
	StompPoints    int `yaml:"stomp_points"`
	GoalPoints     int `yaml:"goal_points"`
	ScoreThreshold int `yaml:"score_threshold"`
}

// HeartJumpGoal defines the winning region at the top of the level.
type HeartJumpGoal struct {
	MinX      float64 `yaml:"min_x"`     // Goal band left edge (inclusive)
	MaxX      float64 `yaml:"max_x"`     // Goal band right edge (exclusive)
	Clearance float64 `yaml:"clearance"` // Player y must be < world height - clearance
}

// Validate checks that the tuning describes a playable game.
func (c HeartJumpConfig) Validate() error {
	switch {
	case c.Physics.Gravity <= 0:
		return fmt.Errorf("config: physics.gravity must be positive, got %v", c.Physics.Gravity)
	case c.Physics.MaxFallSpeed <= 0:
		return fmt.Errorf("config: physics.max_fall_speed must be positive, got %v", c.Physics.MaxFallSpeed)
	case c.Physics.RunSpeed < 0:
		return fmt.Errorf("config: physics.run_speed must not be negative, got %v", c.Physics.RunSpeed)
	case c.Physics.JumpImpulse >= 0:
		return fmt.Errorf("config: physics.jump_impulse must be negative (upward), got %v", c.Physics.JumpImpulse)
	case c.Physics.StompBounce > 0:
		return fmt.Errorf("config: physics.stomp_bounce must not be positive, got %v", c.Physics.StompBounce)
	case c.Enemies.Speed < 0:
		return fmt.Errorf("config: enemies.speed must not be negative, got %v", c.Enemies.Speed)
	case c.Enemies.GroundTolerance < 0 || c.Enemies.StompTolerance < 0:
		return fmt.Errorf("config: enemy tolerances must not be negative")
	case c.Scoring.HeartPoints < 0 || c.Scoring.StompPoints < 0 || c.Scoring.GoalPoints < 0:
		return fmt.Errorf("config: scoring points must not be negative")
	case c.Scoring.ScoreThreshold <= 0:
		return fmt.Errorf("config: scoring.score_threshold must be positive, got %d", c.Scoring.ScoreThreshold)
	case c.Goal.MinX >= c.Goal.MaxX:
		return fmt.Errorf("config: goal.min_x (%v) must be less than goal.max_x (%v)", c.Goal.MinX, c.Goal.MaxX)
	}
	return nil
}

// LauncherConfig contains settings for the process wrapper and native window.
type LauncherConfig struct {
	DownloadURL string  `yaml:"download_url"` // Shown when no display is available
	WindowTitle string  `yaml:"window_title"`
	WindowScale float64 `yaml:"window_scale"` // Window size multiplier over 800x600
}

// Validate checks the launcher settings.
func (c LauncherConfig) Validate() error {
	if c.DownloadURL == "" {
		return fmt.Errorf("config: download_url must be set")
	}
	if c.WindowScale <= 0 {
		return fmt.Errorf("config: window_scale must be positive, got %v", c.WindowScale)
	}
	return nil
}
