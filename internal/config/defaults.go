package config

import (
	_ "embed"
)

//go:embed defaults/heartjump.yaml
var defaultHeartJumpYAML []byte

//go:embed defaults/launcher.yaml
var defaultLauncherYAML []byte

// DefaultHeartJumpConfig returns the default game tuning.
func DefaultHeartJumpConfig() HeartJumpConfig {
	return HeartJumpConfig{
		Physics: HeartJumpPhysics{
			Gravity:      0.6,
			MaxFallSpeed: 10,
			RunSpeed:     5,
			JumpImpulse:  -15,
			StompBounce:  -10,
		},
		Enemies: HeartJumpEnemies{
			Speed:           2,
			GroundTolerance: 5,
			StompTolerance:  10,
		},
		Scoring: HeartJumpScoring{
			HeartPoints:    1500,
			StompPoints:    100,
			GoalPoints:     1000,
			ScoreThreshold: 3000,
		},
		Goal: HeartJumpGoal{
			MinX:      300,
			MaxX:      500,
			Clearance: 550,
		},
	}
}

// DefaultLauncherConfig returns the default launcher settings.
func DefaultLauncherConfig() LauncherConfig {
	return LauncherConfig{
		DownloadURL: "https://github.com/vovakirdan/heartjump/archive/refs/heads/main.zip",
		WindowTitle: "Super Mario - Vintage Edition",
		WindowScale: 1,
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "heartjump":
		return defaultHeartJumpYAML
	case "launcher":
		return defaultLauncherYAML
	default:
		return nil
	}
}
