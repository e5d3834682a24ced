package config

import (
	_ "embed"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the hardcoded platformer tuning.
// It mirrors defaults/platformer.yaml and is used if the embedded file
// cannot be parsed.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:           1800,
			WalkSpeed:         240,
			RunSpeed:          400,
			JumpVel:           -660,
			StartJumpVel:      -720,
			StompBounceVel:    -420,
			Smoothing:         0.1,
			Decel:             0.075,
			StandingThreshold: 25,
			BouncyDurationMS:  6000,
		},
		Player: PlatformerPlayer{
			Width:       16,
			Height:      32,
			WalkFrameMS: 100,
			WalkFrames:  11,
		},
		Enemies: PlatformerEnemies{
			Kinds: map[string]EnemyKind{
				"slime": {Width: 16, Height: 16, Speed: 60},
				"snail": {Width: 24, Height: 16, Speed: 40},
			},
			FrameMS:      300,
			DeathPopVel:  -480,
			DeathKickVel: 120,
			DeadLingerMS: 500,
		},
		ItemBox: PlatformerItemBox{
			Width:         16,
			Height:        16,
			BumpLaunchVel: -240,
			BumpGravity:   2400,
			HoldMS:        375,
			FrameMS:       125,
		},
		Star: PlatformerStar{
			Width:     16,
			Height:    16,
			LaunchVel: -360,
		},
		Camera: PlatformerCamera{
			Smoothing:    0.1,
			PanStep:      15,
			DeadZoneLow:  1.0 / 3.0,
			DeadZoneHigh: 2.0 / 3.0,
		},
		Render: PlatformerRender{
			CellW: 8,
			CellH: 16,
		},
		Scoring: PlatformerScoring{
			Stomp:  100,
			Star:   1000,
			Finish: 5000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultPlatformerYAML
}
