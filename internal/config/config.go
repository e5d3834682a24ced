// Package config provides YAML-based tuning loading and difficulty
// management for the platformer.
package config

// PlatformerConfig contains all tunable values of the platformer simulation.
// Distances are world pixels, velocities pixels/second, accelerations
// pixels/second², durations milliseconds.
type PlatformerConfig struct {
	Physics    PlatformerPhysics `yaml:"physics"`
	Player     PlatformerPlayer  `yaml:"player"`
	Enemies    PlatformerEnemies `yaml:"enemies"`
	ItemBox    PlatformerItemBox `yaml:"item_box"`
	Star       PlatformerStar    `yaml:"star"`
	Camera     PlatformerCamera  `yaml:"camera"`
	Render     PlatformerRender  `yaml:"render"`
	Scoring    PlatformerScoring `yaml:"scoring"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// PlatformerPhysics defines the motion model constants.
type PlatformerPhysics struct {
	Gravity           float64 `yaml:"gravity"`
	WalkSpeed         float64 `yaml:"walk_speed"`
	RunSpeed          float64 `yaml:"run_speed"`
	JumpVel           float64 `yaml:"jump_vel"`
	StartJumpVel      float64 `yaml:"start_jump_vel"` // Re-bounce velocity while bouncy
	StompBounceVel    float64 `yaml:"stomp_bounce_vel"`
	Smoothing         float64 `yaml:"smoothing"`
	Decel             float64 `yaml:"decel"`
	StandingThreshold float64 `yaml:"standing_threshold"`
	BouncyDurationMS  float64 `yaml:"bouncy_duration_ms"`
}

// PlatformerPlayer defines the player's size and animation.
type PlatformerPlayer struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	WalkFrameMS float64 `yaml:"walk_frame_ms"`
	WalkFrames  int     `yaml:"walk_frames"`
}

// EnemyKind defines one enemy type referenced by name from level files.
type EnemyKind struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
}

// PlatformerEnemies defines enemy kinds and death behavior.
type PlatformerEnemies struct {
	Kinds        map[string]EnemyKind `yaml:"kinds"`
	FrameMS      float64              `yaml:"frame_ms"`
	DeathPopVel  float64              `yaml:"death_pop_vel"`
	DeathKickVel float64              `yaml:"death_kick_vel"`
	DeadLingerMS float64              `yaml:"dead_linger_ms"`
}

// PlatformerItemBox defines item box size, idle animation and bump.
type PlatformerItemBox struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BumpLaunchVel float64 `yaml:"bump_launch_vel"`
	BumpGravity   float64 `yaml:"bump_gravity"`
	HoldMS        float64 `yaml:"hold_ms"`  // Pause on the first idle frame
	FrameMS       float64 `yaml:"frame_ms"` // Every other idle frame
}

// PlatformerStar defines the power-up revealed by an item box.
type PlatformerStar struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	LaunchVel float64 `yaml:"launch_vel"`
}

// PlatformerCamera defines viewport tracking.
type PlatformerCamera struct {
	Smoothing    float64 `yaml:"smoothing"`
	PanStep      float64 `yaml:"pan_step"`
	DeadZoneLow  float64 `yaml:"dead_zone_low"`  // Fraction of viewport width
	DeadZoneHigh float64 `yaml:"dead_zone_high"` // Fraction of viewport width
}

// PlatformerRender defines how many world pixels one terminal cell covers.
type PlatformerRender struct {
	CellW int `yaml:"cell_w"`
	CellH int `yaml:"cell_h"`
}

// PlatformerScoring defines points awarded for events.
type PlatformerScoring struct {
	Stomp  int `yaml:"stomp"`
	Star   int `yaml:"star"`
	Finish int `yaml:"finish"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
