package config

import "math"

// DifficultyManager ramps enemy patrol speed as a level run goes on.
// The ramp runs from the initial level to 1.0, driven by score or by
// elapsed ticks.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a manager for one level run.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0, 1),
	}
}

// SetInitialLevel overrides the starting point of the ramp, clamped to [0, 1].
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0, 1)
}

// IsEnabled reports whether the ramp moves at all.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// progress is how far along the ramp a run is, in [0, 1].
func (d *DifficultyManager) progress(score, ticks int) float64 {
	maxAt := math.Max(float64(d.cfg.Progression.MaxAt), 1)
	switch d.cfg.Progression.Type {
	case "score":
		return clampF(float64(score)/maxAt, 0, 1)
	case "time":
		return clampF(float64(ticks)/maxAt, 0, 1)
	}
	return 0
}

// Level returns the current difficulty in [initial, 1].
func (d *DifficultyManager) Level(score, ticks int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}
	return d.initialLevel + d.progress(score, ticks)*(1-d.initialLevel)
}

// EnemySpeed scales an enemy kind's patrol speed. At full difficulty it
// is base * (1 + speed_multiplier).
func (d *DifficultyManager) EnemySpeed(base float64, score, ticks int) float64 {
	return base * (1 + d.Level(score, ticks)*d.cfg.Scaling.SpeedMultiplier)
}

func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
