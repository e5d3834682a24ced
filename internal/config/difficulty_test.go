package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	tests := []struct {
		ticks    int
		expected float64
	}{
		{0, 0.2},
		{50, 0.6},
		{100, 1.0},
		{1000, 1.0},
	}
	for _, tc := range tests {
		if got := d.Level(0, tc.ticks); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(ticks=%d) = %v, expected %v", tc.ticks, got, tc.expected)
		}
	}

	if got := d.EnemySpeed(60, 0, 100); math.Abs(got-120) > 1e-9 {
		t.Errorf("EnemySpeed at max difficulty = %v, expected 120", got)
	}
}

func TestDifficultyLevelScore(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
		Scaling:     ScalingConfig{SpeedMultiplier: 0.5},
	})

	if got := d.Level(500, 99999); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level(score=500) = %v, expected 0.5", got)
	}
	if got := d.EnemySpeed(40, 1000, 0); math.Abs(got-60) > 1e-9 {
		t.Errorf("EnemySpeed(score=1000) = %v, expected 60", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:      ScalingConfig{SpeedMultiplier: 1.0},
	})

	if d.IsEnabled() {
		t.Error("manager should be disabled")
	}
	if got := d.Level(0, 1000); got != 0.5 {
		t.Errorf("disabled Level = %v, expected initial 0.5", got)
	}

	d.SetInitialLevel(3)
	if got := d.Level(0, 0); got != 1.0 {
		t.Errorf("SetInitialLevel should clamp to 1.0, got %v", got)
	}
}

func TestDifficultyUnknownProgression(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.3,
		Progression:  ProgressionConfig{Type: "stomps", MaxAt: 10},
	})
	if got := d.Level(100, 100); got != 0.3 {
		t.Errorf("unknown progression Level = %v, expected 0.3", got)
	}
}
