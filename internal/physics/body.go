// Package physics implements the motion model and collision engine shared by
// every moving entity of the platformer. It knows nothing about players or
// enemies: entities embed a Body and react to the Contacts it reports.
package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Direction is the facing of an entity.
type Direction int

const (
	Right Direction = iota
	Left
)

// String returns the direction name used in level files and logs.
func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

// Sign returns -1 for Left and 1 for Right.
func (d Direction) Sign() float64 {
	if d == Left {
		return -1
	}
	return 1
}

// Opposite returns the reversed direction.
func (d Direction) Opposite() Direction {
	if d == Left {
		return Right
	}
	return Left
}

// Intent is the horizontal movement requested for a tick.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
)

// Tuning holds the constants of the horizontal smoothing law.
type Tuning struct {
	Smoothing         float64 // Fraction of the gap to target speed closed per tick while moving
	Decel             float64 // Fraction of the remaining speed removed per tick while idle on ground
	StandingThreshold float64 // |VX| at or below which a grounded idle body stops
}

// Body is the kinematic state shared by all entities.
type Body struct {
	Rect core.RectF
	VX   float64 // pixels/second
	VY   float64 // pixels/second, positive is down
	Dir  Direction
}

// Steer moves VX toward the target speed with exponential smoothing.
// The approach is asymptotic on purpose; Settle ends the creep on the ground.
func (b *Body) Steer(intent Intent, target float64, grounded bool, t Tuning) {
	switch intent {
	case IntentRight:
		b.Dir = Right
		b.VX += (target - b.VX) * t.Smoothing
	case IntentLeft:
		b.Dir = Left
		b.VX += (-target - b.VX) * t.Smoothing
	default:
		if grounded {
			b.VX += (0 - b.VX) * t.Decel
		}
	}
}

// Settle snaps a slow grounded body to rest. It reports whether VX was
// zeroed, in which case the owner switches to its standing state.
func (b *Body) Settle(t Tuning) bool {
	if math.Abs(b.VX) <= t.StandingThreshold {
		b.VX = 0
		return true
	}
	return false
}

// Fall accumulates gravity into VY. There is no terminal velocity.
func (b *Body) Fall(gravity, dt float64) {
	b.VY += gravity * dt
}

// MoveX integrates horizontal velocity.
func (b *Body) MoveX(dt float64) {
	b.Rect.X += b.VX * dt
}

// MoveY integrates vertical velocity.
func (b *Body) MoveY(dt float64) {
	b.Rect.Y += b.VY * dt
}

// Bounds returns the body's rectangle.
func (b *Body) Bounds() core.RectF {
	return b.Rect
}
