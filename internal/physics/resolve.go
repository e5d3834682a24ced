package physics

import "github.com/vovakirdan/tui-platformer/internal/core"

// Side is the side of the moving body that touched an obstacle.
type Side int

const (
	SideNone   Side = iota
	SideLeft        // Moving left into an obstacle
	SideRight       // Moving right into an obstacle
	SideTop         // Moving up, head hit the obstacle's bottom
	SideBottom      // Moving down, feet landed on the obstacle's top
)

// String returns the side name.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return "none"
	}
}

// Contact describes the obstacle a resolution pass clipped against.
type Contact struct {
	Side Side
	With Collider
}

// Hit reports whether the pass found an obstacle.
func (c Contact) Hit() bool {
	return c.Side != SideNone
}

// ResolveX clips the body against the given groups after MoveX.
// The leading edge (right when moving right, left when moving left) is set
// to the obstacle's near edge. Vertical velocity is never touched, and
// horizontal velocity is left to the owner (enemies reverse, players stop
// pushing).
//
// When several obstacles overlap, the one whose near face comes first along
// the motion wins, so no overlap remains on this axis.
func ResolveX(b *Body, idx *Index, tags ...string) Contact {
	if b.VX == 0 {
		return Contact{}
	}
	hits := idx.Overlapping(b.Rect, tags...)
	if len(hits) == 0 {
		return Contact{}
	}

	if b.VX > 0 {
		best := nearest(hits, func(r core.RectF) float64 { return -r.Left() })
		b.Rect.SetRight(best.Bounds().Left())
		return Contact{Side: SideRight, With: best}
	}
	best := nearest(hits, func(r core.RectF) float64 { return r.Right() })
	b.Rect.X = best.Bounds().Right()
	return Contact{Side: SideLeft, With: best}
}

// ResolveY clips the body against the given groups after MoveY.
// Falling bodies land on the obstacle's top and keep VY so the owner can
// decide between stopping and rebounding. Rising bodies are clipped below
// the obstacle and VY is zeroed.
func ResolveY(b *Body, idx *Index, tags ...string) Contact {
	if b.VY == 0 {
		return Contact{}
	}
	hits := idx.Overlapping(b.Rect, tags...)
	if len(hits) == 0 {
		return Contact{}
	}

	if b.VY > 0 {
		best := nearest(hits, func(r core.RectF) float64 { return -r.Top() })
		b.Rect.SetBottom(best.Bounds().Top())
		return Contact{Side: SideBottom, With: best}
	}
	best := nearest(hits, func(r core.RectF) float64 { return r.Bottom() })
	b.Rect.Y = best.Bounds().Bottom()
	b.VY = 0
	return Contact{Side: SideTop, With: best}
}

// Grounded probes one pixel below the body for support in the given groups.
func Grounded(b *Body, idx *Index, tags ...string) bool {
	return idx.Any(b.Rect.Offset(0, 1), tags...)
}

// nearest returns the hit with the greatest score, keeping the earliest on ties.
func nearest(hits []Collider, score func(core.RectF) float64) Collider {
	best := hits[0]
	bestScore := score(best.Bounds())
	for _, h := range hits[1:] {
		if s := score(h.Bounds()); s > bestScore {
			best, bestScore = h, s
		}
	}
	return best
}
