package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Star is the power-up released by an item box. It pops out of the box top
// and, once revealed, makes the player bouncy on contact.
type Star struct {
	physics.Body
	State StarState

	startBottom float64
	gravity     float64
	mask        *physics.Mask
}

// newStar places a star centered on cx with its bottom at bottom.
func newStar(cx, bottom float64, cfg *config.PlatformerStar, gravity float64) *Star {
	s := &Star{
		Body:        physics.Body{Rect: core.NewRectF(0, 0, cfg.Width, cfg.Height), VY: cfg.LaunchVel},
		State:       StarReveal,
		startBottom: bottom,
		gravity:     gravity,
		mask:        physics.DiamondMask(int(cfg.Width), int(cfg.Height)),
	}
	s.Rect.SetCenterX(cx)
	s.Rect.SetBottom(bottom)
	return s
}

// collectible reports whether the player can pick the star up.
func (s *Star) collectible() bool {
	return s.State == StarRevealed
}

func (s *Star) update(dt float64) error {
	switch s.State {
	case StarReveal:
		s.MoveY(dt)
		s.Fall(s.gravity, dt)
		if s.Rect.Bottom() > s.startBottom {
			s.Rect.SetBottom(s.startBottom)
			s.VY = 0
			s.State = StarRevealed
		}
	case StarRevealed:
	default:
		return invalidState("star", int(s.State))
	}
	return nil
}

func (s *Star) image() Image {
	return Image{Sheet: SheetStar}
}
