package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Camera keeps a fixed-size viewport on the player inside the level.
// Vertical tracking is smoothed; horizontal tracking pans in fixed steps
// once the player leaves the middle third in the direction it faces.
type Camera struct {
	vp    core.RectF
	level core.RectF
	cfg   config.PlatformerCamera
}

// NewCamera creates a w x h viewport resting on the level bottom.
func NewCamera(w, h float64, level core.RectF, cfg config.PlatformerCamera) *Camera {
	c := &Camera{level: level, cfg: cfg}
	c.vp = core.NewRectF(level.Left(), level.Bottom()-h, w, h).ClampInto(level)
	return c
}

// Update moves the viewport toward the target.
func (c *Camera) Update(target core.RectF, dir physics.Direction) {
	c.vp.Y -= (c.vp.CenterY() - target.CenterY()) * c.cfg.Smoothing

	cx := target.CenterX()
	switch {
	case dir == physics.Right && cx > c.vp.X+c.vp.W*c.cfg.DeadZoneHigh:
		c.vp.X += c.cfg.PanStep
	case dir == physics.Left && cx < c.vp.X+c.vp.W*c.cfg.DeadZoneLow:
		c.vp.X -= c.cfg.PanStep
	}

	c.vp = c.vp.ClampInto(c.level)
}

// Resize changes the viewport size, keeping its bottom-left corner.
func (c *Camera) Resize(w, h float64) {
	bottom := c.vp.Bottom()
	c.vp.W, c.vp.H = w, h
	c.vp.SetBottom(bottom)
	c.vp = c.vp.ClampInto(c.level)
}

// Viewport returns the visible world rectangle.
func (c *Camera) Viewport() core.RectF {
	return c.vp
}
