package platformer

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

func testCamera() *Camera {
	cfg := config.DefaultPlatformerConfig().Camera
	return NewCamera(300, 200, core.NewRectF(0, 0, 1000, 600), cfg)
}

func TestCameraStartsOnLevelBottom(t *testing.T) {
	c := testCamera()
	vp := c.Viewport()
	if vp.X != 0 || vp.Y != 400 {
		t.Errorf("viewport origin = (%v, %v), expected (0, 400)", vp.X, vp.Y)
	}
	if vp.W != 300 || vp.H != 200 {
		t.Errorf("viewport size = %vx%v, expected 300x200", vp.W, vp.H)
	}
}

func TestCameraTracking(t *testing.T) {
	c := testCamera()

	// Centered at (250, 400), beyond the right dead zone.
	target := core.NewRectF(242, 384, 16, 32)
	c.Update(target, physics.Right)
	vp := c.Viewport()
	if math.Abs(vp.Y-390) > 1e-9 {
		t.Errorf("Y = %v, expected 390", vp.Y)
	}
	if vp.X != 15 {
		t.Errorf("X = %v, expected 15", vp.X)
	}

	// Inside the middle third: no horizontal pan.
	target = core.NewRectF(142, 384, 16, 32)
	c.Update(target, physics.Right)
	if vp := c.Viewport(); vp.X != 15 {
		t.Errorf("X in dead zone = %v, expected 15", vp.X)
	}

	// Facing left near the left edge pans back and clamps at 0.
	target = core.NewRectF(42, 384, 16, 32)
	c.Update(target, physics.Left)
	if vp := c.Viewport(); vp.X != 0 {
		t.Errorf("X after left pan = %v, expected 0", vp.X)
	}
	c.Update(target, physics.Left)
	if vp := c.Viewport(); vp.X != 0 {
		t.Errorf("X after clamped pan = %v, expected 0", vp.X)
	}
}

func TestCameraPanNeedsFacing(t *testing.T) {
	c := testCamera()

	// Beyond the right dead zone but facing left.
	target := core.NewRectF(242, 484, 16, 32)
	c.Update(target, physics.Left)
	if vp := c.Viewport(); vp.X != 0 {
		t.Errorf("X = %v, expected 0", vp.X)
	}
}

func TestCameraClampsToLevel(t *testing.T) {
	c := testCamera()
	target := core.NewRectF(990, 590, 8, 8)
	for i := 0; i < 200; i++ {
		c.Update(target, physics.Right)
	}
	vp := c.Viewport()
	if vp.Right() != 1000 {
		t.Errorf("right = %v, expected 1000", vp.Right())
	}
	if vp.Bottom() != 600 {
		t.Errorf("bottom = %v, expected 600", vp.Bottom())
	}

	target = core.NewRectF(0, -500, 8, 8)
	for i := 0; i < 200; i++ {
		c.Update(target, physics.Left)
	}
	vp = c.Viewport()
	if vp.X != 0 || vp.Y != 0 {
		t.Errorf("origin = (%v, %v), expected (0, 0)", vp.X, vp.Y)
	}
}

func TestCameraLargerThanLevel(t *testing.T) {
	cfg := config.DefaultPlatformerConfig().Camera
	c := NewCamera(800, 600, core.NewRectF(0, 0, 400, 300), cfg)
	c.Update(core.NewRectF(350, 250, 16, 32), physics.Right)
	if vp := c.Viewport(); vp.X != 0 || vp.Y != 0 {
		t.Errorf("origin = (%v, %v), expected (0, 0)", vp.X, vp.Y)
	}
}

func TestCameraResize(t *testing.T) {
	c := testCamera()
	c.Resize(400, 100)
	vp := c.Viewport()
	if vp.W != 400 || vp.H != 100 {
		t.Errorf("size = %vx%v, expected 400x100", vp.W, vp.H)
	}
	if vp.Bottom() != 600 {
		t.Errorf("bottom = %v, expected 600", vp.Bottom())
	}
}
