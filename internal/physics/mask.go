package physics

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Mask is a per-pixel opacity map used for fine-grained contact tests where
// bounding boxes alone would report false positives.
type Mask struct {
	W, H int
	bits []bool
}

// NewMask builds a w x h mask from an opacity function.
func NewMask(w, h int, opaque func(x, y int) bool) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.bits[y*w+x] = opaque(x, y)
		}
	}
	return m
}

// SolidMask returns a fully opaque mask.
func SolidMask(w, h int) *Mask {
	return NewMask(w, h, func(int, int) bool { return true })
}

// DiamondMask returns a mask opaque inside the diamond inscribed in w x h.
func DiamondMask(w, h int) *Mask {
	cx, cy := float64(w)/2, float64(h)/2
	return NewMask(w, h, func(x, y int) bool {
		dx := math.Abs(float64(x)+0.5-cx) / cx
		dy := math.Abs(float64(y)+0.5-cy) / cy
		return dx+dy <= 1
	})
}

// CapsuleMask returns a mask with rounded corners of radius r.
func CapsuleMask(w, h, r int) *Mask {
	return NewMask(w, h, func(x, y int) bool {
		cx := core.Clamp(x, r, w-1-r)
		cy := core.Clamp(y, r, h-1-r)
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= r*r
	})
}

// At reports whether the pixel at (x, y) is opaque. Outside the mask is clear.
func (m *Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Overlaps reports whether two masks placed at the top-left corners of their
// rects share an opaque pixel. Positions are floored to whole pixels.
func Overlaps(a *Mask, ar core.RectF, b *Mask, br core.RectF) bool {
	ax, ay := int(math.Floor(ar.X)), int(math.Floor(ar.Y))
	bx, by := int(math.Floor(br.X)), int(math.Floor(br.Y))

	x0, x1 := core.Max(ax, bx), core.Min(ax+a.W, bx+b.W)
	y0, y1 := core.Max(ay, by), core.Min(ay+a.H, by+b.H)
	if x0 >= x1 || y0 >= y1 {
		return false
	}

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if a.At(x-ax, y-ay) && b.At(x-bx, y-by) {
				return true
			}
		}
	}
	return false
}
