package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// ItemBox is a solid block that releases one Star when bumped from below.
type ItemBox struct {
	physics.Body
	State BoxState

	startBottom float64
	anim        *Animator
	cfg         *config.PlatformerItemBox
}

func newItemBox(x, y float64, cfg *config.PlatformerItemBox) *ItemBox {
	b := &ItemBox{
		Body:  physics.Body{Rect: core.NewRectF(x, y, cfg.Width, cfg.Height)},
		State: BoxNormal,
		anim:  NewPingPong(3, cfg.HoldMS, cfg.FrameMS),
		cfg:   cfg,
	}
	b.startBottom = b.Rect.Bottom()
	return b
}

// bump starts the bump animation. Only a NORMAL box reacts; it reports
// whether the bump started.
func (b *ItemBox) bump() bool {
	if b.State != BoxNormal {
		return false
	}
	b.State = BoxBumped
	b.VY = b.cfg.BumpLaunchVel
	return true
}

// update advances the box. opened is true on the tick the box settles back
// and becomes OPENED.
func (b *ItemBox) update(now, dt float64) (opened bool, err error) {
	switch b.State {
	case BoxNormal:
		b.anim.Update(now)
	case BoxBumped:
		b.MoveY(dt)
		b.Fall(b.cfg.BumpGravity, dt)
		if b.Rect.Bottom() > b.startBottom {
			b.Rect.SetBottom(b.startBottom)
			b.VY = 0
			b.State = BoxOpened
			return true, nil
		}
	case BoxOpened:
	default:
		return false, invalidState("item box", int(b.State))
	}
	return false, nil
}

func (b *ItemBox) image() Image {
	if b.State == BoxOpened {
		return Image{Sheet: SheetBoxUsed}
	}
	return Image{Sheet: SheetBox, Frame: b.anim.Frame()}
}
