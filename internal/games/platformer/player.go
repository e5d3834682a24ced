package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Player is the user-controlled entity.
type Player struct {
	physics.Body
	State PlayerState

	bouncyAt float64 // now when the last star was picked up
	jumpHeld bool
	intent   physics.Intent
	walk     *Animator
	mask     *physics.Mask
	cfg      *config.PlatformerConfig
}

func newPlayer(x, y float64, cfg *config.PlatformerConfig) *Player {
	w, h := cfg.Player.Width, cfg.Player.Height
	return &Player{
		Body:  physics.Body{Rect: core.NewRectF(x, y, w, h), Dir: physics.Right},
		State: PlayerStanding,
		walk:  NewAnimator(cfg.Player.WalkFrames, cfg.Player.WalkFrameMS),
		mask:  physics.CapsuleMask(int(w), int(h), int(w)/4),
		cfg:   cfg,
	}
}

// BouncyAt returns the time the player last became bouncy.
func (p *Player) BouncyAt() float64 {
	return p.bouncyAt
}

// grounded reports whether the state stands on something.
func (p *Player) grounded() bool {
	return p.State == PlayerStanding || p.State == PlayerWalking
}

// update applies input for the tick: steering, jumps and state changes
// driven by keys. Collision reactions happen in the world.
func (p *Player) update(keys core.InputFrame, now float64) error {
	p.intent = physics.IntentNone
	if keys.Has(core.ActionRight) {
		p.intent = physics.IntentRight
	} else if keys.Has(core.ActionLeft) {
		p.intent = physics.IntentLeft
	}

	target := p.cfg.Physics.WalkSpeed
	if keys.Has(core.ActionRun) {
		target = p.cfg.Physics.RunSpeed
	}

	jump := keys.Has(core.ActionJump)
	jumpEdge := jump && !p.jumpHeld
	p.jumpHeld = jump

	tuning := p.tuning()

	switch p.State {
	case PlayerStanding:
		if p.intent != physics.IntentNone {
			p.State = PlayerWalking
			p.walk.Restart(now)
		}
		p.Steer(p.intent, target, true, tuning)
		if jumpEdge {
			p.jump()
		}
	case PlayerWalking:
		p.walk.Update(now)
		p.Steer(p.intent, target, true, tuning)
		if jumpEdge {
			p.jump()
		}
	case PlayerFreeFall, PlayerBouncy:
		p.Steer(p.intent, target, false, tuning)
	default:
		return invalidState("player", int(p.State))
	}
	return nil
}

func (p *Player) tuning() physics.Tuning {
	return physics.Tuning{
		Smoothing:         p.cfg.Physics.Smoothing,
		Decel:             p.cfg.Physics.Decel,
		StandingThreshold: p.cfg.Physics.StandingThreshold,
	}
}

func (p *Player) jump() {
	p.VY = p.cfg.Physics.JumpVel
	p.State = PlayerFreeFall
}

// land reacts to a contact from above.
func (p *Player) land(now float64) error {
	switch p.State {
	case PlayerFreeFall:
		p.enterWalking(now)
	case PlayerBouncy:
		if now-p.bouncyAt > p.cfg.Physics.BouncyDurationMS {
			p.enterWalking(now)
		} else {
			p.VY = p.cfg.Physics.StartJumpVel
		}
	case PlayerStanding, PlayerWalking:
		p.VY = 0
	default:
		return invalidState("player", int(p.State))
	}
	return nil
}

func (p *Player) enterWalking(now float64) {
	p.State = PlayerWalking
	p.VY = 0
	p.walk.Restart(now)
}

func (p *Player) enterFall() {
	p.State = PlayerFreeFall
	p.VY = 0
}

func (p *Player) enterBouncy(now float64) {
	p.State = PlayerBouncy
	p.bouncyAt = now
}

// stompBounce rebounds off a squashed enemy.
func (p *Player) stompBounce() {
	p.VY = p.cfg.Physics.StompBounceVel
	if p.State != PlayerBouncy {
		p.State = PlayerFreeFall
	}
}

func (p *Player) clampTo(level core.RectF) {
	if p.Rect.Left() < level.Left() {
		p.Rect.X = level.Left()
		p.VX = 0
	} else if p.Rect.Right() > level.Right() {
		p.Rect.SetRight(level.Right())
		p.VX = 0
	}
}

// image selects the sprite for the current state.
func (p *Player) image() Image {
	flip := p.Dir == physics.Left
	switch p.State {
	case PlayerWalking:
		return Image{Sheet: SheetPlayerWalk, Frame: p.walk.Frame(), FlipX: flip}
	case PlayerFreeFall:
		return Image{Sheet: SheetPlayerJump, FlipX: flip}
	case PlayerBouncy:
		return Image{Sheet: SheetPlayerBounce, FlipX: flip}
	default:
		return Image{Sheet: SheetPlayerStand, FlipX: flip}
	}
}
