package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Enemy is a patrolling hazard. Live enemies walk until they hit a wall and
// turn around; dead ones only animate until they are removed.
type Enemy struct {
	physics.Body
	State EnemyState
	Kind  string

	speed  float64 // current patrol speed, refreshed by the world each tick
	diedAt float64
	anim   *Animator
}

func newEnemy(spawn enemySpawn, kind config.EnemyKind, frameMS float64) *Enemy {
	return &Enemy{
		Body: physics.Body{
			Rect: core.NewRectF(spawn.x, spawn.y, kind.Width, kind.Height),
			Dir:  spawn.dir,
		},
		State: EnemyFreeFall,
		Kind:  spawn.kind,
		speed: kind.Speed,
		anim:  NewAnimator(2, frameMS),
	}
}

type enemySpawn struct {
	kind string
	x, y float64
	dir  physics.Direction
}

// update runs the state's per-tick behavior. Motion and collisions are
// applied by the world.
func (e *Enemy) update(now float64) error {
	switch e.State {
	case EnemyWalking:
		e.VX = e.Dir.Sign() * e.speed
		e.anim.Update(now)
	case EnemyFreeFall, EnemyInAir, EnemyDeadOnGround:
	default:
		return invalidState("enemy", int(e.State))
	}
	return nil
}

func (e *Enemy) enterWalking(now float64) {
	e.State = EnemyWalking
	e.VY = 0
	e.VX = e.Dir.Sign() * e.speed
	e.anim.Restart(now)
}

func (e *Enemy) enterFall() {
	e.State = EnemyFreeFall
	e.VY = 0
}

// turnAround reverses direction after a wall contact.
func (e *Enemy) turnAround() {
	e.Dir = e.Dir.Opposite()
	e.VX = -e.VX
}

// squash kills the enemy in place.
func (e *Enemy) squash(now float64) {
	e.State = EnemyDeadOnGround
	e.VX, e.VY = 0, 0
	e.diedAt = now
}

// knock kills the enemy and pops it into the air away from fromX.
func (e *Enemy) knock(now, fromX, popVel, kickVel float64) {
	e.State = EnemyInAir
	e.VY = popVel
	if e.Rect.CenterX() < fromX {
		e.VX = -kickVel
	} else {
		e.VX = kickVel
	}
	e.diedAt = now
}

func (e *Enemy) image() Image {
	flip := e.Dir == physics.Right
	switch e.State {
	case EnemyDeadOnGround:
		return Image{Sheet: e.Kind + SheetDeadSuffix, FlipX: flip}
	case EnemyInAir:
		return Image{Sheet: e.Kind, FlipX: flip, FlipY: true}
	default:
		return Image{Sheet: e.Kind, Frame: e.anim.Frame(), FlipX: flip}
	}
}
