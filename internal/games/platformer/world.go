package platformer

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

// Collision groups.
const (
	GroupBlockers  = "blockers"
	GroupItemBoxes = "item_boxes"
	GroupStars     = "stars"
	GroupEnemies   = "enemies"
)

// stompTolerance is how far below an enemy's top the player's previous
// bottom may be for a contact to still count as a stomp.
const stompTolerance = 4.0

// indexCellSize is the broadphase grid cell in world pixels.
const indexCellSize = 32

// Blocker is immutable solid level geometry.
type Blocker struct {
	Rect core.RectF
}

// Bounds implements physics.Collider.
func (b *Blocker) Bounds() core.RectF {
	return b.Rect
}

type pendingStar struct {
	cx, bottom float64
}

// World is one running level. It owns every entity and the collision index;
// Update advances everything by one frame in a fixed order.
type World struct {
	cfg    config.PlatformerConfig
	level  levels.Level
	bounds core.RectF

	index    *physics.Index
	blockers []*Blocker
	player   *Player
	enemies  []*Enemy
	dead     []*Enemy
	boxes    []*ItemBox
	stars    []*Star
	pending  []pendingStar
	camera   *Camera

	status     Status
	score      int
	ticks      int
	endedAt    float64
	difficulty *config.DifficultyManager
	log        *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for state transition debug output.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithDifficulty scales enemy speed with elapsed ticks.
func WithDifficulty(d *config.DifficultyManager) Option {
	return func(w *World) {
		w.difficulty = d
	}
}

// NewWorld builds a world for lvl with a viewW x viewH pixel viewport.
func NewWorld(lvl levels.Level, cfg config.PlatformerConfig, viewW, viewH float64, opts ...Option) (*World, error) {
	if err := lvl.Validate(cfg.Enemies.Kinds); err != nil {
		return nil, err
	}

	w := &World{
		cfg:    cfg,
		level:  lvl,
		bounds: lvl.Bounds(),
		log:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.index = physics.NewIndex(w.bounds, indexCellSize)

	for _, r := range lvl.Blockers {
		b := &Blocker{Rect: r}
		w.blockers = append(w.blockers, b)
		w.index.Add(b, GroupBlockers)
	}

	for _, p := range lvl.ItemBoxes {
		b := newItemBox(p.X, p.Y, &w.cfg.ItemBox)
		w.boxes = append(w.boxes, b)
		w.index.Add(b, GroupItemBoxes)
	}

	for _, s := range lvl.Enemies {
		kind := cfg.Enemies.Kinds[s.Kind]
		e := newEnemy(enemySpawn{kind: s.Kind, x: s.X, y: s.Y, dir: s.Dir}, kind, cfg.Enemies.FrameMS)
		w.enemies = append(w.enemies, e)
		w.index.Add(e, GroupEnemies)
	}

	w.player = newPlayer(lvl.SpawnX, lvl.SpawnY, &w.cfg)
	w.camera = NewCamera(viewW, viewH, w.bounds, cfg.Camera)

	w.log.Debug("level started", "level", lvl.ID, "enemies", len(w.enemies), "boxes", len(w.boxes))
	return w, nil
}

// Update advances the world by one frame. keys is the held-key snapshot,
// now the clock in milliseconds and dt the frame time in seconds.
// Once the level has ended Update does nothing.
func (w *World) Update(keys core.InputFrame, now, dt float64) error {
	if w.status != StatusPlaying {
		return nil
	}
	w.ticks++

	prevBottom := w.player.Rect.Bottom()
	if err := w.updatePlayer(keys, now, dt); err != nil {
		return err
	}
	if err := w.updateEnemies(now, dt); err != nil {
		return err
	}
	if err := w.checkEnemyContacts(now, prevBottom); err != nil {
		return err
	}
	if err := w.updateDead(now, dt); err != nil {
		return err
	}
	w.checkStarContacts(now)
	if err := w.updateBoxes(now, dt); err != nil {
		return err
	}
	if err := w.updateStars(dt); err != nil {
		return err
	}
	w.flushPending()
	w.updateStatus(now)
	w.camera.Update(w.player.Rect, w.player.Dir)
	return nil
}

func (w *World) updatePlayer(keys core.InputFrame, now, dt float64) error {
	p := w.player
	if err := p.update(keys, now); err != nil {
		return err
	}

	p.MoveX(dt)
	if c := physics.ResolveX(&p.Body, w.index, GroupBlockers, GroupItemBoxes); c.Hit() {
		p.VX = 0
	}
	p.clampTo(w.bounds)

	p.MoveY(dt)
	landed := false // settling waits a tick so a landing reports WALKING
	c := physics.ResolveY(&p.Body, w.index, GroupBlockers, GroupItemBoxes)
	switch c.Side {
	case physics.SideBottom:
		from := p.State
		if err := p.land(now); err != nil {
			return err
		}
		if from != p.State {
			landed = true
			w.log.Debug("player landed", "state", p.State, "x", p.Rect.X, "y", p.Rect.Y)
		}
	case physics.SideTop:
		if box, ok := c.With.(*ItemBox); ok && box.bump() {
			w.log.Debug("item box bumped", "x", box.Rect.X, "y", box.Rect.Y)
			w.knockRiders(box, now)
		}
	}

	switch p.State {
	case PlayerFreeFall, PlayerBouncy:
		p.Fall(w.cfg.Physics.Gravity, dt)
	case PlayerStanding, PlayerWalking:
		if !physics.Grounded(&p.Body, w.index, GroupBlockers, GroupItemBoxes) {
			p.enterFall()
			w.log.Debug("player falling", "x", p.Rect.X, "y", p.Rect.Y)
		} else if !landed && p.intent == physics.IntentNone && p.Settle(p.tuning()) {
			p.State = PlayerStanding
		}
	default:
		return invalidState("player", int(p.State))
	}
	return nil
}

func (w *World) enemySpeed(e *Enemy) float64 {
	base := w.cfg.Enemies.Kinds[e.Kind].Speed
	if w.difficulty == nil {
		return base
	}
	return w.difficulty.EnemySpeed(base, w.score, w.ticks)
}

func (w *World) updateEnemies(now, dt float64) error {
	live := w.enemies[:0]
	for _, e := range w.enemies {
		e.speed = w.enemySpeed(e)
		if err := e.update(now); err != nil {
			return err
		}

		e.MoveX(dt)
		if physics.ResolveX(&e.Body, w.index, GroupBlockers, GroupItemBoxes).Hit() {
			e.turnAround()
		}

		e.MoveY(dt)
		if physics.ResolveY(&e.Body, w.index, GroupBlockers, GroupItemBoxes).Side == physics.SideBottom &&
			e.State == EnemyFreeFall {
			e.enterWalking(now)
		}

		switch e.State {
		case EnemyFreeFall:
			e.Fall(w.cfg.Physics.Gravity, dt)
		case EnemyWalking:
			if !physics.Grounded(&e.Body, w.index, GroupBlockers, GroupItemBoxes) {
				e.enterFall()
			}
		default:
			return invalidState("enemy", int(e.State))
		}

		if e.Rect.Top() > w.bounds.Bottom() {
			w.index.Remove(e)
			w.log.Debug("enemy fell out", "kind", e.Kind)
			continue
		}
		w.index.Sync(e)
		live = append(live, e)
	}
	clearTail(w.enemies, len(live))
	w.enemies = live
	return nil
}

// checkEnemyContacts resolves player vs enemy overlaps: stomps, knocks from
// a bouncy player, and player death.
func (w *World) checkEnemyContacts(now, prevBottom float64) error {
	p := w.player
	falling := p.VY > 0
	for _, c := range w.index.Overlapping(p.Rect, GroupEnemies) {
		e := c.(*Enemy)
		switch {
		case p.State == PlayerBouncy:
			e.knock(now, p.Rect.CenterX(), w.cfg.Enemies.DeathPopVel, w.cfg.Enemies.DeathKickVel)
			w.log.Debug("enemy knocked", "kind", e.Kind)
		case falling && prevBottom <= e.Rect.Top()+stompTolerance:
			switch e.State {
			case EnemyWalking:
				e.squash(now)
			case EnemyFreeFall:
				e.knock(now, p.Rect.CenterX(), w.cfg.Enemies.DeathPopVel, w.cfg.Enemies.DeathKickVel)
			default:
				return invalidState("enemy", int(e.State))
			}
			p.stompBounce()
			w.log.Debug("enemy stomped", "kind", e.Kind, "state", e.State)
		default:
			w.die(now, "enemy "+e.Kind)
			return nil
		}

		w.kill(e)
	}
	return nil
}

// knockRiders kills the enemies standing on a box that was just bumped.
// The rising box would otherwise push into them from below.
func (w *World) knockRiders(box *ItemBox, now float64) {
	for _, c := range w.index.Overlapping(box.Rect.Offset(0, -1), GroupEnemies) {
		e := c.(*Enemy)
		e.knock(now, box.Rect.CenterX(), w.cfg.Enemies.DeathPopVel, w.cfg.Enemies.DeathKickVel)
		w.log.Debug("enemy bumped from below", "kind", e.Kind)
		w.kill(e)
	}
}

// kill scores a dead enemy and moves it from the collision groups to the
// dead list.
func (w *World) kill(e *Enemy) {
	w.score += w.cfg.Scoring.Stomp
	w.index.Remove(e)
	w.removeEnemy(e)
	w.dead = append(w.dead, e)
	w.log.Debug("enemy killed", "kind", e.Kind, "enemies_left", w.index.Len(GroupEnemies))
}

func (w *World) removeEnemy(e *Enemy) {
	for i, x := range w.enemies {
		if x == e {
			w.enemies = append(w.enemies[:i], w.enemies[i+1:]...)
			return
		}
	}
}

func (w *World) updateDead(now, dt float64) error {
	kept := w.dead[:0]
	for _, e := range w.dead {
		gone := false
		switch e.State {
		case EnemyInAir:
			e.Fall(w.cfg.Physics.Gravity, dt)
			e.MoveX(dt)
			e.MoveY(dt)
			gone = e.Rect.Top() > w.bounds.Bottom()
		case EnemyDeadOnGround:
			gone = now-e.diedAt > w.cfg.Enemies.DeadLingerMS
		case EnemyWalking, EnemyFreeFall:
			return fmt.Errorf("%w: live enemy %s in dead list", ErrInvalidState, e.State)
		default:
			return invalidState("enemy", int(e.State))
		}
		if !gone {
			kept = append(kept, e)
		}
	}
	clearTail(w.dead, len(kept))
	w.dead = kept
	return nil
}

func (w *World) checkStarContacts(now float64) {
	if w.status != StatusPlaying {
		return
	}
	p := w.player
	for _, c := range w.index.Overlapping(p.Rect, GroupStars) {
		s := c.(*Star)
		if !s.collectible() || !physics.Overlaps(p.mask, p.Rect, s.mask, s.Rect) {
			continue
		}
		w.index.Remove(s)
		w.removeStar(s)
		p.enterBouncy(now)
		w.score += w.cfg.Scoring.Star
		w.log.Debug("star collected", "bouncy_at", now)
	}
}

func (w *World) removeStar(s *Star) {
	for i, x := range w.stars {
		if x == s {
			w.stars = append(w.stars[:i], w.stars[i+1:]...)
			return
		}
	}
}

func (w *World) updateBoxes(now, dt float64) error {
	for _, b := range w.boxes {
		moving := b.State == BoxBumped
		opened, err := b.update(now, dt)
		if err != nil {
			return err
		}
		if moving {
			w.index.Sync(b)
		}
		if opened {
			w.pending = append(w.pending, pendingStar{cx: b.Rect.CenterX(), bottom: b.Rect.Top()})
			w.log.Debug("item box opened", "x", b.Rect.X, "y", b.Rect.Y)
		}
	}
	return nil
}

func (w *World) updateStars(dt float64) error {
	for _, s := range w.stars {
		moving := s.State == StarReveal
		if err := s.update(dt); err != nil {
			return err
		}
		if moving {
			w.index.Sync(s)
		}
	}
	return nil
}

// flushPending adds stars queued during this frame once resolution is done.
func (w *World) flushPending() {
	for _, ps := range w.pending {
		s := newStar(ps.cx, ps.bottom, &w.cfg.Star, w.cfg.ItemBox.BumpGravity)
		w.stars = append(w.stars, s)
		w.index.Add(s, GroupStars)
		w.log.Debug("star spawned", "x", s.Rect.X, "y", s.Rect.Y, "stars", w.index.Len(GroupStars))
	}
	w.pending = w.pending[:0]
}

func (w *World) updateStatus(now float64) {
	if w.status != StatusPlaying {
		return
	}
	if w.player.Rect.Top() > w.bounds.Bottom() {
		w.die(now, "fell")
		return
	}
	if w.level.HasFinish() && w.player.Rect.Intersects(w.level.Finish) {
		w.status = StatusFinished
		w.endedAt = now
		w.score += w.cfg.Scoring.Finish
		w.log.Debug("level finished", "level", w.level.ID, "score", w.score, "ms", now)
	}
}

func (w *World) die(now float64, cause string) {
	w.status = StatusDied
	w.endedAt = now
	w.log.Debug("player died", "cause", cause, "score", w.score)
}

func clearTail(s []*Enemy, from int) {
	for i := from; i < len(s); i++ {
		s[i] = nil
	}
}

// Status returns the level outcome so far.
func (w *World) Status() Status {
	return w.status
}

// Score returns the points collected so far.
func (w *World) Score() int {
	return w.score
}

// EndedAt returns the clock time the level ended, or 0 while playing.
func (w *World) EndedAt() float64 {
	return w.endedAt
}

// Viewport returns the camera rectangle in world pixels.
func (w *World) Viewport() core.RectF {
	return w.camera.Viewport()
}

// ResizeViewport changes the camera size.
func (w *World) ResizeViewport(viewW, viewH float64) {
	w.camera.Resize(viewW, viewH)
}

// Player returns the player entity.
func (w *World) Player() *Player {
	return w.player
}

// Enemies returns the live enemies in spawn order.
func (w *World) Enemies() []*Enemy {
	return w.enemies
}

// DeadEnemies returns enemies playing their death animation.
func (w *World) DeadEnemies() []*Enemy {
	return w.dead
}

// ItemBoxes returns the level's item boxes.
func (w *World) ItemBoxes() []*ItemBox {
	return w.boxes
}

// Stars returns the stars currently in the level.
func (w *World) Stars() []*Star {
	return w.stars
}

// Blockers returns the level geometry.
func (w *World) Blockers() []*Blocker {
	return w.blockers
}

// Level returns the level being played.
func (w *World) Level() levels.Level {
	return w.level
}

// Config returns the tuning the world runs with.
func (w *World) Config() config.PlatformerConfig {
	return w.cfg
}
