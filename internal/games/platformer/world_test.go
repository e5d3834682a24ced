package platformer

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/physics"
)

const testDt = 1.0 / 60

func testConfig() config.PlatformerConfig {
	cfg := config.DefaultPlatformerConfig()
	cfg.Enemies.Kinds["rock"] = config.EnemyKind{Width: 16, Height: 16, Speed: 0}
	return cfg
}

// flatLevel is a 640x320 level with a 32px floor; the player stands on it.
func flatLevel() levels.Level {
	return levels.Level{
		ID:       "flat",
		Name:     "Flat",
		Width:    640,
		Height:   320,
		SpawnX:   100,
		SpawnY:   256,
		Blockers: []core.RectF{core.NewRectF(0, 288, 640, 32)},
	}
}

type harness struct {
	t    *testing.T
	w    *World
	tick int
	dt   float64
}

func newHarness(t *testing.T, lvl levels.Level) *harness {
	t.Helper()
	w, err := NewWorld(lvl, testConfig(), 320, 240)
	if err != nil {
		t.Fatalf("NewWorld failed: %v", err)
	}
	return &harness{t: t, w: w, dt: testDt}
}

func (h *harness) now() float64 {
	return float64(h.tick) * h.dt * 1000
}

func (h *harness) step(actions ...core.Action) {
	h.t.Helper()
	if err := h.w.Update(core.InputOf(actions...), h.now(), h.dt); err != nil {
		h.t.Fatalf("Update at tick %d: %v", h.tick, err)
	}
	h.tick++
}

func TestIdlePlayerStaysStanding(t *testing.T) {
	h := newHarness(t, flatLevel())
	h.dt = 0.016
	p := h.w.Player()
	start := p.Rect

	for i := 0; i < 10; i++ {
		h.step()
		if p.State != PlayerStanding {
			t.Fatalf("tick %d: state = %v, expected standing", i, p.State)
		}
		if p.VX != 0 {
			t.Fatalf("tick %d: VX = %v, expected 0", i, p.VX)
		}
		if p.Rect != start {
			t.Fatalf("tick %d: rect = %v, expected %v", i, p.Rect, start)
		}
	}
}

func TestGroundProbeIsIdempotent(t *testing.T) {
	h := newHarness(t, flatLevel())
	p := h.w.Player()

	for i := 0; i < 5; i++ {
		before := p.Rect
		for j := 0; j < 3; j++ {
			if !physics.Grounded(&p.Body, h.w.index, GroupBlockers, GroupItemBoxes) {
				t.Fatalf("tick %d probe %d: not grounded", i, j)
			}
		}
		if p.Rect != before {
			t.Fatalf("probe moved the player: %v -> %v", before, p.Rect)
		}
		h.step()
		if p.State != PlayerStanding {
			t.Fatalf("tick %d: state = %v, expected standing", i, p.State)
		}
	}
}

func TestFreeFallAndLanding(t *testing.T) {
	lvl := flatLevel()
	lvl.SpawnY = 100
	h := newHarness(t, lvl)
	p := h.w.Player()

	h.step()
	if p.State != PlayerFreeFall {
		t.Fatalf("state after first tick = %v, expected free_fall", p.State)
	}

	gravityStep := testConfig().Physics.Gravity * testDt
	for i := 0; i < 200 && p.State == PlayerFreeFall; i++ {
		prevVY, prevY := p.VY, p.Rect.Y
		h.step()
		if p.State != PlayerFreeFall {
			break
		}
		if math.Abs(p.VY-(prevVY+gravityStep)) > 1e-9 {
			t.Fatalf("tick %d: VY = %v, expected %v", i, p.VY, prevVY+gravityStep)
		}
		if p.VY <= prevVY || p.Rect.Y < prevY {
			t.Fatalf("tick %d: fall not monotonic (VY %v -> %v, Y %v -> %v)", i, prevVY, p.VY, prevY, p.Rect.Y)
		}
	}

	if p.State != PlayerWalking {
		t.Fatalf("state after landing = %v, expected walking", p.State)
	}
	if p.Rect.Bottom() != 288 {
		t.Errorf("bottom after landing = %v, expected 288", p.Rect.Bottom())
	}
	if p.VY != 0 {
		t.Errorf("VY after landing = %v, expected 0", p.VY)
	}

	h.step()
	if p.State != PlayerStanding {
		t.Errorf("state after settling = %v, expected standing", p.State)
	}
}

func TestLandingWithinOneTick(t *testing.T) {
	h := newHarness(t, flatLevel())
	p := h.w.Player()

	// Directly above the floor, closer than one tick's displacement.
	p.State = PlayerFreeFall
	p.VY = 100
	p.Rect.SetBottom(287)

	h.step()
	if p.State != PlayerWalking {
		t.Fatalf("state = %v, expected walking", p.State)
	}
	if p.Rect.Bottom() != 288 {
		t.Errorf("bottom = %v, expected 288", p.Rect.Bottom())
	}
	if p.VY != 0 {
		t.Errorf("VY = %v, expected 0", p.VY)
	}
}

func TestWalkAccelerationIsSmoothed(t *testing.T) {
	lvl := flatLevel()
	lvl.Width = 4000
	lvl.Blockers = []core.RectF{core.NewRectF(0, 288, 4000, 32)}
	h := newHarness(t, lvl)
	p := h.w.Player()
	cfg := testConfig()

	h.step(core.ActionRight)
	if p.State != PlayerWalking {
		t.Fatalf("state = %v, expected walking", p.State)
	}
	if want := cfg.Physics.WalkSpeed * cfg.Physics.Smoothing; math.Abs(p.VX-want) > 1e-9 {
		t.Errorf("VX after first tick = %v, expected %v", p.VX, want)
	}

	for i := 0; i < 120; i++ {
		h.step(core.ActionRight, core.ActionRun)
	}
	if math.Abs(p.VX-cfg.Physics.RunSpeed) > 1 {
		t.Errorf("VX after running = %v, expected about %v", p.VX, cfg.Physics.RunSpeed)
	}

	for i := 0; i < 200 && p.State != PlayerStanding; i++ {
		h.step()
	}
	if p.State != PlayerStanding || p.VX != 0 {
		t.Errorf("after release: state %v VX %v, expected standing at rest", p.State, p.VX)
	}
}

func TestJumpNeedsFreshPress(t *testing.T) {
	h := newHarness(t, flatLevel())
	p := h.w.Player()

	h.step(core.ActionJump)
	if p.State != PlayerFreeFall || p.VY >= 0 {
		t.Fatalf("after jump: state %v VY %v", p.State, p.VY)
	}

	// Holding jump through the landing must not jump again.
	for i := 0; i < 120; i++ {
		h.step(core.ActionJump)
	}
	if p.State == PlayerFreeFall {
		t.Errorf("held jump re-triggered: state %v", p.State)
	}
}

func TestItemBoxBumpSpawnsOneStar(t *testing.T) {
	lvl := flatLevel()
	lvl.ItemBoxes = []core.RectF{core.NewRectF(100, 200, 0, 0)}
	h := newHarness(t, lvl)
	box := h.w.ItemBoxes()[0]

	h.step(core.ActionJump)

	bumped := false
	spawned := 0
	for i := 0; i < 90; i++ {
		h.step()
		if box.State == BoxBumped {
			bumped = true
		}
		if n := len(h.w.Stars()); n > spawned {
			spawned = n
			s := h.w.Stars()[n-1]
			if box.State != BoxOpened {
				t.Errorf("star spawned while box is %v", box.State)
			}
			if s.Rect.CenterX() != box.Rect.CenterX() || s.Rect.Bottom() != box.Rect.Top() {
				t.Errorf("star at (%v, bottom %v), expected (%v, bottom %v)",
					s.Rect.CenterX(), s.Rect.Bottom(), box.Rect.CenterX(), box.Rect.Top())
			}
		}
	}

	if !bumped {
		t.Fatal("box never entered bumped")
	}
	if box.State != BoxOpened {
		t.Fatalf("box state = %v, expected opened", box.State)
	}
	if box.Rect.Bottom() != 216 {
		t.Errorf("box bottom = %v, expected back at 216", box.Rect.Bottom())
	}
	if spawned != 1 {
		t.Fatalf("stars spawned = %d, expected 1", spawned)
	}
	if s := h.w.Stars()[0]; s.State != StarRevealed || s.Rect.Bottom() != 200 {
		t.Errorf("star state %v bottom %v, expected revealed at 200", s.State, s.Rect.Bottom())
	}

	// An opened box ignores further bumps.
	h.step(core.ActionJump)
	for i := 0; i < 90; i++ {
		h.step()
	}
	if len(h.w.Stars()) != 1 {
		t.Errorf("stars after second bump = %d, expected 1", len(h.w.Stars()))
	}
}

func TestStarPickupMakesPlayerBouncy(t *testing.T) {
	h := newHarness(t, flatLevel())
	p := h.w.Player()
	cfg := testConfig()

	h.w.pending = append(h.w.pending, pendingStar{cx: 140, bottom: 288})
	h.w.flushPending()
	star := h.w.Stars()[0]

	for i := 0; i < 40; i++ {
		h.step()
	}
	if star.State != StarRevealed {
		t.Fatalf("star state = %v, expected revealed", star.State)
	}

	pickedAt := -1.0
	for i := 0; i < 120 && len(h.w.Stars()) > 0; i++ {
		pickedAt = h.now()
		h.step(core.ActionRight)
	}
	if len(h.w.Stars()) != 0 {
		t.Fatal("star was never collected")
	}
	if h.w.index.Has(star) {
		t.Error("collected star still indexed")
	}
	if p.State != PlayerBouncy {
		t.Errorf("state = %v, expected bouncy", p.State)
	}
	if p.BouncyAt() != pickedAt {
		t.Errorf("BouncyAt = %v, expected %v", p.BouncyAt(), pickedAt)
	}
	if h.w.Score() != cfg.Scoring.Star {
		t.Errorf("score = %d, expected %d", h.w.Score(), cfg.Scoring.Star)
	}

	for i := 0; i < 30; i++ {
		h.step(core.ActionRight)
	}
	if h.w.Score() != cfg.Scoring.Star {
		t.Errorf("score changed after pickup: %d", h.w.Score())
	}
	if p.BouncyAt() != pickedAt {
		t.Errorf("BouncyAt changed after pickup: %v", p.BouncyAt())
	}
}

func TestBouncyPlayerRebounds(t *testing.T) {
	h := newHarness(t, flatLevel())
	p := h.w.Player()
	cfg := testConfig()

	p.enterBouncy(0)
	rebounds := 0
	for i := 0; i < 120; i++ {
		prevVY := p.VY
		h.step()
		if prevVY > 0 && p.VY < 0 {
			rebounds++
		}
	}
	if rebounds == 0 {
		t.Fatal("bouncy player never rebounded")
	}
	if p.State != PlayerBouncy {
		t.Errorf("state = %v, expected bouncy within duration", p.State)
	}

	// After the duration the next landing walks.
	p.bouncyAt = h.now() - cfg.Physics.BouncyDurationMS - 1
	for i := 0; i < 120 && p.State == PlayerBouncy; i++ {
		h.step()
	}
	if p.State != PlayerWalking && p.State != PlayerStanding {
		t.Errorf("state after bouncy expired = %v", p.State)
	}
}

func TestStompKillsEnemy(t *testing.T) {
	lvl := flatLevel()
	lvl.SpawnX, lvl.SpawnY = 300, 100
	lvl.Enemies = []levels.EnemySpawn{{Kind: "rock", X: 300, Y: 272, Dir: physics.Left}}
	h := newHarness(t, lvl)
	p := h.w.Player()
	cfg := testConfig()

	for i := 0; i < 120 && len(h.w.Enemies()) > 0; i++ {
		h.step()
	}
	if len(h.w.Enemies()) != 0 {
		t.Fatal("enemy was never stomped")
	}
	if h.w.Status() != StatusPlaying {
		t.Fatalf("status = %v, expected playing", h.w.Status())
	}
	if p.VY >= 0 {
		t.Errorf("player VY after stomp = %v, expected rebound", p.VY)
	}
	if h.w.Score() != cfg.Scoring.Stomp {
		t.Errorf("score = %d, expected %d", h.w.Score(), cfg.Scoring.Stomp)
	}

	dead := h.w.DeadEnemies()
	if len(dead) != 1 || dead[0].State != EnemyDeadOnGround {
		t.Fatalf("dead enemies = %v, expected one dead_on_ground", dead)
	}
	if h.w.index.Has(dead[0]) {
		t.Error("dead enemy still indexed")
	}

	for i := 0; i < 40; i++ {
		h.step()
	}
	if len(h.w.DeadEnemies()) != 0 {
		t.Errorf("dead enemy not removed after linger")
	}
}

func TestBumpKnocksEnemyOffBox(t *testing.T) {
	lvl := flatLevel()
	lvl.ItemBoxes = []core.RectF{core.NewRectF(100, 200, 0, 0)}
	lvl.Enemies = []levels.EnemySpawn{{Kind: "slime", X: 100, Y: 184, Dir: physics.Left}}
	h := newHarness(t, lvl)
	box := h.w.ItemBoxes()[0]
	e := h.w.Enemies()[0]
	cfg := testConfig()

	h.step()
	h.step()
	if e.State != EnemyWalking {
		t.Fatalf("enemy state = %v, expected walking on the box", e.State)
	}

	h.step(core.ActionJump)
	prevX := e.Rect.X
	for i := 0; i < 30; i++ {
		h.step()
		if dx := math.Abs(e.Rect.X - prevX); dx > 4 {
			t.Fatalf("tick %d: enemy X jumped %v -> %v (box %v)", h.tick, prevX, e.Rect.X, box.State)
		}
		prevX = e.Rect.X
	}

	if box.State == BoxNormal {
		t.Fatal("box was never bumped")
	}
	if len(h.w.Enemies()) != 0 {
		t.Fatal("enemy on the box survived the bump")
	}
	if h.w.index.Has(e) {
		t.Error("bumped enemy still indexed")
	}
	if e.State != EnemyInAir {
		t.Errorf("enemy state = %v, expected in_air", e.State)
	}
	if h.w.Score() != cfg.Scoring.Stomp {
		t.Errorf("score = %d, expected %d", h.w.Score(), cfg.Scoring.Stomp)
	}
	if h.w.Status() != StatusPlaying {
		t.Errorf("status = %v, expected playing", h.w.Status())
	}
}

func TestEnemyContactKillsPlayer(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []levels.EnemySpawn{{Kind: "slime", X: 160, Y: 272, Dir: physics.Left}}
	h := newHarness(t, lvl)

	for i := 0; i < 180 && h.w.Status() == StatusPlaying; i++ {
		h.step()
	}
	if h.w.Status() != StatusDied {
		t.Fatalf("status = %v, expected died", h.w.Status())
	}

	rect := h.w.Player().Rect
	h.step(core.ActionRight)
	if h.w.Player().Rect != rect {
		t.Error("world kept updating after the level ended")
	}
}

func TestBouncyPlayerKnocksEnemy(t *testing.T) {
	lvl := flatLevel()
	lvl.SpawnX, lvl.SpawnY = 304, 100
	lvl.Enemies = []levels.EnemySpawn{{Kind: "rock", X: 300, Y: 272, Dir: physics.Left}}
	h := newHarness(t, lvl)
	h.w.Player().enterBouncy(0)

	for i := 0; i < 120 && len(h.w.Enemies()) > 0; i++ {
		h.step()
	}
	if h.w.Status() != StatusPlaying {
		t.Fatalf("status = %v, expected playing", h.w.Status())
	}
	dead := h.w.DeadEnemies()
	if len(dead) != 1 {
		t.Fatalf("dead enemies = %d, expected 1", len(dead))
	}
	if dead[0].State != EnemyInAir || dead[0].VX >= 0 {
		t.Errorf("knocked enemy state %v VX %v, expected in_air moving left", dead[0].State, dead[0].VX)
	}

	for i := 0; i < 180 && len(h.w.DeadEnemies()) > 0; i++ {
		h.step()
	}
	if len(h.w.DeadEnemies()) != 0 {
		t.Error("knocked enemy never left the level")
	}
}

func TestEnemyTurnsAtWall(t *testing.T) {
	lvl := flatLevel()
	lvl.SpawnX = 20
	lvl.Blockers = append(lvl.Blockers, core.NewRectF(200, 256, 16, 32))
	lvl.Enemies = []levels.EnemySpawn{{Kind: "slime", X: 170, Y: 272, Dir: physics.Right}}
	h := newHarness(t, lvl)
	e := h.w.Enemies()[0]

	for i := 0; i < 120 && e.Dir == physics.Right; i++ {
		h.step()
	}
	if e.Dir != physics.Left {
		t.Fatal("enemy never turned around")
	}
	if e.VX >= 0 {
		t.Errorf("VX = %v, expected negative after turning", e.VX)
	}
	if e.Rect.Right() > 200 {
		t.Errorf("enemy right = %v, expected clipped at 200", e.Rect.Right())
	}
}

func TestEnemyWalksOffLedge(t *testing.T) {
	lvl := flatLevel()
	lvl.SpawnX = 20
	lvl.Blockers = append(lvl.Blockers, core.NewRectF(300, 200, 48, 16))
	lvl.Enemies = []levels.EnemySpawn{{Kind: "slime", X: 320, Y: 184, Dir: physics.Right}}
	h := newHarness(t, lvl)
	e := h.w.Enemies()[0]

	sawWalking := false
	for i := 0; i < 120; i++ {
		h.step()
		if e.State == EnemyWalking {
			sawWalking = true
		}
		if sawWalking && e.State == EnemyFreeFall {
			if e.VX <= 0 {
				t.Errorf("VX = %v after leaving ledge, expected kept", e.VX)
			}
			return
		}
	}
	t.Fatal("enemy never walked off the ledge")
}

func TestFallingOutOfLevelKillsPlayer(t *testing.T) {
	lvl := flatLevel()
	lvl.Blockers = []core.RectF{core.NewRectF(0, 288, 64, 32)}
	h := newHarness(t, lvl)

	for i := 0; i < 120 && h.w.Status() == StatusPlaying; i++ {
		h.step()
	}
	if h.w.Status() != StatusDied {
		t.Errorf("status = %v, expected died", h.w.Status())
	}
}

func TestReachingFinish(t *testing.T) {
	lvl := flatLevel()
	lvl.Finish = core.NewRectF(90, 200, 40, 88)
	h := newHarness(t, lvl)

	h.step()
	if h.w.Status() != StatusFinished {
		t.Fatalf("status = %v, expected finished", h.w.Status())
	}
	if h.w.Score() != testConfig().Scoring.Finish {
		t.Errorf("score = %d, expected finish bonus", h.w.Score())
	}
}

func TestNoBlockerOverlap(t *testing.T) {
	lvl := levels.Level{
		ID:     "course",
		Width:  960,
		Height: 480,
		SpawnX: 50,
		SpawnY: 400,
		Blockers: []core.RectF{
			core.NewRectF(0, 448, 960, 32),
			core.NewRectF(400, 384, 32, 64),
			core.NewRectF(200, 360, 96, 16),
			core.NewRectF(600, 416, 64, 32),
			core.NewRectF(500, 300, 64, 16),
		},
		Enemies: []levels.EnemySpawn{
			{Kind: "slime", X: 220, Y: 344, Dir: physics.Right},
			{Kind: "snail", X: 700, Y: 432, Dir: physics.Left},
		},
	}
	h := newHarness(t, lvl)

	for i := 0; i < 900; i++ {
		var actions []core.Action
		if (i/150)%2 == 1 {
			actions = append(actions, core.ActionLeft)
		} else {
			actions = append(actions, core.ActionRight)
		}
		if i%100 < 50 {
			actions = append(actions, core.ActionRun)
		}
		if i%45 < 3 {
			actions = append(actions, core.ActionJump)
		}
		h.step(actions...)

		for _, b := range h.w.Blockers() {
			if h.w.Player().Rect.Intersects(b.Rect) {
				t.Fatalf("tick %d: player %v overlaps blocker %v", i, h.w.Player().Rect, b.Rect)
			}
			for _, e := range h.w.Enemies() {
				if e.Rect.Intersects(b.Rect) {
					t.Fatalf("tick %d: enemy %v overlaps blocker %v", i, e.Rect, b.Rect)
				}
			}
		}
	}
}

func TestInvalidStateFailsFast(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []levels.EnemySpawn{{Kind: "rock", X: 500, Y: 272}}
	lvl.ItemBoxes = []core.RectF{core.NewRectF(400, 200, 0, 0)}

	tests := []struct {
		name    string
		corrupt func(w *World)
	}{
		{"player", func(w *World) { w.player.State = PlayerState(42) }},
		{"enemy", func(w *World) { w.enemies[0].State = EnemyState(42) }},
		{"item box", func(w *World) { w.boxes[0].State = BoxState(42) }},
		{"star", func(w *World) {
			w.pending = append(w.pending, pendingStar{cx: 560, bottom: 288})
			w.flushPending()
			w.stars[0].State = StarState(42)
		}},
		{"dead enemy", func(w *World) {
			e := w.enemies[0]
			w.index.Remove(e)
			w.removeEnemy(e)
			e.State = EnemyState(42)
			w.dead = append(w.dead, e)
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, err := NewWorld(lvl, testConfig(), 320, 240)
			if err != nil {
				t.Fatalf("NewWorld failed: %v", err)
			}
			tc.corrupt(w)
			err = w.Update(core.NewInputFrame(), 0, testDt)
			if !errors.Is(err, ErrInvalidState) {
				t.Errorf("Update error = %v, expected ErrInvalidState", err)
			}
		})
	}
}

func TestEveryStateHasHandler(t *testing.T) {
	cfg := testConfig()

	p := newPlayer(0, 0, &cfg)
	for _, s := range []PlayerState{PlayerStanding, PlayerWalking, PlayerFreeFall, PlayerBouncy} {
		p.State = s
		if err := p.update(core.NewInputFrame(), 0); err != nil {
			t.Errorf("player %v: %v", s, err)
		}
		p.State = s
		if err := p.land(0); err != nil {
			t.Errorf("player land %v: %v", s, err)
		}
	}

	e := newEnemy(enemySpawn{kind: "slime"}, cfg.Enemies.Kinds["slime"], cfg.Enemies.FrameMS)
	for _, s := range []EnemyState{EnemyWalking, EnemyFreeFall, EnemyInAir, EnemyDeadOnGround} {
		e.State = s
		if err := e.update(0); err != nil {
			t.Errorf("enemy %v: %v", s, err)
		}
	}

	b := newItemBox(0, 0, &cfg.ItemBox)
	for _, s := range []BoxState{BoxNormal, BoxBumped, BoxOpened} {
		b.State = s
		if _, err := b.update(0, testDt); err != nil {
			t.Errorf("item box %v: %v", s, err)
		}
	}

	st := newStar(0, 0, &cfg.Star, cfg.ItemBox.BumpGravity)
	for _, s := range []StarState{StarReveal, StarRevealed} {
		st.State = s
		if err := st.update(testDt); err != nil {
			t.Errorf("star %v: %v", s, err)
		}
	}

	if got := PlayerState(42).String(); got != "PlayerState(42)" {
		t.Errorf("unknown state String() = %q", got)
	}
}

func TestNewWorldRejectsUnknownEnemy(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []levels.EnemySpawn{{Kind: "dragon", X: 10, Y: 10}}
	if _, err := NewWorld(lvl, testConfig(), 320, 240); !errors.Is(err, levels.ErrUnknownEnemy) {
		t.Errorf("NewWorld error = %v, expected ErrUnknownEnemy", err)
	}
}

func TestDrawListOrder(t *testing.T) {
	lvl := flatLevel()
	lvl.Enemies = []levels.EnemySpawn{{Kind: "rock", X: 500, Y: 272}}
	lvl.ItemBoxes = []core.RectF{core.NewRectF(400, 200, 0, 0)}
	h := newHarness(t, lvl)
	h.w.pending = append(h.w.pending, pendingStar{cx: 300, bottom: 288})
	h.w.flushPending()
	h.step()

	var kinds []Kind
	for _, d := range h.w.DrawList() {
		kinds = append(kinds, d.Kind)
	}
	expected := []Kind{KindItemBox, KindStar, KindEnemy, KindPlayer}
	if !reflect.DeepEqual(kinds, expected) {
		t.Errorf("draw order = %v, expected %v", kinds, expected)
	}

	last := h.w.DrawList()[len(kinds)-1]
	if last.Image.Sheet != SheetPlayerStand {
		t.Errorf("player image = %q, expected %q", last.Image.Sheet, SheetPlayerStand)
	}
}

func TestDeterministicReplay(t *testing.T) {
	lvl, err := levels.Embedded().LoadByID("01-meadow")
	if err != nil {
		t.Fatalf("LoadByID failed: %v", err)
	}

	run := func() ([]Drawable, core.RectF, int) {
		h := newHarness(t, lvl)
		for i := 0; i < 400; i++ {
			if i%60 < 2 {
				h.step(core.ActionRight, core.ActionJump)
			} else {
				h.step(core.ActionRight)
			}
		}
		return h.w.DrawList(), h.w.Viewport(), h.w.Score()
	}

	d1, v1, s1 := run()
	d2, v2, s2 := run()
	if !reflect.DeepEqual(d1, d2) || v1 != v2 || s1 != s2 {
		t.Error("identical input produced different worlds")
	}
}
