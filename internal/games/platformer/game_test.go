package platformer

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestGameRegistered(t *testing.T) {
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create(%q) failed: %v", GameID, err)
	}
	if g.ID() != GameID {
		t.Errorf("ID() = %q, expected %q", g.ID(), GameID)
	}
}

func TestGameReset(t *testing.T) {
	cfg := core.DefaultConfig()

	g := New()
	g.Reset(cfg)

	st := g.State()
	if st.Level != "01-meadow" {
		t.Errorf("Level = %q, expected 01-meadow", st.Level)
	}
	if st.Score != 0 || st.GameOver || st.Paused || st.ElapsedMS != 0 {
		t.Errorf("fresh state = %+v", st)
	}

	for i := 0; i < 30; i++ {
		g.Step(core.InputOf(core.ActionRight))
	}
	if g.State().ElapsedMS != 500 {
		t.Errorf("ElapsedMS after 30 ticks = %d, expected 500", g.State().ElapsedMS)
	}

	g.Reset(cfg)
	if g.State().ElapsedMS != 0 {
		t.Errorf("ElapsedMS after reset = %d, expected 0", g.State().ElapsedMS)
	}
	if p := g.World().Player(); p.Rect.X != 48 {
		t.Errorf("player X after reset = %v, expected 48", p.Rect.X)
	}
}

func TestGameDeterminism(t *testing.T) {
	cfg := core.DefaultConfig()

	g1 := New()
	g2 := New()
	g1.Reset(cfg)
	g2.Reset(cfg)

	for i := 0; i < 300; i++ {
		in := core.InputOf(core.ActionRight)
		if i%40 < 5 {
			in.Set(core.ActionJump)
		}
		r1 := g1.Step(in)
		r2 := g2.Step(in)
		if r1.State != r2.State {
			t.Fatalf("tick %d: states differ: %+v vs %+v", i, r1.State, r2.State)
		}
	}

	s1 := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	s2 := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g1.Render(s1)
	g2.Render(s2)
	if s1.String() != s2.String() {
		t.Error("renders differ after identical input")
	}
}

func TestGamePause(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	g.Step(core.InputOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}

	before := g.World().Player().Rect
	elapsed := g.State().ElapsedMS
	for i := 0; i < 10; i++ {
		g.Step(core.InputOf(core.ActionRight))
	}
	if g.World().Player().Rect != before {
		t.Errorf("player moved while paused: %v -> %v", before, g.World().Player().Rect)
	}
	if g.State().ElapsedMS != elapsed {
		t.Errorf("clock advanced while paused: %d -> %d", elapsed, g.State().ElapsedMS)
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("game should be unpaused")
	}
}

func TestGameOverFreezesState(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	for i := 0; i < 10; i++ {
		g.Step(core.NewInputFrame())
	}

	g.World().Player().Rect.Y = 10000
	res := g.Step(core.NewInputFrame())
	if !res.State.GameOver || res.State.Won {
		t.Fatalf("state = %+v, expected lost", res.State)
	}

	ended := res.State.ElapsedMS
	for i := 0; i < 10; i++ {
		res = g.Step(core.InputOf(core.ActionRight))
	}
	if res.State.ElapsedMS != ended {
		t.Errorf("ElapsedMS = %d after game over, expected %d", res.State.ElapsedMS, ended)
	}
}

func TestGameInvalidStatePanics(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())
	g.World().Player().State = PlayerState(42)

	defer func() {
		if recover() == nil {
			t.Error("Step should panic on an unknown player state")
		}
	}()
	g.Step(core.NewInputFrame())
}

func TestGameRender(t *testing.T) {
	cfg := core.DefaultConfig()
	g := New()
	g.Reset(cfg)
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	g.Render(screen)

	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") {
		t.Errorf("HUD = %q, expected a score", hud)
	}

	var ground, player bool
	for y := hudRows; y < cfg.ScreenH; y++ {
		row := screen.Row(y)
		ground = ground || strings.ContainsRune(row, GroundChar)
		player = player || strings.ContainsRune(row, PlayerHead)
	}
	if !ground {
		t.Error("ground should be drawn")
	}
	if !player {
		t.Error("player should be drawn")
	}
}

func TestGameResize(t *testing.T) {
	g := New()
	g.Reset(core.DefaultConfig())

	g.Resize(100, 21)
	vp := g.World().Viewport()
	if vp.W != 800 || vp.H != 320 {
		t.Errorf("viewport = %vx%v, expected 800x320", vp.W, vp.H)
	}
}
