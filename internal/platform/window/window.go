// Package window runs the platformer in a desktop window with ebiten.
// Entities are drawn as flat coloured shapes from the world's draw list.
package window

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Window geometry in world pixels. The runtime config is expressed in
// terminal cells, so the view is picked to be a whole number of cells.
const (
	viewCols = 80
	viewRows = 25 // One row is taken by the HUD
	hudH     = 16
)

var (
	skyColor     = color.RGBA{R: 92, G: 148, B: 252, A: 255}
	groundColor  = color.RGBA{R: 136, G: 84, B: 36, A: 255}
	finishColor  = color.RGBA{R: 40, G: 180, B: 80, A: 160}
	hudColor     = color.RGBA{R: 20, G: 20, B: 30, A: 255}
	boxColor     = color.RGBA{R: 240, G: 190, B: 40, A: 255}
	boxUsedColor = color.RGBA{R: 150, G: 100, B: 50, A: 255}
	starColor    = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	deadColor    = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	playerColor  = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	bouncyColor  = color.RGBA{R: 230, G: 80, B: 230, A: 255}
	eyeColor     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// enemyColors maps enemy kinds to body colours.
var enemyColors = map[string]color.RGBA{
	"slime": {R: 60, G: 200, B: 90, A: 255},
	"snail": {R: 230, G: 130, B: 40, A: 255},
}

// Options configures a window session.
type Options struct {
	Scale    int // Window pixels per world pixel
	TickRate int
	Store    *storage.Store // Optional run storage
	Logger   *log.Logger
}

// Game implements ebiten.Game over a platformer level.
type Game struct {
	game    *platformer.Game
	runtime core.RuntimeConfig
	store   *storage.Store
	logger  *log.Logger
	state   core.GameState
	saved   bool
}

// New creates a windowed game for lvl.
func New(lvl levels.Level, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	g := &Game{
		game: platformer.NewWithLevel(lvl),
		runtime: core.RuntimeConfig{
			ScreenW:  viewCols,
			ScreenH:  viewRows,
			TickRate: opts.TickRate,
		},
		store:  opts.Store,
		logger: opts.Logger,
	}
	g.game.Reset(g.runtime)
	return g
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.state.GameOver {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.game.Reset(g.runtime)
			g.state = g.game.State()
			g.saved = false
		}
		return nil
	}

	g.state = g.game.Step(readInput()).State
	if g.state.GameOver && !g.saved {
		g.saveRun()
		g.saved = true
	}
	return nil
}

// readInput polls the keyboard. Unlike a terminal, ebiten reports real
// key state, so movement keys are read as held.
func readInput() core.InputFrame {
	in := core.NewInputFrame()
	pressed := func(keys ...ebiten.Key) bool {
		for _, k := range keys {
			if ebiten.IsKeyPressed(k) {
				return true
			}
		}
		return false
	}

	if pressed(ebiten.KeyArrowLeft, ebiten.KeyA) {
		in.Set(core.ActionLeft)
	}
	if pressed(ebiten.KeyArrowRight, ebiten.KeyD) {
		in.Set(core.ActionRight)
	}
	if pressed(ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW) {
		in.Set(core.ActionJump)
	}
	if pressed(ebiten.KeyShiftLeft, ebiten.KeyShiftRight, ebiten.KeyX) {
		in.Set(core.ActionRun)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Set(core.ActionPause)
	}
	return in
}

func (g *Game) saveRun() {
	g.logger.Info("level ended",
		"level", g.state.Level,
		"finished", g.state.Won,
		"score", g.state.Score,
		"ms", g.state.ElapsedMS,
	)
	if g.store == nil {
		return
	}
	_, err := g.store.SaveRun(storage.Run{
		LevelID:    g.state.Level,
		Score:      g.state.Score,
		DurationMS: g.state.ElapsedMS,
		Finished:   g.state.Won,
	})
	if err != nil {
		g.logger.Warn("could not save run", "error", err)
	}
}

// Draw paints the level, the entities and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	w := g.game.World()
	vp := w.Viewport()
	screen.Fill(hudColor)

	fill := func(r core.RectF, clr color.Color) {
		vector.DrawFilledRect(screen,
			float32(r.X-vp.X), float32(r.Y-vp.Y+hudH), float32(r.W), float32(r.H),
			clr, false)
	}

	fill(vp, skyColor)
	for _, b := range w.Blockers() {
		if b.Rect.Intersects(vp) {
			fill(b.Rect, groundColor)
		}
	}
	if lvl := w.Level(); lvl.HasFinish() {
		fill(lvl.Finish, finishColor)
	}

	for _, d := range w.DrawList() {
		if !d.Rect.Intersects(vp) {
			continue
		}
		fill(d.Rect, drawableColor(d))
		if d.Kind == platformer.KindPlayer || d.Kind == platformer.KindEnemy {
			fill(eyeRect(d), eyeColor)
		}
	}

	g.drawHUD(screen)
}

// drawableColor picks the body colour of a drawable.
func drawableColor(d platformer.Drawable) color.Color {
	switch d.Kind {
	case platformer.KindItemBox:
		if d.Image.Sheet == platformer.SheetBoxUsed {
			return boxUsedColor
		}
		// Idle boxes pulse with the animation frame.
		c := boxColor
		c.G -= uint8(d.Image.Frame * 25)
		return c
	case platformer.KindStar:
		return starColor
	case platformer.KindEnemy:
		if c, ok := enemyColors[d.Image.Sheet]; ok {
			return c
		}
		return playerColor
	case platformer.KindDeadEnemy:
		return deadColor
	case platformer.KindPlayer:
		if d.Image.Sheet == platformer.SheetPlayerBounce {
			return bouncyColor
		}
		return playerColor
	}
	return deadColor
}

// eyeRect places a small marker on the side a body is facing.
func eyeRect(d platformer.Drawable) core.RectF {
	const size = 4
	r := core.NewRectF(d.Rect.X+d.Rect.W-size-2, d.Rect.Y+4, size, size)
	if d.Image.FlipX {
		r.X = d.Rect.X + 2
	}
	if d.Image.FlipY {
		r.Y = d.Rect.Bottom() - 4 - size
	}
	return r
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	st := g.game.State()
	hud := fmt.Sprintf("%s  Score: %d  Time: %.1fs", g.game.World().Level().Name, st.Score, float64(st.ElapsedMS)/1000)
	switch {
	case st.Paused:
		hud += "  PAUSED"
	case st.GameOver && st.Won:
		hud += "  LEVEL COMPLETE - R to replay"
	case st.GameOver:
		hud += "  GAME OVER - R to restart"
	}
	ebitenutil.DebugPrintAt(screen, hud, 4, 0)
}

// Layout returns the logical screen size: the viewport plus the HUD strip.
func (g *Game) Layout(_, _ int) (int, int) {
	vp := g.game.World().Viewport()
	return int(vp.W), int(vp.H) + hudH
}

// Run opens a window and plays lvl until the window is closed.
func Run(lvl levels.Level, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 2
	}
	g := New(lvl, opts)
	w, h := g.Layout(0, 0)

	ebiten.SetWindowSize(w*opts.Scale, h*opts.Scale)
	ebiten.SetWindowTitle(fmt.Sprintf("Platformer - %s", lvl.Name))
	ebiten.SetTPS(g.runtime.TickRate)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
