package platformer

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Visual characters for rendering
const (
	GroundChar   = '▓'
	FinishChar   = '▚'
	BoxChar      = '?'
	BoxUsedChar  = '▣'
	StarChar     = '*'
	DeadChar     = 'x'
	PlayerHead   = '█'
	PlayerLegsA  = '╱'
	PlayerLegsB  = '╲'
	PlayerTucked = '▀'
)

var boxColors = []core.Color{core.ColorYellow, core.ColorBrightYellow, core.ColorOrange}

// enemyGlyphs maps enemy sheets to their two walking frames.
var enemyGlyphs = map[string][2]rune{
	"slime": {'o', 'O'},
	"snail": {'@', 'ɵ'},
}

// Render draws the visible part of the level below a one-row HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w := g.world
	vp := w.Viewport()
	cw, ch := g.cellSize()

	// cells maps a world rect to screen cells, clipped to the viewport.
	cells := func(r core.RectF) (core.Rect, bool) {
		if !r.Intersects(vp) {
			return core.Rect{}, false
		}
		c := r.Cells(vp.X, vp.Y, cw, ch)
		c.Y += hudRows
		return c, true
	}

	for _, b := range w.Blockers() {
		if c, ok := cells(b.Rect); ok {
			dst.DrawRectColored(c, GroundChar, core.ColorBrown)
		}
	}

	if lvl := w.Level(); lvl.HasFinish() {
		if c, ok := cells(lvl.Finish); ok {
			dst.DrawRectColored(c, FinishChar, core.ColorGreen)
		}
	}

	for _, d := range w.DrawList() {
		c, ok := cells(d.Rect)
		if !ok {
			continue
		}
		drawEntity(dst, c, d)
	}

	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	switch w.Status() {
	case StatusFinished:
		drawCenteredMessage(dst, "LEVEL COMPLETE", fmt.Sprintf("Score: %d  |  Press R to replay", w.Score()))
	case StatusDied:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", w.Score()))
	}
}

func drawEntity(dst *core.Screen, c core.Rect, d Drawable) {
	switch d.Kind {
	case KindItemBox:
		if d.Image.Sheet == SheetBoxUsed {
			dst.DrawRectColored(c, BoxUsedChar, core.ColorBrown)
			return
		}
		dst.DrawRectColored(c, BoxChar, boxColors[d.Image.Frame%len(boxColors)])
	case KindStar:
		dst.DrawRectColored(c, StarChar, core.ColorBrightYellow)
	case KindEnemy:
		glyphs, ok := enemyGlyphs[d.Image.Sheet]
		if !ok {
			glyphs = [2]rune{'e', 'E'}
		}
		dst.DrawRectColored(c, glyphs[d.Image.Frame%2], core.ColorRed)
	case KindDeadEnemy:
		dst.DrawRectColored(c, DeadChar, core.ColorGray)
	case KindPlayer:
		drawPlayer(dst, c, d.Image)
	}
}

// drawPlayer renders the player: a solid body with a legs row that animates
// while walking.
func drawPlayer(dst *core.Screen, c core.Rect, img Image) {
	color := core.ColorCyan
	if img.Sheet == SheetPlayerBounce {
		color = core.ColorMagenta
	}

	legsRow := c.Bottom() - 1
	for y := c.Y; y < legsRow; y++ {
		for x := c.X; x < c.Right(); x++ {
			dst.SetColored(x, y, PlayerHead, color)
		}
	}

	for x := c.X; x < c.Right(); x++ {
		legs := PlayerTucked
		if img.Sheet == SheetPlayerWalk || img.Sheet == SheetPlayerStand {
			legs = PlayerLegsA
			if (x-c.X+img.Frame)%2 == 1 {
				legs = PlayerLegsB
			}
		}
		dst.SetColored(x, legsRow, legs, color)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	w := g.world
	st := g.State()

	left := fmt.Sprintf(" %s  Score: %d ", w.Level().Name, st.Score)
	dst.DrawTextColored(0, 0, left, core.ColorWhite)

	right := fmt.Sprintf(" Time: %.1fs ", float64(st.ElapsedMS)/1000)
	if w.Player().State == PlayerBouncy {
		right = " BOUNCY" + right
	}
	dst.DrawTextColored(dst.Width()-len([]rune(right)), 0, right, core.ColorBrightCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// Legend describes the glyphs used by Render, one per line.
func Legend() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%c player   %c item box   %c star\n", PlayerHead, BoxChar, StarChar)
	fmt.Fprintf(&b, "%c ground   %c finish     %c/%c enemies\n", GroundChar, FinishChar, enemyGlyphs["slime"][0], enemyGlyphs["snail"][0])
	return b.String()
}
