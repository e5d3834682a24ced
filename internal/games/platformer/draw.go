package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Sprite sheet names. Enemy sheets are named after their kind.
const (
	SheetPlayerStand  = "player_stand"
	SheetPlayerWalk   = "player_walk"
	SheetPlayerJump   = "player_jump"
	SheetPlayerBounce = "player_bounce"
	SheetBox          = "item_box"
	SheetBoxUsed      = "item_box_used"
	SheetStar         = "star"
	SheetDeadSuffix   = "_dead"
)

// Image is a handle to one frame of a sprite sheet. Frontends decide how a
// handle looks: terminal glyphs, filled rectangles or real artwork.
type Image struct {
	Sheet string
	Frame int
	FlipX bool
	FlipY bool
}

// Kind tells frontends which entity a drawable belongs to.
type Kind int

const (
	KindItemBox Kind = iota
	KindStar
	KindEnemy
	KindDeadEnemy
	KindPlayer
)

// Drawable is one entity to paint: where, and which image.
type Drawable struct {
	Kind  Kind
	Rect  core.RectF
	Image Image
}

// DrawList returns drawables in paint order: item boxes, stars, enemies,
// dead enemies, then the player on top.
func (w *World) DrawList() []Drawable {
	out := make([]Drawable, 0, len(w.boxes)+len(w.stars)+len(w.enemies)+len(w.dead)+1)
	for _, b := range w.boxes {
		out = append(out, Drawable{Kind: KindItemBox, Rect: b.Rect, Image: b.image()})
	}
	for _, s := range w.stars {
		out = append(out, Drawable{Kind: KindStar, Rect: s.Rect, Image: s.image()})
	}
	for _, e := range w.enemies {
		out = append(out, Drawable{Kind: KindEnemy, Rect: e.Rect, Image: e.image()})
	}
	for _, e := range w.dead {
		out = append(out, Drawable{Kind: KindDeadEnemy, Rect: e.Rect, Image: e.image()})
	}
	out = append(out, Drawable{Kind: KindPlayer, Rect: w.player.Rect, Image: w.player.image()})
	return out
}
