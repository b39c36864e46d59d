package banana

import (
	"math"

	"github.com/vovakirdan/banana-grove/internal/core"
	"github.com/vovakirdan/banana-grove/internal/grove"
)

// Screen layout constants
const (
	hudHeight = 2  // score line + separator
	minWidth  = 30 // smallest usable terminal
	minHeight = 12
)

// Layout maps world coordinates onto the playfield cells of the screen.
// World Y grows upwards; screen Y grows downwards.
type Layout struct {
	field core.Rect   // playfield interior in screen cells
	world core.Bounds // world area shown in the field
}

// newLayout fits the board, the actor's home and the highest possible
// landing point into a screen of w x h cells.
func newLayout(cfg grove.Config, w, h int) Layout {
	home := cfg.Actor.Home
	world := core.Bounds{
		MinX: math.Min(cfg.Board.MinX, home.X),
		MaxX: math.Max(cfg.Board.MaxX, home.X),
		MinY: math.Min(cfg.Board.MinY, home.Y),
		MaxY: math.Max(cfg.Board.MaxY+grove.TargetOffsetY, home.Y),
	}

	// Border around the field, below the HUD.
	field := core.NewRect(1, hudHeight+1, w-2, h-hudHeight-2)
	return Layout{field: field, world: world}
}

// Field returns the playfield interior.
func (l Layout) Field() core.Rect { return l.field }

// ToScreen converts a world position to a screen cell inside the field.
func (l Layout) ToScreen(p core.Vec2) (int, int) {
	fx := 0.5
	if w := l.world.Width(); w > 0 {
		fx = (p.X - l.world.MinX) / w
	}
	fy := 0.5
	if h := l.world.Height(); h > 0 {
		fy = (l.world.MaxY - p.Y) / h
	}

	x := l.field.X + int(math.Round(fx*float64(l.field.W-1)))
	y := l.field.Y + int(math.Round(fy*float64(l.field.H-1)))
	return core.Clamp(x, l.field.X, l.field.Right()-1), core.Clamp(y, l.field.Y, l.field.Bottom()-1)
}

// cellDistance measures distance in cells. Terminal cells are roughly twice
// as tall as they are wide, so rows count double.
func cellDistance(x1, y1, x2, y2 int) float64 {
	return math.Hypot(float64(x2-x1), 2*float64(y2-y1))
}
