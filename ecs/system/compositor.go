package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
)

// Canvas is a render target. *ebiten.Image satisfies it.
type Canvas interface {
	DrawImage(img *ebiten.Image, op *ebiten.DrawImageOptions)
}

// Placement is one sprite ready to be drawn in screen space.
type Placement struct {
	Entity ecs.Entity
	Image  *ebiten.Image
	Pos    cp.Vector
	Alpha  float32
}

// Compositor draws the floor and the visible group with a camera centered on
// a focus rect, sorted by depth (center Y).
type Compositor struct {
	Floor       *ebiten.Image
	FloorOrigin cp.Vector
	Width       float64
	Height      float64
}

func NewCompositor(floor *ebiten.Image, width, height float64) *Compositor {
	return &Compositor{Floor: floor, Width: width, Height: height}
}

// Offset is the camera translation that puts focus at the screen center.
func (c *Compositor) Offset(focus common.Rect) cp.Vector {
	center := focus.Center()
	return cp.Vector{X: center.X - c.Width/2, Y: center.Y - c.Height/2}
}

// DrawOrder returns the visible group sorted by center Y. Ties keep
// insertion order.
func DrawOrder(w *ecs.World) []ecs.Entity {
	members := w.Members(ecs.GroupVisible)
	keys := make(map[ecs.Entity]float64, len(members))
	for _, e := range members {
		if obj, ok := w.Object(e); ok {
			keys[e] = obj.Bounds().Center().Y
		}
	}
	sort.SliceStable(members, func(i, j int) bool {
		return keys[members[i]] < keys[members[j]]
	})
	return members
}

// Placements resolves the draw list for the given camera offset.
func (c *Compositor) Placements(w *ecs.World, offset cp.Vector) []Placement {
	order := DrawOrder(w)
	out := make([]Placement, 0, len(order))
	for _, e := range order {
		obj, ok := w.Object(e)
		if !ok {
			continue
		}
		alpha := float32(1)
		if t, ok := obj.(ecs.Tinted); ok {
			alpha = t.Alpha()
		}
		out = append(out, Placement{
			Entity: e,
			Image:  obj.Image(),
			Pos:    obj.Bounds().Min().Sub(offset),
			Alpha:  alpha,
		})
	}
	return out
}

// Draw renders the floor and every visible entity. Entities without an
// image are skipped.
func (c *Compositor) Draw(dst Canvas, w *ecs.World, focus common.Rect) {
	offset := c.Offset(focus)

	if c.Floor != nil {
		op := &ebiten.DrawImageOptions{}
		floor := c.FloorOrigin.Sub(offset)
		op.GeoM.Translate(floor.X, floor.Y)
		dst.DrawImage(c.Floor, op)
	}

	for _, p := range c.Placements(w, offset) {
		if p.Image == nil || p.Alpha <= 0 {
			continue
		}
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(p.Pos.X, p.Pos.Y)
		if p.Alpha < 1 {
			op.ColorScale.ScaleAlpha(p.Alpha)
		}
		dst.DrawImage(p.Image, op)
	}
}
