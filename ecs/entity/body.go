package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
)

// body moves a hitbox through obstacles one axis at a time and keeps the
// visual rect centered on it.
type body struct {
	rect      common.Rect
	hitbox    common.Rect
	direction cp.Vector
	obstacles Obstacles
}

func newBody(rect common.Rect, inset cp.Vector, obstacles Obstacles) body {
	return body{
		rect:      rect,
		hitbox:    rect.Inflate(inset.X, inset.Y),
		obstacles: obstacles,
	}
}

func (b *body) move(speed float64) {
	if b.direction.Length() != 0 {
		b.direction = b.direction.Normalize()
	}

	b.hitbox.X += b.direction.X * speed
	b.collide(true)
	b.hitbox.Y += b.direction.Y * speed
	b.collide(false)

	b.rect = b.rect.WithCenter(b.hitbox.Center())
}

func (b *body) collide(horizontal bool) {
	if b.obstacles == nil {
		return
	}
	for _, r := range b.obstacles.Colliders() {
		if !r.Intersects(b.hitbox) {
			continue
		}
		if horizontal {
			if b.direction.X > 0 {
				b.hitbox.X = r.X - b.hitbox.Width
			}
			if b.direction.X < 0 {
				b.hitbox.X = r.Right()
			}
			continue
		}
		if b.direction.Y > 0 {
			b.hitbox.Y = r.Y - b.hitbox.Height
		}
		if b.direction.Y < 0 {
			b.hitbox.Y = r.Bottom()
		}
	}
}

func (b *body) Bounds() common.Rect { return b.rect }
func (b *body) Hitbox() common.Rect { return b.hitbox }
func (b *body) Center() cp.Vector   { return b.rect.Center() }
