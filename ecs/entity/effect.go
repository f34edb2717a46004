package entity

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// Effect is a one-shot animation centered on a point. It expires when the
// animation runs out.
type Effect struct {
	center cp.Vector
	anim   *component.Animation
	size   float64
}

func NewEffect(center cp.Vector, frames []*ebiten.Image, size float64) *Effect {
	return &Effect{
		center: center,
		anim:   component.NewAnimation(frames, component.DefaultAnimationSpeed, false),
		size:   size,
	}
}

func (e *Effect) Update(time.Duration) {
	e.anim.Update()
}

func (e *Effect) Expired() bool { return e.anim.Done() }

func (e *Effect) Bounds() common.Rect {
	w, h := component.ImageSize(e.anim.Frame(), e.size, e.size)
	return common.RectAround(e.center, w, h)
}

func (e *Effect) Image() *ebiten.Image         { return e.anim.Frame() }
func (e *Effect) Category() component.Category { return component.Particle }
func (e *Effect) Center() cp.Vector            { return e.center }

// MagicEffect is an effect that also damages what it touches.
type MagicEffect struct {
	*Effect
	owner ecs.Entity
	hit   ecs.Hit
}

func NewMagicEffect(e *Effect, owner ecs.Entity, hit ecs.Hit) *MagicEffect {
	hit.Kind = component.Magic
	return &MagicEffect{Effect: e, owner: owner, hit: hit}
}

func (m *MagicEffect) Category() component.Category { return component.Magic }
func (m *MagicEffect) Owner() ecs.Entity            { return m.owner }
func (m *MagicEffect) Hit() ecs.Hit                 { return m.hit }

var (
	_ ecs.Expirer = (*Effect)(nil)
	_ ecs.Attack  = (*MagicEffect)(nil)
)
