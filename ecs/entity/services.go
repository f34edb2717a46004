package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/common"
	"github.com/milk9111/topdown/input"
)

// Services are the world operations actors may trigger. The level implements
// them; actors never reach into the collections directly.
type Services interface {
	CreateAttack()
	DestroyAttack()
	CreateMagic(style string, strength, cost int)
	DamagePlayer(amount int, attackType string)
	TriggerDeathParticles(pos cp.Vector, particleType string)
	AddExp(amount int)
}

// Graphics resolves visual assets by path relative to the graphics root.
type Graphics interface {
	Frames(dir string) []*ebiten.Image
	Image(name string) *ebiten.Image
	Mirrored(dir string) []*ebiten.Image
}

// Controls reports held actions.
type Controls interface {
	Pressed(a input.Action) bool
}

// Obstacles is the movement query an actor holds. ecs.View satisfies it.
type Obstacles interface {
	Colliders() []common.Rect
}

// NopServices ignores every request.
type NopServices struct{}

func (NopServices) CreateAttack()                           {}
func (NopServices) DestroyAttack()                          {}
func (NopServices) CreateMagic(string, int, int)            {}
func (NopServices) DamagePlayer(int, string)                {}
func (NopServices) TriggerDeathParticles(cp.Vector, string) {}
func (NopServices) AddExp(int)                              {}
