package entity

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
)

const leafVariants = 6

// ParticleFactory builds effect entities from the particle graphics.
type ParticleFactory struct {
	gfx      Graphics
	intn     func(int) int
	tileSize float64
}

// NewParticleFactory uses intn for every random choice.
func NewParticleFactory(gfx Graphics, intn func(int) int, tileSize float64) *ParticleFactory {
	return &ParticleFactory{gfx: gfx, intn: intn, tileSize: tileSize}
}

func (f *ParticleFactory) Frames(kind string) []*ebiten.Image {
	if f.gfx == nil {
		return nil
	}
	return f.gfx.Frames("particles/" + kind)
}

// Particle creates a one-shot effect of the given kind, e.g. "slash",
// "aura" or a monster name for death effects.
func (f *ParticleFactory) Particle(kind string, pos cp.Vector) *Effect {
	return NewEffect(pos, f.Frames(kind), f.tileSize)
}

// Leaf creates a falling-leaf effect from a random variant, mirrored half
// the time.
func (f *ParticleFactory) Leaf(pos cp.Vector) *Effect {
	dir := "particles/leaf" + strconv.Itoa(1+f.intn(leafVariants))
	var frames []*ebiten.Image
	if f.gfx != nil {
		if f.intn(2) == 0 {
			frames = f.gfx.Frames(dir)
		} else {
			frames = f.gfx.Mirrored(dir)
		}
	}
	return NewEffect(pos, frames, f.tileSize)
}

// Intn exposes the factory's random source.
func (f *ParticleFactory) Intn(n int) int {
	return f.intn(n)
}
