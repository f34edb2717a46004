package entity

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/topdown/ecs"
)

// Magic styles.
const (
	MagicHeal  = "heal"
	MagicFlame = "flame"
)

const flameSteps = 5

// MagicPlayer turns a spell cast into effects. It never touches the world;
// the caller spawns what it returns.
type MagicPlayer struct {
	particles *ParticleFactory
	tileSize  float64
}

func NewMagicPlayer(particles *ParticleFactory, tileSize float64) *MagicPlayer {
	return &MagicPlayer{particles: particles, tileSize: tileSize}
}

// Heal restores strength health for cost energy and returns the aura and
// heal effects. Nothing happens without enough energy.
func (m *MagicPlayer) Heal(p *Player, strength, cost int) []*Effect {
	if !p.SpendEnergy(cost) {
		return nil
	}
	p.Heal(strength)
	c := p.Center()
	return []*Effect{
		m.particles.Particle("aura", c),
		m.particles.Particle("heal", c.Add(cp.Vector{Y: -m.tileSize})),
	}
}

// Flame casts a line of flames one tile apart in the facing direction,
// each jittered by up to a third of a tile.
func (m *MagicPlayer) Flame(p *Player, owner ecs.Entity, cost int) []*MagicEffect {
	if !p.SpendEnergy(cost) {
		return nil
	}

	var dir cp.Vector
	switch p.Facing() {
	case FacingRight:
		dir = cp.Vector{X: 1}
	case FacingLeft:
		dir = cp.Vector{X: -1}
	case FacingUp:
		dir = cp.Vector{Y: -1}
	default:
		dir = cp.Vector{Y: 1}
	}

	hit := ecs.Hit{Amount: p.FullMagicDamage(), AttackType: MagicFlame, Origin: p.Center()}
	c := p.Center()
	out := make([]*MagicEffect, 0, flameSteps)
	for i := 1; i <= flameSteps; i++ {
		pos := c.Add(dir.Mult(float64(i) * m.tileSize))
		pos.X += m.jitter()
		pos.Y += m.jitter()
		out = append(out, NewMagicEffect(m.particles.Particle(MagicFlame, pos), owner, hit))
	}
	return out
}

func (m *MagicPlayer) jitter() float64 {
	third := int(m.tileSize) / 3
	return float64(m.particles.Intn(2*third+1) - third)
}
