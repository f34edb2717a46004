package system

import (
	"github.com/jakecoffman/cp"
	"go.uber.org/zap"

	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
	"github.com/milk9111/topdown/ecs/entity"
)

const (
	minLeaves   = 3
	extraLeaves = 4 // 3 to 6 leaves per cut
	leafRise    = 75
)

// CombatSystem resolves overlaps between attacks and attackable entities.
// Grass is cut; everything else receives the attack's hit.
type CombatSystem struct {
	Particles *entity.ParticleFactory
	Log       *zap.Logger
}

func NewCombatSystem(particles *entity.ParticleFactory, log *zap.Logger) *CombatSystem {
	if log == nil {
		log = zap.NewNop()
	}
	return &CombatSystem{Particles: particles, Log: log}
}

func (s *CombatSystem) Update(w *ecs.World) {
	if w == nil || w.Len(ecs.GroupAttack) == 0 {
		return
	}
	w.ForEach(ecs.GroupAttack, func(_ ecs.Entity, obj ecs.Object) {
		attack, ok := obj.(ecs.Attack)
		if !ok {
			s.Log.Debug("attack group member without hit", zap.Stringer("category", obj.Category()))
			return
		}
		s.resolve(w, attack)
	})
}

func (s *CombatSystem) resolve(w *ecs.World, attack ecs.Attack) {
	area := attack.Bounds()
	owner := attack.Owner()
	w.ForEach(ecs.GroupAttackable, func(e ecs.Entity, target ecs.Object) {
		if e == owner || !area.Intersects(target.Bounds()) {
			return
		}
		if target.Category() == component.Grass {
			s.cutGrass(w, e, target)
			return
		}
		if d, ok := target.(ecs.Damageable); ok {
			d.TakeDamage(attack.Hit())
		}
	})
}

func (s *CombatSystem) cutGrass(w *ecs.World, e ecs.Entity, grass ecs.Object) {
	pos := grass.Bounds().Center().Sub(cp.Vector{Y: leafRise})
	if s.Particles != nil {
		n := minLeaves + s.Particles.Intn(extraLeaves)
		for i := 0; i < n; i++ {
			w.Spawn(s.Particles.Leaf(pos), ecs.Groups(ecs.GroupVisible))
		}
	}
	w.Kill(e)
	w.Events().Push(ecs.Event{Kind: ecs.EventGrassCut, Entity: e, Pos: pos})
}
