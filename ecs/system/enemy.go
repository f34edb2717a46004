package system

import (
	"github.com/milk9111/topdown/ecs"
	"github.com/milk9111/topdown/ecs/component"
)

// PlayerSource returns the current player view, or false when there is no
// live player.
type PlayerSource func() (ecs.PlayerSnapshot, bool)

// EnemySystem hands the player snapshot to every visible enemy once per frame.
type EnemySystem struct {
	Player PlayerSource
}

func NewEnemySystem(player PlayerSource) *EnemySystem {
	return &EnemySystem{Player: player}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if w == nil || s.Player == nil {
		return
	}
	snap, ok := s.Player()
	if !ok {
		return
	}
	w.ForEach(ecs.GroupVisible, func(_ ecs.Entity, obj ecs.Object) {
		if obj.Category() != component.Enemy {
			return
		}
		if u, ok := obj.(ecs.EnemyUpdater); ok {
			u.EnemyUpdate(snap)
		}
	})
}
