package system

import (
	"github.com/milk9111/topdown/ecs"
)

// UpdateSystem advances every visible entity and removes the ones that
// expired during their update.
type UpdateSystem struct {
	Clock *ecs.Clock
}

func NewUpdateSystem(clock *ecs.Clock) *UpdateSystem {
	return &UpdateSystem{Clock: clock}
}

func (s *UpdateSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	now := s.Clock.Now()
	w.ForEach(ecs.GroupVisible, func(e ecs.Entity, obj ecs.Object) {
		if u, ok := obj.(ecs.Updater); ok {
			u.Update(now)
		}
		if x, ok := obj.(ecs.Expirer); ok && x.Expired() {
			w.Kill(e)
		}
	})
}
