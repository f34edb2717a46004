package ecs

import (
	"github.com/milk9111/topdown/common"
)

// World owns entity handles and the four role groups. Groups hold non-owning
// handles; an entity lives until Kill removes it from every group at once.
type World struct {
	entities entityStore
	groups   [groupCount]SparseSet
	member   map[Entity]GroupSet
	events   EventQueue
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{member: make(map[Entity]GroupSet)}
}

// Spawn registers obj and adds it to the given groups.
func (w *World) Spawn(obj Object, groups GroupSet) Entity {
	if w == nil || obj == nil {
		return 0
	}
	e := w.entities.create(obj)
	for g := Group(0); g < groupCount; g++ {
		if groups.Has(g) {
			w.groups[g].Insert(e)
		}
	}
	w.member[e] = groups
	return e
}

// Join adds a live entity to another group.
func (w *World) Join(e Entity, g Group) bool {
	if w == nil || g >= groupCount || !w.IsAlive(e) {
		return false
	}
	if !w.groups[g].Insert(e) {
		return false
	}
	w.member[e] |= 1 << g
	return true
}

// Kill removes e from every group and releases its handle. Killing a dead
// or stale handle is a no-op and returns false.
func (w *World) Kill(e Entity) bool {
	if w == nil || !w.entities.isAlive(e) {
		return false
	}
	set := w.member[e]
	for g := Group(0); g < groupCount; g++ {
		if set.Has(g) {
			w.groups[g].Remove(e)
		}
	}
	delete(w.member, e)
	return w.entities.destroy(e)
}

// IsAlive reports whether a handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// Object resolves a handle.
func (w *World) Object(e Entity) (Object, bool) {
	if w == nil {
		return nil, false
	}
	return w.entities.get(e)
}

// InGroup reports whether e is currently a member of g.
func (w *World) InGroup(e Entity, g Group) bool {
	if w == nil || g >= groupCount {
		return false
	}
	return w.groups[g].Has(e)
}

// GroupsOf returns the groups e belongs to.
func (w *World) GroupsOf(e Entity) GroupSet {
	if w == nil {
		return 0
	}
	return w.member[e]
}

// Members returns a snapshot of g in insertion order.
func (w *World) Members(g Group) []Entity {
	if w == nil || g >= groupCount {
		return nil
	}
	return w.groups[g].Snapshot()
}

// Len returns the member count of g.
func (w *World) Len(g Group) int {
	if w == nil || g >= groupCount {
		return 0
	}
	return w.groups[g].Len()
}

// Count returns the number of live entities.
func (w *World) Count() int {
	if w == nil {
		return 0
	}
	return w.entities.count()
}

// ForEach calls fn for every member of g. It walks a snapshot, so fn may
// spawn or kill freely; members killed earlier in the pass are skipped.
func (w *World) ForEach(g Group, fn func(e Entity, obj Object)) {
	for _, e := range w.Members(g) {
		obj, ok := w.entities.get(e)
		if !ok {
			continue
		}
		fn(e, obj)
	}
}

// Colliders returns the movement hitboxes of every member of g.
func (w *World) Colliders(g Group) []common.Rect {
	out := make([]common.Rect, 0, w.Len(g))
	w.ForEach(g, func(_ Entity, obj Object) {
		if c, ok := obj.(Collider); ok {
			out = append(out, c.Hitbox())
			return
		}
		out = append(out, obj.Bounds())
	})
	return out
}

// View returns a read-only handle on one group.
func (w *World) View(g Group) View {
	return View{world: w, group: g}
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// View is a read-only window on one group, handed to entities that need to
// query a collection they do not own (e.g. obstacles for movement).
type View struct {
	world *World
	group Group
}

func (v View) Colliders() []common.Rect {
	return v.world.Colliders(v.group)
}

func (v View) Len() int {
	return v.world.Len(v.group)
}
