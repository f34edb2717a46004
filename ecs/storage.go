package ecs

// entityStore tracks entity generations and free ids. Slot i holds the
// generation of id i+1; id 0 is never issued.
type entityStore struct {
	gen     []generation
	objects []Object
	free    []entityID
}

func (s *entityStore) create(obj Object) Entity {
	var id entityID
	if n := len(s.free); n > 0 {
		id = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		s.gen = append(s.gen, 0)
		s.objects = append(s.objects, nil)
		id = entityID(len(s.gen))
	}
	s.objects[id-1] = obj
	return makeEntity(id, s.gen[id-1])
}

func (s *entityStore) destroy(e Entity) bool {
	if !s.isAlive(e) {
		return false
	}
	idx := e.id() - 1
	s.gen[idx]++
	s.objects[idx] = nil
	s.free = append(s.free, e.id())
	return true
}

func (s *entityStore) isAlive(e Entity) bool {
	id := e.id()
	if id == 0 || int(id) > len(s.gen) {
		return false
	}
	return s.gen[id-1] == e.generation()
}

func (s *entityStore) get(e Entity) (Object, bool) {
	if !s.isAlive(e) {
		return nil, false
	}
	return s.objects[e.id()-1], true
}

func (s *entityStore) count() int {
	return len(s.gen) - len(s.free)
}
