package ecs

// SparseSet is an ordered set of entity ids. Membership tests are O(1) via the
// sparse index; the dense list keeps insertion order, and removals preserve
// the relative order of the remaining members.
type SparseSet struct {
	dense  []Entity
	sparse []int
}

func (s *SparseSet) index(e Entity) int {
	id := int(e.id())
	if id <= 0 || id-1 >= len(s.sparse) {
		return -1
	}
	idx := s.sparse[id-1]
	if idx < 0 || idx >= len(s.dense) || s.dense[idx] != e {
		return -1
	}
	return idx
}

// Has returns true if the entity exists in the set.
func (s *SparseSet) Has(e Entity) bool {
	return s != nil && s.index(e) >= 0
}

// Insert appends e. Inserting a member again is a no-op.
func (s *SparseSet) Insert(e Entity) bool {
	if s == nil || !e.Valid() || s.Has(e) {
		return false
	}
	id := int(e.id())
	for len(s.sparse) < id {
		s.sparse = append(s.sparse, -1)
	}
	s.dense = append(s.dense, e)
	s.sparse[id-1] = len(s.dense) - 1
	return true
}

// Remove deletes e if present.
func (s *SparseSet) Remove(e Entity) bool {
	if s == nil {
		return false
	}
	idx := s.index(e)
	if idx < 0 {
		return false
	}
	copy(s.dense[idx:], s.dense[idx+1:])
	s.dense = s.dense[:len(s.dense)-1]
	for i := idx; i < len(s.dense); i++ {
		s.sparse[s.dense[i].id()-1] = i
	}
	s.sparse[e.id()-1] = -1
	return true
}

// Len returns the number of members.
func (s *SparseSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.dense)
}

// Snapshot returns a copy of the members in insertion order.
func (s *SparseSet) Snapshot() []Entity {
	if s == nil || len(s.dense) == 0 {
		return nil
	}
	out := make([]Entity, len(s.dense))
	copy(out, s.dense)
	return out
}
