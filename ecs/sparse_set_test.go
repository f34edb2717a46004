package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparseSetOrderedRemove(t *testing.T) {
	var s SparseSet
	es := []Entity{makeEntity(3, 0), makeEntity(1, 0), makeEntity(7, 2), makeEntity(2, 0)}
	for _, e := range es {
		assert.True(t, s.Insert(e))
	}
	assert.False(t, s.Insert(es[0]), "duplicate")
	assert.False(t, s.Insert(0), "zero handle")

	assert.True(t, s.Remove(es[1]))
	assert.False(t, s.Remove(es[1]))
	assert.Equal(t, []Entity{es[0], es[2], es[3]}, s.Snapshot())
	assert.True(t, s.Has(es[3]))
	assert.False(t, s.Has(makeEntity(7, 3)), "other generation")
	assert.Equal(t, 3, s.Len())
}
