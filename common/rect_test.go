package common

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
)

func TestRectIntersects(t *testing.T) {
	a := NewRect(0, 0, 64, 64)
	cases := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlap", NewRect(32, 32, 64, 64), true},
		{"touching edge", NewRect(64, 0, 64, 64), false},
		{"inside", NewRect(10, 10, 5, 5), true},
		{"apart", NewRect(200, 200, 10, 10), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, a.Intersects(c.other))
			assert.Equal(t, c.want, c.other.Intersects(a))
		})
	}
}

func TestRectInflateKeepsCenter(t *testing.T) {
	r := NewRect(10, 20, 64, 64)
	in := r.Inflate(-6, -26)
	assert.Equal(t, r.Center(), in.Center())
	assert.Equal(t, 58.0, in.Width)
	assert.Equal(t, 38.0, in.Height)
}

func TestRectWithCenterAndTranslate(t *testing.T) {
	r := NewRect(0, 0, 10, 20).WithCenter(cp.Vector{X: 100, Y: 100})
	assert.Equal(t, NewRect(95, 90, 10, 20), r)
	assert.Equal(t, NewRect(96, 88, 10, 20), r.Translate(cp.Vector{X: 1, Y: -2}))
	assert.Equal(t, RectAround(cp.Vector{X: 100, Y: 100}, 10, 20), r)
	assert.True(t, r.Contains(95, 90))
	assert.False(t, r.Contains(105, 90))
}

func TestDirection(t *testing.T) {
	dir, dist := Direction(cp.Vector{}, cp.Vector{X: 3, Y: 4})
	assert.Equal(t, 5.0, dist)
	assert.InDelta(t, 0.6, dir.X, 1e-9)
	assert.InDelta(t, 0.8, dir.Y, 1e-9)

	dir, dist = Direction(cp.Vector{X: 1, Y: 1}, cp.Vector{X: 1, Y: 1})
	assert.Zero(t, dist)
	assert.Equal(t, cp.Vector{}, dir)
}

func TestLerp(t *testing.T) {
	assert.Equal(t, float32(50), Lerp(0, 200, 0.25))
}
