package common

import "github.com/jakecoffman/cp"

// Rect is an axis-aligned rectangle in world pixels anchored at its top-left.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, Width: w, Height: h}
}

// RectAround returns a w×h rect centered on c.
func RectAround(c cp.Vector, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

// Intersects uses open edges: rects that only touch do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

func (r Rect) Min() cp.Vector {
	return cp.Vector{X: r.X, Y: r.Y}
}

func (r Rect) Center() cp.Vector {
	return cp.Vector{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Inflate grows the rect by dw, dh keeping its center. Negative values shrink it.
func (r Rect) Inflate(dw, dh float64) Rect {
	return Rect{X: r.X - dw/2, Y: r.Y - dh/2, Width: r.Width + dw, Height: r.Height + dh}
}

// WithCenter returns the rect moved so its center is c.
func (r Rect) WithCenter(c cp.Vector) Rect {
	r.X = c.X - r.Width/2
	r.Y = c.Y - r.Height/2
	return r
}

func (r Rect) Translate(v cp.Vector) Rect {
	r.X += v.X
	r.Y += v.Y
	return r
}
