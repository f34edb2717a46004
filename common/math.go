package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

// Direction returns the unit vector from a to b and the distance between them.
// A zero distance yields a zero direction.
func Direction(from, to cp.Vector) (cp.Vector, float64) {
	d := to.Sub(from)
	dist := d.Length()
	if dist == 0 {
		return cp.Vector{}, 0
	}
	return d.Mult(1 / dist), dist
}
