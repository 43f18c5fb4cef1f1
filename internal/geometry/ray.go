package geometry

import "whitted-renderer/internal/mathutil"

// Ray is a half-line from Origin along Direction. Direction need not be unit length.
type Ray struct {
	Origin    mathutil.Tuple
	Direction mathutil.Tuple
}

func NewRay(origin, direction mathutil.Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// Position returns origin + direction*t.
func (r Ray) Position(t float64) mathutil.Tuple {
	return r.Origin.Add(r.Direction.Mul(t))
}

// Transform applies m to both origin and direction.
func (r Ray) Transform(m mathutil.Mat4) Ray {
	return Ray{Origin: m.MulTuple(r.Origin), Direction: m.MulTuple(r.Direction)}
}

// Intersect returns every intersection of r with o, unsorted, in the order
// the shape produces them (ascending for a sphere).
func (r Ray) Intersect(o *Object) []Intersection {
	local := r.Transform(o.transform.Inv)
	ts := o.localIntersect(local)
	if len(ts) == 0 {
		return nil
	}
	xs := make([]Intersection, len(ts))
	for i, t := range ts {
		xs[i] = Intersection{T: t, Object: o}
	}
	return xs
}
