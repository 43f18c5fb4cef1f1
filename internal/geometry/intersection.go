package geometry

import (
	"cmp"
	"slices"
)

// Intersection is a hit at parameter T along a ray.
type Intersection struct {
	T      float64
	Object *Object
}

func NewIntersection(t float64, o *Object) Intersection {
	return Intersection{T: t, Object: o}
}

// Compare orders intersections by T with a NaN-safe total order.
// Intersections at equal T compare equal regardless of object.
func (i Intersection) Compare(j Intersection) int {
	return cmp.Compare(i.T, j.T)
}

// Intersections is a list kept sorted ascending by T.
type Intersections []Intersection

// NewIntersections sorts xs in place and returns it. Ties keep their input order.
func NewIntersections(xs ...Intersection) Intersections {
	slices.SortStableFunc(xs, Intersection.Compare)
	return Intersections(xs)
}

// Hit returns the nearest intersection in front of the ray origin (T > 0).
func (xs Intersections) Hit() (Intersection, bool) {
	for _, x := range xs {
		if x.T > 0 {
			return x, true
		}
	}
	return Intersection{}, false
}
