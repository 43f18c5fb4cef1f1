package geometry

import (
	"slices"

	"whitted-renderer/internal/mathutil"
)

// Computations is the shading context of a hit.
type Computations struct {
	T      float64
	Object *Object

	Point   mathutil.Tuple
	EyeV    mathutil.Tuple
	NormalV mathutil.Tuple
	Inside  bool // ray started inside the object; NormalV was flipped

	// OverPoint sits just above the surface (shadow and reflection rays start here),
	// UnderPoint just below it (refraction rays start here).
	OverPoint  mathutil.Tuple
	UnderPoint mathutil.Tuple
	ReflectV   mathutil.Tuple

	// N1 is the refractive index of the medium being left, N2 of the one entered.
	N1, N2 float64
}

// PrepareComputations derives the shading context for hit, which must be an
// element of xs (matched by T and object). xs must be sorted.
func (r Ray) PrepareComputations(hit Intersection, xs Intersections) Computations {
	point := r.Position(hit.T)
	eyev := r.Direction.Neg()
	normalv := hit.Object.NormalAt(point)
	inside := false
	if normalv.Dot(eyev) < 0 {
		inside = true
		normalv = normalv.Neg()
	}
	offset := normalv.Mul(mathutil.Epsilon)

	comps := Computations{
		T:          hit.T,
		Object:     hit.Object,
		Point:      point,
		EyeV:       eyev,
		NormalV:    normalv,
		Inside:     inside,
		OverPoint:  point.Add(offset),
		UnderPoint: point.Sub(offset),
		ReflectV:   r.Direction.Reflect(normalv),
	}
	comps.N1, comps.N2 = refractiveIndices(hit, xs)
	return comps
}

// refractiveIndices walks xs keeping a stack of the objects the ray is inside.
// Entering an object pushes it, leaving removes it.
func refractiveIndices(hit Intersection, xs Intersections) (n1, n2 float64) {
	n1, n2 = 1, 1
	var containers []*Object
	for _, x := range xs {
		isHit := x.T == hit.T && x.Object == hit.Object
		if isHit {
			n1 = topIndex(containers)
		}
		if i := slices.Index(containers, x.Object); i >= 0 {
			containers = slices.Delete(containers, i, i+1)
		} else {
			containers = append(containers, x.Object)
		}
		if isHit {
			n2 = topIndex(containers)
			break
		}
	}
	return n1, n2
}

func topIndex(containers []*Object) float64 {
	if len(containers) == 0 {
		return 1
	}
	return containers[len(containers)-1].Material.RefractiveIndex
}
