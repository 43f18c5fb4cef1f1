// Package geometry holds renderable objects, rays and the intersection
// engine that connects them.
package geometry

import (
	"fmt"
	"math"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/material"
	"whitted-renderer/internal/mathutil"
)

// Kind is the closed set of shapes. Intersection and normal math switch on it.
type Kind int

const (
	Sphere Kind = iota // unit sphere at the origin
	Plane              // xz-plane through the origin, normal +y
	Test               // never hit; lets material/lighting code be tested in isolation
)

func (k Kind) String() string {
	switch k {
	case Sphere:
		return "sphere"
	case Plane:
		return "plane"
	case Test:
		return "test"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Object is a shape in canonical local space, placed in the world by its
// transform. Build objects with the New* constructors; mutate material and
// transform only before rendering starts.
type Object struct {
	Kind     Kind
	Material material.Material
	Name     string

	transform mathutil.Transform
}

func newObject(kind Kind) *Object {
	return &Object{
		Kind:      kind,
		Material:  material.Default(),
		transform: mathutil.IdentityTransform(),
	}
}

func NewSphere() *Object    { return newObject(Sphere) }
func NewPlane() *Object     { return newObject(Plane) }
func NewTestShape() *Object { return newObject(Test) }

// NewGlassSphere returns a unit sphere with a fully transparent, index 1.5 material.
func NewGlassSphere() *Object {
	o := newObject(Sphere)
	o.Material = material.Glass()
	return o
}

// SetTransform places the object in the world. A singular matrix is rejected
// and leaves the previous transform in place.
func (o *Object) SetTransform(m mathutil.Mat4) error {
	tr, err := mathutil.NewTransform(m)
	if err != nil {
		return fmt.Errorf("geometry: %s transform: %w", o.Kind, err)
	}
	o.transform = tr
	return nil
}

// Transform returns the object-to-world matrix.
func (o *Object) Transform() mathutil.Mat4 {
	return o.transform.M
}

// WorldToObject maps a world-space point or vector into object space.
func (o *Object) WorldToObject(t mathutil.Tuple) mathutil.Tuple {
	return o.transform.Inv.MulTuple(t)
}

// NormalAt returns the unit surface normal at a world-space point.
func (o *Object) NormalAt(worldPoint mathutil.Tuple) mathutil.Tuple {
	local := o.WorldToObject(worldPoint)
	n := o.transform.InvT.MulTuple(o.localNormalAt(local))
	// The transposed inverse can leak translation into w.
	n.W = 0
	return n.Normalize()
}

func (o *Object) localNormalAt(p mathutil.Tuple) mathutil.Tuple {
	switch o.Kind {
	case Sphere:
		return p.Sub(mathutil.Point(0, 0, 0))
	case Plane:
		return mathutil.Vector(0, 1, 0)
	}
	return mathutil.Point(0, 0, 0)
}

// PatternAt returns the surface colour at a world-space point: the pattern
// evaluated through object and pattern transforms, or the flat colour.
func (o *Object) PatternAt(worldPoint mathutil.Tuple) colour.Colour {
	if o.Material.Pattern == nil {
		return o.Material.Colour
	}
	return o.Material.Pattern.AtObject(o.WorldToObject(worldPoint))
}

// localIntersect returns the t values where a ray, already in object space,
// meets the shape.
func (o *Object) localIntersect(r Ray) []float64 {
	switch o.Kind {
	case Sphere:
		sphereToRay := r.Origin.Sub(mathutil.Point(0, 0, 0))
		a := r.Direction.Dot(r.Direction)
		b := 2 * r.Direction.Dot(sphereToRay)
		c := sphereToRay.Dot(sphereToRay) - 1
		disc := b*b - 4*a*c
		if disc < 0 {
			return nil
		}
		sq := math.Sqrt(disc)
		// Tangent rays still report two (equal) roots.
		return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
	case Plane:
		// Parallel and coplanar rays both miss.
		if math.Abs(r.Direction.Y) < mathutil.Epsilon {
			return nil
		}
		return []float64{-r.Origin.Y / r.Direction.Y}
	}
	return nil
}
