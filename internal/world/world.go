// Package world ties objects and lights into a scene and resolves the colour
// seen along a ray, recursing for reflection and refraction.
package world

import (
	"math"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/lighting"
	"whitted-renderer/internal/mathutil"
)

// MaxDepth bounds the number of reflection and refraction bounces per
// camera ray. Both kinds of bounce draw from the same budget.
const MaxDepth = 5

// World is a scene. It must not be mutated while a render is in progress.
type World struct {
	Objects []*geometry.Object
	Lights  []lighting.Light

	// Background is returned for rays that hit nothing.
	Background colour.Colour
}

// New returns an empty world with a black background.
func New() *World {
	return &World{}
}

// Default returns the two-sphere reference world: a green-tinted unit sphere,
// a half-size white sphere inside it, and a white light at (-10, 10, -10).
func Default() *World {
	s1 := geometry.NewSphere()
	s1.Name = "outer"
	s1.Material.Colour = colour.New(0.8, 1.0, 0.6)
	s1.Material.Diffuse = 0.7
	s1.Material.Specular = 0.2

	s2 := geometry.NewSphere()
	s2.Name = "inner"
	if err := s2.SetTransform(mathutil.Scaling(0.5, 0.5, 0.5)); err != nil {
		panic(err)
	}

	return &World{
		Objects: []*geometry.Object{s1, s2},
		Lights:  []lighting.Light{lighting.NewPointLight(mathutil.Point(-10, 10, -10), colour.White)},
	}
}

// Add appends objects to the world.
func (w *World) Add(objs ...*geometry.Object) {
	w.Objects = append(w.Objects, objs...)
}

// AddLight appends a point light.
func (w *World) AddLight(l lighting.Light) {
	w.Lights = append(w.Lights, l)
}

// Intersect returns every intersection of r with the world, sorted by t.
func (w *World) Intersect(r geometry.Ray) geometry.Intersections {
	var all []geometry.Intersection
	for _, o := range w.Objects {
		all = append(all, r.Intersect(o)...)
	}
	return geometry.NewIntersections(all...)
}

// IsShadowed reports whether point is hidden from the first light. A world
// without lights shadows nothing.
func (w *World) IsShadowed(point mathutil.Tuple) bool {
	if len(w.Lights) == 0 {
		return false
	}
	return w.IsShadowedFrom(w.Lights[0], point)
}

// IsShadowedFrom reports whether an object lies between point and light.
func (w *World) IsShadowedFrom(light lighting.Light, point mathutil.Tuple) bool {
	v := light.Position.Sub(point)
	distance := v.Magnitude()
	r := geometry.NewRay(point, v.Normalize())
	hit, ok := w.Intersect(r).Hit()
	return ok && hit.T < distance
}

// ShadeHit returns the colour at a prepared hit: the Phong term of every
// light (each with its own shadow test) plus the reflected and refracted
// contributions. depth is the remaining bounce budget.
func (w *World) ShadeHit(comps geometry.Computations, depth int) colour.Colour {
	surface := colour.Black
	for _, l := range w.Lights {
		shadowed := w.IsShadowedFrom(l, comps.OverPoint)
		surface = surface.Add(lighting.Lighting(comps.Object, l, comps.OverPoint, comps.EyeV, comps.NormalV, shadowed))
	}
	reflected := w.ReflectedColour(comps, depth)
	refracted := w.RefractedColour(comps, depth)
	return surface.Add(reflected).Add(refracted)
}

// ColourAt traces r into the world.
func (w *World) ColourAt(r geometry.Ray, depth int) colour.Colour {
	xs := w.Intersect(r)
	hit, ok := xs.Hit()
	if !ok {
		return w.Background
	}
	return w.ShadeHit(r.PrepareComputations(hit, xs), depth)
}

// ReflectedColour follows the mirror ray from the hit. It is black for
// non-reflective surfaces and once depth is exhausted.
func (w *World) ReflectedColour(comps geometry.Computations, depth int) colour.Colour {
	reflective := comps.Object.Material.Reflective
	if depth <= 0 || reflective == 0 {
		return colour.Black
	}
	r := geometry.NewRay(comps.OverPoint, comps.ReflectV)
	return w.ColourAt(r, depth-1).Scale(reflective)
}

// RefractedColour follows the transmitted ray through the hit. It is black
// for opaque surfaces, once depth is exhausted, and under total internal
// reflection.
func (w *World) RefractedColour(comps geometry.Computations, depth int) colour.Colour {
	transparency := comps.Object.Material.Transparency
	if depth <= 0 || transparency == 0 {
		return colour.Black
	}

	// Snell's law: n1 sin(i) = n2 sin(t).
	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return colour.Black
	}
	cosT := math.Sqrt(1 - sin2T)
	direction := comps.NormalV.Mul(nRatio*cosI - cosT).Sub(comps.EyeV.Mul(nRatio))

	r := geometry.NewRay(comps.UnderPoint, direction)
	return w.ColourAt(r, depth-1).Scale(transparency)
}
