// Package material describes how a surface responds to light: Phong
// coefficients, an optional procedural pattern, and reflection/refraction.
package material

import "whitted-renderer/internal/colour"

// Refractive indices of common media.
const (
	IndexVacuum  = 1.0
	IndexAir     = 1.00029
	IndexWater   = 1.333
	IndexGlass   = 1.5
	IndexDiamond = 2.417
)

// Material is owned by exactly one object and copied by value.
type Material struct {
	Colour          colour.Colour
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Pattern         *Pattern // nil = flat Colour
	Reflective      float64  // [0,1]
	Transparency    float64  // [0,1]
	RefractiveIndex float64
}

// Default returns a white, non-reflective, opaque material.
func Default() Material {
	return Material{
		Colour:          colour.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		RefractiveIndex: IndexVacuum,
	}
}

// Glass returns the default material made fully transparent with index 1.5.
func Glass() Material {
	m := Default()
	m.Transparency = 1
	m.RefractiveIndex = IndexGlass
	return m
}
