// Package lighting evaluates the Phong reflection model for point lights.
package lighting

import (
	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/mathutil"
)

// Light is a point light with no size and no falloff.
type Light struct {
	Position  mathutil.Tuple
	Intensity colour.Colour
}

func NewPointLight(position mathutil.Tuple, intensity colour.Colour) Light {
	return Light{Position: position, Intensity: intensity}
}
