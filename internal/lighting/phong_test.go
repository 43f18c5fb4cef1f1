package lighting

import (
	"math"
	"testing"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/geometry"
	"whitted-renderer/internal/material"
	"whitted-renderer/internal/mathutil"
)

func TestLighting(t *testing.T) {
	h := math.Sqrt2 / 2
	tests := []struct {
		name     string
		eyev     mathutil.Tuple
		light    Light
		inShadow bool
		expected colour.Colour
	}{
		{
			name:     "eye between light and surface",
			eyev:     mathutil.Vector(0, 0, -1),
			light:    NewPointLight(mathutil.Point(0, 0, -10), colour.White),
			expected: colour.New(1.9, 1.9, 1.9),
		},
		{
			name:     "eye offset 45 degrees",
			eyev:     mathutil.Vector(0, h, -h),
			light:    NewPointLight(mathutil.Point(0, 0, -10), colour.White),
			expected: colour.New(1.0, 1.0, 1.0),
		},
		{
			name:     "light offset 45 degrees",
			eyev:     mathutil.Vector(0, 0, -1),
			light:    NewPointLight(mathutil.Point(0, 10, -10), colour.White),
			expected: colour.New(0.736396, 0.736396, 0.736396),
		},
		{
			name:     "eye in the reflection path",
			eyev:     mathutil.Vector(0, -h, -h),
			light:    NewPointLight(mathutil.Point(0, 10, -10), colour.White),
			expected: colour.New(1.636396, 1.636396, 1.636396),
		},
		{
			name:     "light behind the surface",
			eyev:     mathutil.Vector(0, 0, -1),
			light:    NewPointLight(mathutil.Point(0, 0, 10), colour.White),
			expected: colour.New(0.1, 0.1, 0.1),
		},
		{
			name:     "surface in shadow",
			eyev:     mathutil.Vector(0, 0, -1),
			light:    NewPointLight(mathutil.Point(0, 0, -10), colour.White),
			inShadow: true,
			expected: colour.New(0.1, 0.1, 0.1),
		},
	}

	normalv := mathutil.Vector(0, 0, -1)
	origin := mathutil.Point(0, 0, 0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := geometry.NewSphere()
			got := Lighting(o, tt.light, origin, tt.eyev, normalv, tt.inShadow)
			if !got.ApproxEqual(tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestLighting_SpecularOnly(t *testing.T) {
	o := geometry.NewSphere()
	o.Material.Ambient = 0
	o.Material.Diffuse = 0
	o.Material.Specular = 0.5
	light := NewPointLight(mathutil.Point(0, 0, -10), colour.White)
	got := Lighting(o, light, mathutil.Point(0, 0, 0), mathutil.Vector(0, 0, -1), mathutil.Vector(0, 0, -1), false)
	if !got.ApproxEqual(colour.New(0.5, 0.5, 0.5)) {
		t.Errorf("Expected (0.5,0.5,0.5), got %v", got)
	}
}

func TestLighting_WithPattern(t *testing.T) {
	o := geometry.NewTestShape()
	o.Material.Pattern = material.NewStripe(colour.White, colour.Black)
	o.Material.Ambient = 1
	o.Material.Diffuse = 0
	o.Material.Specular = 0
	eyev := mathutil.Vector(0, 0, -1)
	normalv := mathutil.Vector(0, 0, -1)
	light := NewPointLight(mathutil.Point(0, 0, -10), colour.White)

	if c := Lighting(o, light, mathutil.Point(0.9, 0, 0), eyev, normalv, false); c != colour.White {
		t.Errorf("Expected white at x=0.9, got %v", c)
	}
	if c := Lighting(o, light, mathutil.Point(1.1, 0, 0), eyev, normalv, false); c != colour.Black {
		t.Errorf("Expected black at x=1.1, got %v", c)
	}
}

func TestLighting_TintedLight(t *testing.T) {
	o := geometry.NewSphere()
	o.Material.Ambient = 1
	o.Material.Diffuse = 0
	o.Material.Specular = 0
	o.Material.Colour = colour.New(1, 0.5, 0.25)
	light := NewPointLight(mathutil.Point(0, 0, -10), colour.New(0.5, 1, 1))
	got := Lighting(o, light, mathutil.Point(0, 0, 0), mathutil.Vector(0, 0, -1), mathutil.Vector(0, 0, -1), false)
	if !got.ApproxEqual(colour.New(0.5, 0.5, 0.25)) {
		t.Errorf("Expected light intensity to tint the surface, got %v", got)
	}
}
