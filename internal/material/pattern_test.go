package material

import (
	"testing"

	"whitted-renderer/internal/colour"
	"whitted-renderer/internal/mathutil"
)

func TestDefault(t *testing.T) {
	m := Default()
	if m.Colour != colour.White {
		t.Errorf("Expected white, got %v", m.Colour)
	}
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("Unexpected Phong coefficients: %+v", m)
	}
	if m.Pattern != nil || m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("Unexpected optical properties: %+v", m)
	}
}

func TestPattern_Stripe(t *testing.T) {
	p := NewStripe(colour.White, colour.Black)
	tests := []struct {
		name     string
		pt       mathutil.Tuple
		expected colour.Colour
	}{
		{"constant in y", mathutil.Point(0, 1, 0), colour.White},
		{"constant in z", mathutil.Point(0, 0, 2), colour.White},
		{"x 0", mathutil.Point(0, 0, 0), colour.White},
		{"x 0.9", mathutil.Point(0.9, 0, 0), colour.White},
		{"x 1", mathutil.Point(1, 0, 0), colour.Black},
		{"x -0.1", mathutil.Point(-0.1, 0, 0), colour.Black},
		{"x -1", mathutil.Point(-1, 0, 0), colour.Black},
		{"x -1.1", mathutil.Point(-1.1, 0, 0), colour.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.At(tt.pt); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_Gradient(t *testing.T) {
	p := NewGradient(colour.White, colour.Black)
	tests := []struct {
		x        float64
		expected colour.Colour
	}{
		{0, colour.White},
		{0.25, colour.New(0.75, 0.75, 0.75)},
		{0.5, colour.New(0.5, 0.5, 0.5)},
		{0.75, colour.New(0.25, 0.25, 0.25)},
	}
	for _, tt := range tests {
		if got := p.At(mathutil.Point(tt.x, 0, 0)); !got.ApproxEqual(tt.expected) {
			t.Errorf("x=%v: expected %v, got %v", tt.x, tt.expected, got)
		}
	}
}

func TestPattern_Ring(t *testing.T) {
	p := NewRing(colour.White, colour.Black)
	tests := []struct {
		pt       mathutil.Tuple
		expected colour.Colour
	}{
		{mathutil.Point(0, 0, 0), colour.White},
		{mathutil.Point(1, 0, 0), colour.Black},
		{mathutil.Point(0, 0, 1), colour.Black},
		{mathutil.Point(0.708, 0, 0.708), colour.Black},
	}
	for _, tt := range tests {
		if got := p.At(tt.pt); got != tt.expected {
			t.Errorf("At(%v): expected %v, got %v", tt.pt, tt.expected, got)
		}
	}
}

func TestPattern_Checkers(t *testing.T) {
	p := NewCheckers(colour.White, colour.Black)
	tests := []struct {
		name     string
		pt       mathutil.Tuple
		expected colour.Colour
	}{
		{"repeats in x", mathutil.Point(0.99, 0, 0), colour.White},
		{"repeats in x next cell", mathutil.Point(1.01, 0, 0), colour.Black},
		{"repeats in y", mathutil.Point(0, 0.99, 0), colour.White},
		{"repeats in y next cell", mathutil.Point(0, 1.01, 0), colour.Black},
		{"repeats in z", mathutil.Point(0, 0, 0.99), colour.White},
		{"repeats in z next cell", mathutil.Point(0, 0, 1.01), colour.Black},
		// A plane at y=0 may report y as a tiny negative number.
		{"noise below face", mathutil.Point(0.5, -1e-9, 0.5), colour.White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.At(tt.pt); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestPattern_Transform(t *testing.T) {
	p := NewStripe(colour.White, colour.Black)
	if !p.Transform().IsIdentity() {
		t.Errorf("Default pattern transform should be identity")
	}
	if err := p.SetTransform(mathutil.Scaling(2, 2, 2)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := p.AtObject(mathutil.Point(1.5, 0, 0)); got != colour.White {
		t.Errorf("Scaled stripe at x=1.5 should be white, got %v", got)
	}
	if err := p.SetTransform(mathutil.Scaling(0, 1, 1)); err == nil {
		t.Error("Expected an error for a singular pattern transform")
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{Stripe, Gradient, Ring, Checkers} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if _, err := ParseKind("marble"); err == nil {
		t.Error("Expected error for unknown pattern name")
	}
}
