package geometry

import (
	"math"
	"slices"
	"testing"

	"whitted-renderer/internal/mathutil"
)

func TestRay_Position(t *testing.T) {
	r := NewRay(mathutil.Point(2, 3, 4), mathutil.Vector(1, 0, 0))
	tests := []struct {
		t        float64
		expected mathutil.Tuple
	}{
		{0, mathutil.Point(2, 3, 4)},
		{1, mathutil.Point(3, 3, 4)},
		{-1, mathutil.Point(1, 3, 4)},
		{2.5, mathutil.Point(4.5, 3, 4)},
	}
	for _, tt := range tests {
		if got := r.Position(tt.t); got != tt.expected {
			t.Errorf("Position(%v): expected %v, got %v", tt.t, tt.expected, got)
		}
	}
}

func TestRay_Transform(t *testing.T) {
	r := NewRay(mathutil.Point(1, 2, 3), mathutil.Vector(0, 1, 0))

	moved := r.Transform(mathutil.Translation(3, 4, 5))
	assertTuple(t, "translated origin", moved.Origin, mathutil.Point(4, 6, 8))
	assertTuple(t, "translated direction", moved.Direction, mathutil.Vector(0, 1, 0))

	scaled := r.Transform(mathutil.Scaling(2, 3, 4))
	assertTuple(t, "scaled origin", scaled.Origin, mathutil.Point(2, 6, 12))
	assertTuple(t, "scaled direction", scaled.Direction, mathutil.Vector(0, 3, 0))

	if r.Origin != mathutil.Point(1, 2, 3) {
		t.Errorf("Transform must not modify the original ray")
	}
}

func TestRay_IntersectSphere(t *testing.T) {
	tests := []struct {
		name     string
		origin   mathutil.Tuple
		expected []float64
	}{
		{"through center", mathutil.Point(0, 0, -5), []float64{4, 6}},
		{"tangent", mathutil.Point(0, 1, -5), []float64{5, 5}},
		{"miss", mathutil.Point(0, 2, -5), []float64{}},
		{"inside", mathutil.Point(0, 0, 0), []float64{-1, 1}},
		{"behind", mathutil.Point(0, 0, 5), []float64{-6, -4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSphere()
			xs := NewRay(tt.origin, mathutil.Vector(0, 0, 1)).Intersect(s)
			if got := ts(xs); !slices.Equal(got, tt.expected) {
				t.Errorf("Expected t=%v, got %v", tt.expected, got)
			}
			for _, x := range xs {
				if x.Object != s {
					t.Errorf("Intersection should reference the sphere")
				}
			}
		})
	}
}

func TestRay_IntersectTransformedSphere(t *testing.T) {
	r := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1))

	scaled := NewSphere()
	mustSetTransform(t, scaled, mathutil.Scaling(2, 2, 2))
	if got := ts(r.Intersect(scaled)); !slices.Equal(got, []float64{3, 7}) {
		t.Errorf("Scaled sphere: expected [3 7], got %v", got)
	}

	moved := NewSphere()
	mustSetTransform(t, moved, mathutil.Translation(5, 0, 0))
	if xs := r.Intersect(moved); len(xs) != 0 {
		t.Errorf("Translated sphere: expected miss, got %v", ts(xs))
	}
}

func TestRay_IntersectPlane(t *testing.T) {
	tests := []struct {
		name      string
		transform mathutil.Mat4
		ray       Ray
		expected  []float64
	}{
		{"parallel", mathutil.Mat4Identity(), NewRay(mathutil.Point(0, 10, 0), mathutil.Vector(0, 0, 1)), []float64{}},
		{"coplanar", mathutil.Mat4Identity(), NewRay(mathutil.Point(0, 0, 0), mathutil.Vector(0, 0, 1)), []float64{}},
		{"from above", mathutil.Translation(0, -1, 0), NewRay(mathutil.Point(0, 1, 0), mathutil.Vector(0, -1, 0)), []float64{2}},
		{"from below", mathutil.Mat4Identity(), NewRay(mathutil.Point(0, -1, 0), mathutil.Vector(0, 1, 0)), []float64{1}},
		// Parallel in world space but not once the plane is tilted.
		{"tilted", mathutil.RotZ(math.Pi / 2), NewRay(mathutil.Point(-2, 0, 0), mathutil.Vector(1, 0, 0)), []float64{2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlane()
			mustSetTransform(t, p, tt.transform)
			got := ts(tt.ray.Intersect(p))
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if !mathutil.ApproxEqual(got[i], tt.expected[i]) {
					t.Errorf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestRay_IntersectTestShape(t *testing.T) {
	o := NewTestShape()
	if xs := NewRay(mathutil.Point(0, 0, -5), mathutil.Vector(0, 0, 1)).Intersect(o); len(xs) != 0 {
		t.Errorf("Test shape should never be hit, got %v", ts(xs))
	}
}
