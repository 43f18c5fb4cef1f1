package geometry

import (
	"testing"

	"whitted-renderer/internal/mathutil"
)

func mustSetTransform(t *testing.T, o *Object, m mathutil.Mat4) {
	t.Helper()
	if err := o.SetTransform(m); err != nil {
		t.Fatalf("SetTransform: %v", err)
	}
}

func assertTuple(t *testing.T, name string, got, expected mathutil.Tuple) {
	t.Helper()
	if !got.ApproxEqual(expected) {
		t.Errorf("%s: expected %v, got %v", name, expected, got)
	}
}

func ts(xs []Intersection) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = x.T
	}
	return out
}
