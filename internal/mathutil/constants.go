package mathutil

import "math"

// Epsilon is the tolerance for float comparisons and the offset used to lift
// shading points off a surface (over/under point).
const Epsilon = 1e-5

// determinantEpsilon bounds |det| below which a matrix counts as singular.
// A uniform scale s has det s³, so Epsilon itself would reject scales under ~0.02.
const determinantEpsilon = 1e-10

// ApproxEqual reports whether a and b differ by less than Epsilon.
func ApproxEqual(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Deg2Rad converts degrees to radians.
func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180
}
