package mathutil

import (
	"fmt"
	"math"
)

// Tuple is a homogeneous 4-component value. W=1 marks a point, W=0 a vector.
type Tuple struct {
	X, Y, Z, W float64
}

// Point returns a tuple with w=1.
func Point(x, y, z float64) Tuple {
	return Tuple{x, y, z, 1}
}

// Vector returns a tuple with w=0.
func Vector(x, y, z float64) Tuple {
	return Tuple{x, y, z, 0}
}

func (a Tuple) IsPoint() bool  { return a.W == 1 }
func (a Tuple) IsVector() bool { return a.W == 0 }

// Add sums component-wise. point+vector is a point, vector+vector a vector.
func (a Tuple) Add(b Tuple) Tuple {
	return Tuple{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

// Sub subtracts component-wise. point-point is a vector.
func (a Tuple) Sub(b Tuple) Tuple {
	return Tuple{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a Tuple) Neg() Tuple {
	return Tuple{-a.X, -a.Y, -a.Z, -a.W}
}

// Mul scales every component, w included.
func (a Tuple) Mul(s float64) Tuple {
	return Tuple{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div divides every component by s. Dividing by zero panics.
func (a Tuple) Div(s float64) Tuple {
	if s == 0 {
		panic("mathutil: tuple division by zero")
	}
	return Tuple{a.X / s, a.Y / s, a.Z / s, a.W / s}
}

func (a Tuple) Dot(b Tuple) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Cross is only meaningful for vectors; the result is always a vector.
func (a Tuple) Cross(b Tuple) Tuple {
	return Vector(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

// Magnitude is the Euclidean norm over all four components.
func (a Tuple) Magnitude() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z + a.W*a.W)
}

// Normalize returns a unit-length tuple, or the zero tuple when a has no length.
func (a Tuple) Normalize() Tuple {
	l := a.Magnitude()
	if l < 1e-12 {
		return Tuple{}
	}
	return Tuple{a.X / l, a.Y / l, a.Z / l, a.W / l}
}

// Reflect mirrors a about normal: a - normal*2*(a·normal).
func (a Tuple) Reflect(normal Tuple) Tuple {
	return a.Sub(normal.Mul(2 * a.Dot(normal)))
}

// ApproxEqual compares all four components within Epsilon.
func (a Tuple) ApproxEqual(b Tuple) bool {
	return ApproxEqual(a.X, b.X) && ApproxEqual(a.Y, b.Y) &&
		ApproxEqual(a.Z, b.Z) && ApproxEqual(a.W, b.W)
}

func (a Tuple) String() string {
	return fmt.Sprintf("(%.5g, %.5g, %.5g, %.5g)", a.X, a.Y, a.Z, a.W)
}
