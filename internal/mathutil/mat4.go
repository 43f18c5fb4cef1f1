package mathutil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrSingular is returned when inverting a matrix whose determinant is (near) zero.
var ErrSingular = errors.New("mathutil: matrix is not invertible")

// Mat4 is a 4×4 matrix stored row-major. Value type, copied freely.
type Mat4 [16]float64

func Mat4Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// At returns the element at (row, col). Out-of-range indices panic.
func (m Mat4) At(row, col int) float64 {
	checkIndex(row, col, 4)
	return m[row*4+col]
}

// Set writes the element at (row, col). Out-of-range indices panic.
func (m *Mat4) Set(row, col int, v float64) {
	checkIndex(row, col, 4)
	m[row*4+col] = v
}

// Mul returns m × b.
func (m Mat4) Mul(b Mat4) Mat4 {
	var r Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i*4+j] = m[i*4+0]*b[0*4+j] + m[i*4+1]*b[1*4+j] +
				m[i*4+2]*b[2*4+j] + m[i*4+3]*b[3*4+j]
		}
	}
	return r
}

// Compose multiplies left to right, so Compose(c, b, a) applied to a point
// runs a first. No arguments yields the identity.
func Compose(ms ...Mat4) Mat4 {
	r := Mat4Identity()
	for _, m := range ms {
		r = r.Mul(m)
	}
	return r
}

// MulTuple returns m × t. Vectors (w=0) are unaffected by translation.
func (m Mat4) MulTuple(t Tuple) Tuple {
	return Tuple{
		m[0]*t.X + m[1]*t.Y + m[2]*t.Z + m[3]*t.W,
		m[4]*t.X + m[5]*t.Y + m[6]*t.Z + m[7]*t.W,
		m[8]*t.X + m[9]*t.Y + m[10]*t.Z + m[11]*t.W,
		m[12]*t.X + m[13]*t.Y + m[14]*t.Z + m[15]*t.W,
	}
}

func (m Mat4) Transpose() Mat4 {
	return Mat4{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Submatrix drops row and col.
func (m Mat4) Submatrix(row, col int) Mat3 {
	checkIndex(row, col, 4)
	var s Mat3
	i := 0
	for r := 0; r < 4; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 4; c++ {
			if c == col {
				continue
			}
			s[i] = m[r*4+c]
			i++
		}
	}
	return s
}

func (m Mat4) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Det()
}

func (m Mat4) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Det expands along the first row.
func (m Mat4) Det() float64 {
	var d float64
	for c := 0; c < 4; c++ {
		d += m[c] * m.Cofactor(0, c)
	}
	return d
}

func (m Mat4) Invertible() bool {
	return math.Abs(m.Det()) > determinantEpsilon
}

// Inverse returns the adjugate divided by the determinant.
// Cofactor (r, c) is written to (c, r), which folds in the transpose.
func (m Mat4) Inverse() (Mat4, error) {
	d := m.Det()
	if math.Abs(d) <= determinantEpsilon {
		return Mat4{}, ErrSingular
	}
	var inv Mat4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			inv[c*4+r] = m.Cofactor(r, c) / d
		}
	}
	return inv, nil
}

// MustInverse is Inverse for matrices known to be invertible; it panics otherwise.
func (m Mat4) MustInverse() Mat4 {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// ApproxEqual compares element-wise within Epsilon.
func (m Mat4) ApproxEqual(b Mat4) bool {
	for i := 0; i < 16; i++ {
		if !ApproxEqual(m[i], b[i]) {
			return false
		}
	}
	return true
}

// IsIdentity checks if the matrix is approximately identity.
func (m Mat4) IsIdentity() bool {
	return m.ApproxEqual(Mat4Identity())
}

func (m Mat4) String() string {
	var sb strings.Builder
	for r := 0; r < 4; r++ {
		fmt.Fprintf(&sb, "| %9.5f %9.5f %9.5f %9.5f |\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}
	return sb.String()
}
