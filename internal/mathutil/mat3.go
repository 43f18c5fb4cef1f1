package mathutil

// Mat2 is a 2×2 matrix stored row-major.
type Mat2 [4]float64

func (m Mat2) Det() float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// Mat3 is a 3×3 matrix stored row-major: [r0c0, r0c1, r0c2, r1c0, ...].
// Only used as a minor of Mat4.
type Mat3 [9]float64

// Submatrix drops row and col.
func (m Mat3) Submatrix(row, col int) Mat2 {
	checkIndex(row, col, 3)
	var s Mat2
	i := 0
	for r := 0; r < 3; r++ {
		if r == row {
			continue
		}
		for c := 0; c < 3; c++ {
			if c == col {
				continue
			}
			s[i] = m[r*3+c]
			i++
		}
	}
	return s
}

func (m Mat3) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Det()
}

func (m Mat3) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Det expands along the first row.
func (m Mat3) Det() float64 {
	var d float64
	for c := 0; c < 3; c++ {
		d += m[c] * m.Cofactor(0, c)
	}
	return d
}

func checkIndex(row, col, n int) {
	if row < 0 || row >= n || col < 0 || col >= n {
		panic("mathutil: matrix index out of range")
	}
}
