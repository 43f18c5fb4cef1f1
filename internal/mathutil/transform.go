package mathutil

// Transform pairs a matrix with its precomputed inverse so that hot paths
// (ray casting, normal mapping) never invert per call.
type Transform struct {
	M   Mat4
	Inv Mat4
	// InvT is the transposed inverse, used to carry normals back to world space.
	InvT Mat4
}

// IdentityTransform is the transform of a freshly built shape, pattern or camera.
func IdentityTransform() Transform {
	id := Mat4Identity()
	return Transform{M: id, Inv: id, InvT: id}
}

// NewTransform inverts m once. It returns ErrSingular for non-invertible input.
func NewTransform(m Mat4) (Transform, error) {
	inv, err := m.Inverse()
	if err != nil {
		return Transform{}, err
	}
	return Transform{M: m, Inv: inv, InvT: inv.Transpose()}, nil
}
