package mirrorverse

// Matrix is a Dims×Dims linear transform, applied to directions rather than
// positions. The matrices built by this package are reflections, which are
// orthogonal and their own inverse.
type Matrix [Dims][Dims]float64

// Identity returns the identity transform.
func Identity() Matrix {
	var m Matrix
	for i := range m {
		m[i][i] = 1
	}
	return m
}

// MulVec applies the transform to v.
func (m Matrix) MulVec(v Vec) Vec {
	var out Vec
	for i := range m {
		for j := range m[i] {
			out[i] += m[i][j] * v[j]
		}
	}
	return out
}

// TangentReflection returns the reflection across the line spanned by the
// unit vector axis: 2·aaᵀ − I. A direction parallel to the axis is kept,
// the perpendicular component is flipped. This is the transform a ray
// undergoes when bouncing off a thin reflective wire whose local tangent is
// the axis.
func TangentReflection(axis Vec) Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = 2 * axis[i] * axis[j]
		}
		m[i][i] -= 1
	}
	return m
}

// NormalReflection returns the reflection across the hyperplane whose unit
// normal is n: I − 2·nnᵀ. This is the classic surface bounce, flipping the
// component along the normal.
func NormalReflection(n Vec) Matrix {
	var m Matrix
	for i := range m {
		for j := range m[i] {
			m[i][j] = -2 * n[i] * n[j]
		}
		m[i][i] += 1
	}
	return m
}
