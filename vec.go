package mirrorverse

import (
	"fmt"
	"math"
	"strings"
)

// Vec is a direction or displacement in Dims-dimensional space.
type Vec [Dims]float64

func (v Vec) String() string {
	var sb strings.Builder
	sb.WriteRune('⟨')
	for i, c := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteRune('⟩')
	return sb.String()
}

// Dot returns the dot product of v and o.
func (v Vec) Dot(o Vec) float64 {
	var d float64
	for i := range v {
		d += v[i] * o[i]
	}
	return d
}

// Hypot returns the magnitude of the vector.
func (v Vec) Hypot() float64 {
	return math.Sqrt(v.Dot(v))
}

// Hypot2 returns the squared magnitude of the vector.
//
// This function is more efficient than squaring the result of [Vec.Hypot].
func (v Vec) Hypot2() float64 {
	return v.Dot(v)
}

// Lerp linearly interpolates between two vectors.
func (v Vec) Lerp(o Vec, t float64) Vec {
	// v + t * (o-v)
	return v.Add(o.Sub(v).Mul(t))
}

// Normalize returns a vector of magnitude 1.0 with the same direction as v.
// This produces a NaN vector if the magnitude is 0.
func (v Vec) Normalize() Vec {
	return v.Mul(1.0 / v.Hypot())
}

// Add adds two vectors and returns the resulting vector.
func (v Vec) Add(o Vec) Vec {
	for i := range v {
		v[i] += o[i]
	}
	return v
}

// Sub subtracts two vectors and returns the resulting vector.
func (v Vec) Sub(o Vec) Vec {
	for i := range v {
		v[i] -= o[i]
	}
	return v
}

func (v Vec) Mul(f float64) Vec {
	for i := range v {
		v[i] *= f
	}
	return v
}

func (v Vec) Div(f float64) Vec {
	for i := range v {
		v[i] /= f
	}
	return v
}

// Negate returns a new vector with the sign of every coordinate flipped.
func (v Vec) Negate() Vec {
	for i := range v {
		v[i] = -v[i]
	}
	return v
}

// IsNaN reports whether at least one coordinate is NaN.
func (v Vec) IsNaN() bool {
	for _, c := range v {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}
