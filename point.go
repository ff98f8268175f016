package mirrorverse

import (
	"fmt"
	"math"
	"strings"
)

// Dims is the dimension of the space every geometric type in this package
// lives in. It is fixed at compile time; change it and recompile to simulate
// in a different dimension.
const Dims = 2

// Point is a position in Dims-dimensional space.
type Point [Dims]float64

func (pt Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, c := range pt {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", c)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Translate returns the point moved by v.
func (pt Point) Translate(v Vec) Point {
	for i := range pt {
		pt[i] += v[i]
	}
	return pt
}

// Sub computes pt−o.
// To subtract a vector from pt, use Translate and negate the vector.
func (pt Point) Sub(o Point) Vec {
	var v Vec
	for i := range v {
		v[i] = pt[i] - o[i]
	}
	return v
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	return pt.Translate(o.Sub(pt).Mul(t))
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	for i := range pt {
		pt[i] = 0.5 * (pt[i] + o[i])
	}
	return pt
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return pt.Sub(o).Hypot()
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	return pt.Sub(o).Hypot2()
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	for _, c := range pt {
		if math.IsInf(c, 0) {
			return true
		}
	}
	return false
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	for _, c := range pt {
		if math.IsNaN(c) {
			return true
		}
	}
	return false
}
