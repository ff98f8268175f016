package mirrorverse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// pt builds a Point from the given coordinates, padding with zeros, so
// low-dimensional fixtures keep working when Dims is raised.
func pt(coords ...float64) Point {
	var p Point
	copy(p[:], coords)
	return p
}

// vec builds a Vec the same way pt builds a Point.
func vec(coords ...float64) Vec {
	var v Vec
	copy(v[:], coords)
	return v
}

func assertNear(t *testing.T, want, got Point, eps float64) {
	t.Helper()
	if want.Distance(got) > eps {
		t.Errorf("got %v, want %v (within %g)", got, want, eps)
	}
}

func assertNearVec(t *testing.T, want, got Vec, eps float64) {
	t.Helper()
	if want.Sub(got).Hypot() > eps {
		t.Errorf("got %v, want %v (within %g)", got, want, eps)
	}
}
