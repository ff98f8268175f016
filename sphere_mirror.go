package mirrorverse

import (
	"encoding/json"
	"fmt"
	"math"
)

// KindSphere is the scene-file identifier of [SphereMirror].
const KindSphere = "sphere"

// SphereMirror is a reflective hypersphere. Unlike the curve mirrors, it is
// a filled surface and reflects across the tangent hyperplane at the hit
// point, using the surface normal.
//
// The zero value unmarshals from JSON of the form
//
//	{"center": [x0, ...], "radius": r}
type SphereMirror struct {
	center Point
	radius float64
}

var _ Mirror = (*SphereMirror)(nil)

// NewSphereMirror returns the mirror centered at center with the given
// radius, which must be positive and finite.
func NewSphereMirror(center Point, radius float64) (*SphereMirror, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: sphere radius must be positive and finite, got %g", ErrMalformedInput, radius)
	}
	return &SphereMirror{center: center, radius: radius}, nil
}

// Center returns the sphere's center.
func (m *SphereMirror) Center() Point {
	return m.center
}

// Radius returns the sphere's radius.
func (m *SphereMirror) Radius() float64 {
	return m.radius
}

// Kind implements [Mirror].
func (m *SphereMirror) Kind() string {
	return KindSphere
}

// Reflect implements [Mirror]. Substituting the ray into
// ‖p − center‖² = r² gives a quadratic in the distance, solved in closed
// form; [SolveQuadratic] already returns the roots in ascending order.
func (m *SphereMirror) Reflect(ray Ray) []Intersection {
	w := ray.Origin.Sub(m.center)
	c0 := w.Hypot2() - m.radius*m.radius
	c1 := 2 * w.Dot(ray.Dir)
	roots, n := SolveQuadratic(c0, c1, 1)
	out := make([]Intersection, 0, n)
	for _, d := range roots[:n] {
		if d < 0 {
			if d < -DefaultAccuracy {
				continue
			}
			d = 0
		}
		normal := ray.At(d).Sub(m.center).Normalize()
		out = append(out, Intersection{
			Distance:  d,
			Transform: NormalReflection(normal),
		})
	}
	return out
}

type sphereMirrorJSON struct {
	Center []float64 `json:"center"`
	Radius float64   `json:"radius"`
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (m *SphereMirror) UnmarshalJSON(data []byte) error {
	var cfg sphereMirrorJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	center, err := pointFromCoords(cfg.Center)
	if err != nil {
		return err
	}
	built, err := NewSphereMirror(center, cfg.Radius)
	if err != nil {
		return err
	}
	*m = *built
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler].
func (m *SphereMirror) MarshalJSON() ([]byte, error) {
	return json.Marshal(sphereMirrorJSON{Center: m.center[:], Radius: m.radius})
}
