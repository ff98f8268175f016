package mirrorverse

import (
	"encoding/json"
	"fmt"
	"math"
)

// KindPlane is the scene-file identifier of [PlaneMirror].
const KindPlane = "plane"

// PlaneMirror is a straight segment acting as a mirror, the degree-1 special
// case of [BezierMirror] with a closed-form intersection. Like the curved
// mirrors it reflects across its own direction, not across a surface normal.
//
// The zero value unmarshals from JSON of the form
//
//	{"points": [[x0, ...], [x1, ...]]}
type PlaneMirror struct {
	a, b Point
	refl Matrix // reflection across the segment direction, fixed per mirror
}

var _ Mirror = (*PlaneMirror)(nil)

// NewPlaneMirror returns the mirror spanning the segment from a to b. The
// endpoints must be distinct.
func NewPlaneMirror(a, b Point) (*PlaneMirror, error) {
	e := b.Sub(a)
	if e.Hypot2() == 0 {
		return nil, fmt.Errorf("%w: plane mirror endpoints coincide", ErrMalformedInput)
	}
	return &PlaneMirror{a: a, b: b, refl: TangentReflection(e.Normalize())}, nil
}

// Endpoints returns the segment endpoints.
func (m *PlaneMirror) Endpoints() (Point, Point) {
	return m.a, m.b
}

// Kind implements [Mirror].
func (m *PlaneMirror) Kind() string {
	return KindPlane
}

// Reflect implements [Mirror]. The segment S(u) = a + u·(b−a) meets the ray
// where origin + d·dir = S(u); for Dims > 2 the system is overdetermined, so
// it is solved in the least-squares sense through its 2×2 Gram system and
// the residual is checked against the intersection tolerance.
func (m *PlaneMirror) Reflect(ray Ray) []Intersection {
	e := m.b.Sub(m.a)
	w := m.a.Sub(ray.Origin)
	de := ray.Dir.Dot(e)
	ee := e.Hypot2()
	det := ee - de*de // dir is unit length
	if math.Abs(det) < 1e-12*ee {
		// Ray parallel to the segment.
		return nil
	}
	rd := ray.Dir.Dot(w)
	ru := -e.Dot(w)
	d := (rd*ee + de*ru) / det
	u := (ru + de*rd) / det
	if u < 0 || u > 1 {
		return nil
	}
	if residual := ray.Dir.Mul(d).Sub(e.Mul(u)).Sub(w); residual.Hypot2() > DefaultAccuracy*DefaultAccuracy {
		// Skew lines: closest approach exists but they never touch.
		return nil
	}
	if d < 0 {
		if d < -DefaultAccuracy {
			return nil
		}
		d = 0
	}
	return []Intersection{{Distance: d, Transform: m.refl}}
}

type planeMirrorJSON struct {
	Points [][]float64 `json:"points"`
}

// UnmarshalJSON implements [encoding/json.Unmarshaler].
func (m *PlaneMirror) UnmarshalJSON(data []byte) error {
	var cfg planeMirrorJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(cfg.Points) != 2 {
		return fmt.Errorf("%w: plane mirror needs exactly 2 points, got %d", ErrMalformedInput, len(cfg.Points))
	}
	a, err := pointFromCoords(cfg.Points[0])
	if err != nil {
		return err
	}
	b, err := pointFromCoords(cfg.Points[1])
	if err != nil {
		return err
	}
	built, err := NewPlaneMirror(a, b)
	if err != nil {
		return err
	}
	*m = *built
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler].
func (m *PlaneMirror) MarshalJSON() ([]byte, error) {
	return json.Marshal(planeMirrorJSON{Points: [][]float64{m.a[:], m.b[:]}})
}
