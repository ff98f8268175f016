package mirrorverse

import (
	"encoding/json"
	"fmt"
)

// KindBezier is the scene-file identifier of [BezierMirror].
const KindBezier = "bezier"

// BezierMirror is a Bézier curve acting as a thin reflective wire: a ray
// crossing the curve is reflected across the local tangent line.
//
// The zero value unmarshals from JSON of the form
//
//	{"control_points": [[x0, ...], [x1, ...], ...]}
//
// with one inner array of exactly Dims numbers per control point.
type BezierMirror struct {
	curve *Bezier

	// Opts tunes the numerical intersection search. The zero value selects
	// the package defaults.
	Opts IntersectOptions
}

var _ Mirror = (*BezierMirror)(nil)

// NewBezierMirror returns the mirror shaped by the given control polygon.
// The points are copied. At least two control points are required.
func NewBezierMirror(points []Point) (*BezierMirror, error) {
	curve, err := NewBezier(points)
	if err != nil {
		return nil, err
	}
	return &BezierMirror{curve: curve}, nil
}

// Curve returns the mirror's underlying curve.
func (m *BezierMirror) Curve() *Bezier {
	return m.curve
}

// Kind implements [Mirror].
func (m *BezierMirror) Kind() string {
	return KindBezier
}

// Reflect implements [Mirror]. Every crossing found by
// [Bezier.Intersections] yields one entry, except crossings at a cusp of the
// curve, where no tangent exists: those are dropped rather than failing the
// whole call.
func (m *BezierMirror) Reflect(ray Ray) []Intersection {
	hits := m.curve.Intersections(ray, m.Opts)
	out := make([]Intersection, 0, len(hits))
	for _, hit := range hits {
		tangent, err := m.curve.Tangent(hit.T)
		if err != nil {
			continue
		}
		out = append(out, Intersection{
			Distance:  hit.Distance,
			Transform: TangentReflection(tangent),
		})
	}
	return out
}

type bezierMirrorJSON struct {
	ControlPoints [][]float64 `json:"control_points"`
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. Any shape defect,
// such as a non-numeric value, a point with the wrong number of coordinates,
// or fewer than two points, reports [ErrMalformedInput].
func (m *BezierMirror) UnmarshalJSON(data []byte) error {
	var cfg bezierMirrorJSON
	if err := json.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	points := make([]Point, len(cfg.ControlPoints))
	for i, coords := range cfg.ControlPoints {
		pt, err := pointFromCoords(coords)
		if err != nil {
			return fmt.Errorf("control point %d: %w", i, err)
		}
		points[i] = pt
	}
	curve, err := NewBezier(points)
	if err != nil {
		return err
	}
	m.curve = curve
	return nil
}

// MarshalJSON implements [encoding/json.Marshaler], producing the same shape
// UnmarshalJSON accepts.
func (m *BezierMirror) MarshalJSON() ([]byte, error) {
	cfg := bezierMirrorJSON{ControlPoints: make([][]float64, 0, len(m.curve.points))}
	for _, pt := range m.curve.points {
		coords := make([]float64, Dims)
		copy(coords, pt[:])
		cfg.ControlPoints = append(cfg.ControlPoints, coords)
	}
	return json.Marshal(cfg)
}
