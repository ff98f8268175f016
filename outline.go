package mirrorverse

import "math"

// Outline support for rendering and data dumps. The points returned here are
// for visualization only; they play no role in intersection or reflection.

// Outline returns the curve sampled at samples+1 evenly spaced parameters.
func (m *BezierMirror) Outline(samples int) []Point {
	if samples < 1 {
		samples = DefaultSamplesPerDegree * m.curve.Degree()
	}
	pts := make([]Point, samples+1)
	for i := range pts {
		pts[i] = m.curve.Eval(float64(i) / float64(samples))
	}
	return pts
}

// Outline returns the segment's endpoints; a straight mirror needs no
// sampling.
func (m *PlaneMirror) Outline(samples int) []Point {
	return []Point{m.a, m.b}
}

// Outline returns a closed circle through the sphere's equator in the first
// two coordinate axes.
func (m *SphereMirror) Outline(samples int) []Point {
	if samples < 3 {
		samples = 64
	}
	pts := make([]Point, samples+1)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(samples))
		pt := m.center
		pt[0] += m.radius * cos
		pt[1] += m.radius * sin
		pts[i] = pt
	}
	return pts
}
