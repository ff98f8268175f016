package mirrorverse

import "fmt"

// Above this degree, direct Bernstein summation multiplies large binomial
// coefficients with near-zero powers and starts to cancel catastrophically,
// so evaluation switches to de Casteljau subdivision.
const deCasteljauCutoff = 10

// Bezier is a Bézier curve of arbitrary degree in Dims-dimensional space,
// defined by its control polygon. The zero value is not usable; construct
// with [NewBezier]. A Bezier is immutable and safe for concurrent use.
type Bezier struct {
	points []Point
	diffs  []Point // forward differences of the control polygon
}

// NewBezier returns the curve defined by the given control polygon. The
// points are copied; the caller keeps ownership of the slice. At least two
// control points are required (degree ≥ 1); a single point does not define a
// curve.
func NewBezier(points []Point) (*Bezier, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 control points, got %d", ErrMalformedInput, len(points))
	}
	b := &Bezier{
		points: make([]Point, len(points)),
		diffs:  make([]Point, len(points)-1),
	}
	copy(b.points, points)
	for i := range b.diffs {
		b.diffs[i] = Point(points[i+1].Sub(points[i]))
	}
	return b, nil
}

// Degree returns the degree of the curve, one less than the number of
// control points.
func (b *Bezier) Degree() int {
	return len(b.points) - 1
}

// ControlPoints returns a copy of the control polygon.
func (b *Bezier) ControlPoints() []Point {
	pts := make([]Point, len(b.points))
	copy(pts, b.points)
	return pts
}

// Start returns the first control point, which the curve interpolates at t=0.
func (b *Bezier) Start() Point {
	return b.points[0]
}

// End returns the last control point, which the curve interpolates at t=1.
func (b *Bezier) End() Point {
	return b.points[len(b.points)-1]
}

// Eval evaluates the curve at parameter t. Generally, t is in the range
// [0, 1]; the Bernstein formula is well defined outside that range but the
// result no longer lies on the bounded curve, and Eval does not clamp.
// Evaluation is exact at t=0 and t=1.
func (b *Bezier) Eval(t float64) Point {
	return evalPoints(b.points, t)
}

// Tangent returns the unit tangent direction of the curve at parameter t.
//
// The derivative of a degree-n Bézier is a degree-(n−1) Bézier over the
// differences of adjacent control points, scaled by n. If that derivative is
// zero at t (the control polygon folds back on itself there), no direction
// exists and Tangent returns [ErrDegenerateTangent] instead of a NaN vector.
func (b *Bezier) Tangent(t float64) (Vec, error) {
	d := b.derivative(t)
	if d.Hypot2() == 0 {
		return Vec{}, fmt.Errorf("%w: at t=%g", ErrDegenerateTangent, t)
	}
	return d.Normalize(), nil
}

// derivative returns the unnormalized curve derivative at t.
func (b *Bezier) derivative(t float64) Vec {
	n := float64(b.Degree())
	return Vec(evalPoints(b.diffs, t)).Mul(n)
}

// evalPoints evaluates the Bézier curve over the given control points,
// switching strategy on the degree.
func evalPoints(points []Point, t float64) Point {
	if len(points) == 1 {
		// Degree-0 blend, as happens for the derivative of a line.
		return points[0]
	}
	if len(points)-1 > deCasteljauCutoff {
		return evalCasteljau(points, t)
	}
	return evalBernstein(points, t)
}

// evalBernstein is the direct Bernstein-polynomial evaluation: the weighted
// sum of control points with weights C(n,i)·tⁱ·(1−t)ⁿ⁻ⁱ.
func evalBernstein(points []Point, t float64) Point {
	n := len(points) - 1
	u := 1 - t
	// upow[i] = u^(n-i), built backward so no division is needed.
	upow := make([]float64, n+1)
	upow[n] = 1
	for i := n - 1; i >= 0; i-- {
		upow[i] = upow[i+1] * u
	}
	var pt Point
	tpow := 1.0
	for i, cp := range points {
		w := float64(Binomial(n, i)) * tpow * upow[i]
		for j := range pt {
			pt[j] += w * cp[j]
		}
		tpow *= t
	}
	return pt
}

// evalCasteljau evaluates by repeated linear interpolation. Numerically
// stable at high degree, at the cost of O(n²) lerps.
func evalCasteljau(points []Point, t float64) Point {
	// The lerp recurrence drifts by an ulp at the ends; keep the endpoints
	// exact, matching evalBernstein.
	switch t {
	case 0:
		return points[0]
	case 1:
		return points[len(points)-1]
	}
	scratch := make([]Point, len(points))
	copy(scratch, points)
	for k := len(scratch) - 1; k > 0; k-- {
		for i := 0; i < k; i++ {
			scratch[i] = scratch[i].Lerp(scratch[i+1], t)
		}
	}
	return scratch[0]
}
