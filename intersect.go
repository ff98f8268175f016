package mirrorverse

import (
	"cmp"
	"math"
	"slices"
)

// DefaultAccuracy is the default tolerance below which the perpendicular
// distance between a curve point and the ray's line counts as an
// intersection.
const DefaultAccuracy = 1e-9

// Defaults for the intersection policy knobs. There is no single correct
// choice: more samples and iterations lower the risk of missing a root at
// the price of more curve evaluations.
const (
	DefaultSamplesPerDegree = 32
	DefaultMaxIters         = 64
)

// CurveHit is a solution of the ray–curve intersection problem: the curve
// parameter and the signed distance along the ray at which the two meet.
type CurveHit struct {
	T        float64
	Distance float64
}

// IntersectOptions configures [Bezier.Intersections]. The zero value selects
// the package defaults.
type IntersectOptions struct {
	// Samples is the size of the uniform parameter grid scanned for root
	// brackets. A grid too coarse for the curve's curvature can hide an
	// intersection. 0 means DefaultSamplesPerDegree per curve degree.
	Samples int
	// MaxIters caps the refinement of a single bracket. A bracket still
	// unresolved after that many iterations is discarded; a missed
	// intersection is preferable to a spurious one. 0 means
	// DefaultMaxIters.
	MaxIters int
	// Accuracy is the perpendicular-distance tolerance for accepting a
	// root. 0 means DefaultAccuracy.
	Accuracy float64
}

func (o IntersectOptions) withDefaults(degree int) IntersectOptions {
	if o.Samples <= 0 {
		o.Samples = DefaultSamplesPerDegree * degree
	}
	if o.MaxIters <= 0 {
		o.MaxIters = DefaultMaxIters
	}
	if o.Accuracy <= 0 {
		o.Accuracy = DefaultAccuracy
	}
	return o
}

// Intersections returns all parameters t ∈ [0, 1] at which the ray meets the
// curve, each paired with the distance along the ray, ordered by ascending
// distance. Intersections behind the ray's origin are excluded. An empty
// result is a normal outcome, not an error.
//
// The problem has no closed form for degree ≥ 3, so it is solved numerically:
// the squared perpendicular distance g(t) from the curve point to the ray's
// line is scanned on a uniform grid, every local minimum of g is bracketed by
// a sign change of its derivative (computed from the curve derivative), and
// each bracket is refined with [SolveITP]. A refined minimum counts as an
// intersection when the residual distance is below opts.Accuracy.
//
// Degenerate geometry, such as a grid too coarse for the curvature or a
// bracket exhausting its iteration budget, loses roots rather than producing
// spurious ones or failing the call.
func (b *Bezier) Intersections(ray Ray, opts IntersectOptions) []CurveHit {
	o := opts.withDefaults(b.Degree())

	// g is the squared perpendicular distance of curve(t) from the ray's
	// line; its derivative only involves the perpendicular component and
	// the curve derivative, since perp(t)·d̂ = 0.
	perp := func(t float64) (Vec, float64) {
		w := b.Eval(t).Sub(ray.Origin)
		along := w.Dot(ray.Dir)
		return w.Sub(ray.Dir.Mul(along)), along
	}
	g := func(t float64) float64 {
		p, _ := perp(t)
		return p.Hypot2()
	}
	dg := func(t float64) float64 {
		p, _ := perp(t)
		return 2 * p.Dot(b.derivative(t))
	}

	n := o.Samples
	acc2 := o.Accuracy * o.Accuracy
	var cands []float64
	// A run of consecutive in-tolerance samples (a ray collinear with a
	// straight curve touches it at every grid point) is one contact, not
	// one per sample; fold each run into its best representative.
	runT, runG := 0.0, 0.0
	inRun := false
	prevT, prevDG := 0.0, 0.0
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		if gt := g(t); gt <= acc2 {
			// The sample itself is already on the ray, as happens for
			// rays whose origin lies on the curve at a grid point.
			if !inRun || gt < runG {
				runT, runG = t, gt
			}
			inRun = true
		} else if inRun {
			cands = append(cands, runT)
			inRun = false
		}
		d := dg(t)
		if i > 0 && prevDG < 0 && d > 0 {
			// A local minimum of g hides in this cell. SolveITP's
			// epsilon must stay above 2⁻⁶³·(b−a), which bounds how
			// much of the iteration budget can be spent.
			iters := min(o.MaxIters, 49)
			epsT := (t - prevT) * math.Pow(0.5, float64(iters))
			root := SolveITP(dg, prevT, t, epsT, 1, 0.2/(t-prevT), prevDG, d)
			cands = append(cands, root)
		}
		prevT, prevDG = t, d
	}
	if inRun {
		cands = append(cands, runT)
	}

	// Accept candidates whose residual is within tolerance, folding
	// near-duplicates from adjacent cells into the best representative.
	dedupe := 0.5 / float64(n)
	slices.Sort(cands)
	var hits []CurveHit
	for i := 0; i < len(cands); {
		best := cands[i]
		j := i + 1
		for ; j < len(cands) && cands[j]-cands[i] <= dedupe; j++ {
			if g(cands[j]) < g(best) {
				best = cands[j]
			}
		}
		i = j

		p, along := perp(best)
		if p.Hypot2() > acc2 {
			continue
		}
		if along < 0 {
			if along < -o.Accuracy {
				// Behind the ray's origin.
				continue
			}
			along = 0
		}
		hits = append(hits, CurveHit{T: best, Distance: along})
	}

	slices.SortFunc(hits, func(a, b CurveHit) int {
		return cmp.Compare(a.Distance, b.Distance)
	})
	return hits
}
