package mirrorverse

// Ray is a half-line: an origin and a unit direction. Mirrors only ever read
// rays; they never modify them.
type Ray struct {
	Origin Point
	Dir    Vec
}

// NewRay returns the ray starting at origin and pointing along dir, which
// does not need to be normalized but must not be zero.
func NewRay(origin Point, dir Vec) Ray {
	return Ray{Origin: origin, Dir: dir.Normalize()}
}

// At returns the point at the given signed distance along the ray.
func (r Ray) At(dist float64) Point {
	return r.Origin.Translate(r.Dir.Mul(dist))
}

// Project returns the signed distance along the ray at which pt projects
// onto the ray's infinite line.
func (r Ray) Project(pt Point) float64 {
	return pt.Sub(r.Origin).Dot(r.Dir)
}

// ClosestPoint returns the point on the ray's infinite line closest to pt.
func (r Ray) ClosestPoint(pt Point) Point {
	return r.At(r.Project(pt))
}

// DistToPoint returns the perpendicular distance of pt from the ray's
// infinite line.
func (r Ray) DistToPoint(pt Point) float64 {
	return r.ClosestPoint(pt).Distance(pt)
}
