package mirrorverse

import "fmt"

// Intersection is one crossing of a ray and a mirror: the distance along the
// ray at which it happens, and the orthogonal transform the ray's direction
// undergoes there. The mirror never applies the transform itself; that is
// the caller's job.
type Intersection struct {
	Distance  float64
	Transform Matrix
}

// Mirror is the capability shared by every mirror kind. Implementations are
// immutable after construction and safe for concurrent use.
type Mirror interface {
	// Reflect returns one Intersection per crossing of the ray with the
	// mirror, ordered by ascending distance. An empty slice means the ray
	// misses the mirror, which is a normal outcome.
	Reflect(ray Ray) []Intersection
	// Kind returns the identifier the scene loader dispatches on, such as
	// "bezier".
	Kind() string
}

// pointFromCoords converts a decoded JSON coordinate list into a Point,
// enforcing the fixed dimension. encoding/json silently pads or truncates
// fixed-size arrays, so the arity check has to happen on the slice.
func pointFromCoords(coords []float64) (Point, error) {
	if len(coords) != Dims {
		return Point{}, fmt.Errorf("%w: point has %d coordinates, want %d", ErrMalformedInput, len(coords), Dims)
	}
	var pt Point
	copy(pt[:], coords)
	return pt, nil
}
