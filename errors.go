package mirrorverse

import "errors"

// ErrMalformedInput reports serialized geometry that cannot be turned into a
// mirror: a coordinate count that does not match [Dims], a non-numeric value,
// or too few points. It is a hard, construction-time failure.
var ErrMalformedInput = errors.New("malformed input")

// ErrDegenerateTangent reports a parameter at which a curve's derivative
// vanishes, so no tangent direction exists. Callers on the intersection path
// treat it as a soft condition and skip the offending root.
var ErrDegenerateTangent = errors.New("degenerate tangent")
