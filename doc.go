// Package mirrorverse simulates ray optics over mirrors embedded in a
// D-dimensional space.
//
// # Dimension model
//
// The geometric dimension of the whole program is fixed at compile time by
// [Dims]. Every geometric type ([Point], [Vec], [Matrix], [Ray]) shares that
// dimension, so rays, mirrors, and transforms can never be mixed across
// dimensions. The default is 2, which is the classic "light bouncing around a
// plane" setting; raising the constant recompiles the package for 3-D or
// higher without any code changes.
//
// # Mirrors
//
// A mirror is anything that can intersect a ray and describe the reflection
// the ray undergoes at each intersection, expressed by the [Mirror] interface.
// Reflections are returned as [Intersection] values, pairing the distance
// along the ray with the orthogonal [Matrix] to apply to the ray's direction;
// applying the transform is the caller's job, which keeps mirrors free of any
// ray-propagation policy.
//
// Three mirror kinds are provided:
//
//   - [BezierMirror], a Bézier curve of arbitrary degree acting as a thin
//     reflective wire. Intersections are found numerically; see
//     [Bezier.Intersections].
//   - [PlaneMirror], a straight segment with a closed-form intersection.
//   - [SphereMirror], a hypersphere with a closed-form intersection.
//
// Curved mirrors reflect across the local tangent line, so an incoming
// direction v becomes 2(v·t̂)t̂ − v. The sphere reflects across the tangent
// hyperplane instead, using the surface normal.
//
// # Scenes
//
// [Scene] bundles mirrors with the rays to shoot at them and knows how to
// propagate a ray from bounce to bounce, always taking the nearest
// intersection. Scenes load from JSON, dispatching each mirror entry on its
// "type" field to the matching mirror kind.
//
// All operations are pure and the types are immutable once constructed, so a
// scene or mirror may be shared freely between goroutines.
package mirrorverse
