package mirrorverse

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultMaxBounces caps ray propagation when the scene file does not say
// otherwise.
const DefaultMaxBounces = 16

// Distance below which an intersection is considered the bounce the ray just
// came from and ignored during propagation.
const epsDist = 1e-6

// Scene is a set of mirrors together with the rays to shoot at them.
type Scene struct {
	Mirrors    []Mirror
	Rays       []Ray
	MaxBounces int
}

type rayCfg struct {
	Origin    []float64 `json:"origin"`
	Direction []float64 `json:"direction"`
}

func (c rayCfg) build() (Ray, error) {
	origin, err := pointFromCoords(c.Origin)
	if err != nil {
		return Ray{}, err
	}
	if len(c.Direction) != Dims {
		return Ray{}, fmt.Errorf("%w: ray direction has %d coordinates, want %d", ErrMalformedInput, len(c.Direction), Dims)
	}
	var dir Vec
	copy(dir[:], c.Direction)
	if dir.Hypot2() == 0 {
		return Ray{}, fmt.Errorf("%w: ray direction is zero", ErrMalformedInput)
	}
	return NewRay(origin, dir), nil
}

type sceneCfg struct {
	Mirrors    []json.RawMessage `json:"mirrors"`
	Rays       []rayCfg          `json:"rays"`
	MaxBounces int               `json:"maxBounces,omitempty"`
}

// unmarshalMirror picks the mirror kind named by the entry's "type" field
// and hands the entry to its constructor.
func unmarshalMirror(data []byte) (Mirror, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	var m Mirror
	switch probe.Type {
	case KindBezier:
		m = &BezierMirror{}
	case KindPlane:
		m = &PlaneMirror{}
	case KindSphere:
		m = &SphereMirror{}
	default:
		return nil, fmt.Errorf("%w: unknown mirror type %q", ErrMalformedInput, probe.Type)
	}
	if err := json.Unmarshal(data, m); err != nil {
		return nil, err
	}
	return m, nil
}

// ParseScene builds a scene from its JSON serialization:
//
//	{
//	    "mirrors": [{"type": "bezier", "control_points": [...]}, ...],
//	    "rays": [{"origin": [...], "direction": [...]}, ...],
//	    "maxBounces": 16
//	}
func ParseScene(data []byte) (*Scene, error) {
	var cfg sceneCfg
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	s := &Scene{MaxBounces: cfg.MaxBounces}
	if s.MaxBounces <= 0 {
		s.MaxBounces = DefaultMaxBounces
	}
	for i, raw := range cfg.Mirrors {
		m, err := unmarshalMirror(raw)
		if err != nil {
			return nil, fmt.Errorf("mirror %d: %w", i, err)
		}
		s.Mirrors = append(s.Mirrors, m)
	}
	for i, rc := range cfg.Rays {
		r, err := rc.build()
		if err != nil {
			return nil, fmt.Errorf("ray %d: %w", i, err)
		}
		s.Rays = append(s.Rays, r)
	}
	return s, nil
}

// LoadScene reads and parses a scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseScene(data)
}

// Trace propagates a ray through the scene for at most maxBounces
// reflections (the scene's own cap if maxBounces <= 0) and returns the
// polyline the ray follows, starting at the ray's origin. Each bounce takes
// the nearest intersection over all mirrors that is farther than a small
// epsilon, so a ray does not re-hit the point it just reflected off.
func (s *Scene) Trace(ray Ray, maxBounces int) []Point {
	if maxBounces <= 0 {
		maxBounces = s.MaxBounces
		if maxBounces <= 0 {
			maxBounces = DefaultMaxBounces
		}
	}
	path := []Point{ray.Origin}
	for bounce := 0; bounce < maxBounces; bounce++ {
		var (
			best  Intersection
			found bool
		)
		for _, m := range s.Mirrors {
			for _, hit := range m.Reflect(ray) {
				if hit.Distance <= epsDist {
					continue
				}
				if !found || hit.Distance < best.Distance {
					best = hit
					found = true
				}
				break // reflections are ordered; the first valid one is the nearest
			}
		}
		if !found {
			break
		}
		pt := ray.At(best.Distance)
		path = append(path, pt)
		// Renormalize to keep direction drift from accumulating over many
		// bounces.
		ray = Ray{Origin: pt, Dir: best.Transform.MulVec(ray.Dir).Normalize()}
	}
	return path
}
