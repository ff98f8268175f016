package mirrorverse

import (
	"errors"
	"testing"
)

func TestParseScene(t *testing.T) {
	data := []byte(`{
		"mirrors": [
			{"type": "bezier", "control_points": [[0, 0], [0.5, 1], [1, 0]]},
			{"type": "plane", "points": [[0, 1], [1, 1]]},
			{"type": "sphere", "center": [2, 0], "radius": 0.5}
		],
		"rays": [
			{"origin": [0, 0], "direction": [3, 4]}
		],
		"maxBounces": 7
	}`)
	s, err := ParseScene(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Mirrors) != 3 {
		t.Fatalf("got %d mirrors, want 3", len(s.Mirrors))
	}
	for i, kind := range []string{"bezier", "plane", "sphere"} {
		if got := s.Mirrors[i].Kind(); got != kind {
			t.Errorf("mirror %d: Kind() = %q, want %q", i, got, kind)
		}
	}
	if len(s.Rays) != 1 {
		t.Fatalf("got %d rays, want 1", len(s.Rays))
	}
	// Directions are normalized on load.
	assertNearVec(t, vec(0.6, 0.8), s.Rays[0].Dir, 1e-12)
	if s.MaxBounces != 7 {
		t.Errorf("MaxBounces = %d, want 7", s.MaxBounces)
	}
}

func TestParseSceneDefaults(t *testing.T) {
	s, err := ParseScene([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if s.MaxBounces != DefaultMaxBounces {
		t.Errorf("MaxBounces = %d, want %d", s.MaxBounces, DefaultMaxBounces)
	}
}

func TestParseSceneMalformed(t *testing.T) {
	cases := map[string]string{
		"not json":         `{`,
		"unknown mirror":   `{"mirrors": [{"type": "prism"}]}`,
		"untyped mirror":   `{"mirrors": [{"control_points": [[0, 0], [1, 1]]}]}`,
		"bad mirror body":  `{"mirrors": [{"type": "sphere", "center": [0, 0], "radius": -1}]}`,
		"zero direction":   `{"rays": [{"origin": [0, 0], "direction": [0, 0]}]}`,
		"short ray origin": `{"rays": [{"origin": [0], "direction": [1, 0]}]}`,
		"long direction":   `{"rays": [{"origin": [0, 0], "direction": [1, 0, 0]}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseScene([]byte(data)); !errors.Is(err, ErrMalformedInput) {
				t.Errorf("got %v, want ErrMalformedInput", err)
			}
		})
	}
}

func TestLoadScene(t *testing.T) {
	s, err := LoadScene("testdata/scene.json")
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Mirrors) != 3 || len(s.Rays) != 2 {
		t.Fatalf("got %d mirrors and %d rays, want 3 and 2", len(s.Mirrors), len(s.Rays))
	}
	for _, ray := range s.Rays {
		if path := s.Trace(ray, 0); len(path) < 2 {
			t.Errorf("ray from %v never hit a mirror", ray.Origin)
		}
	}
}

// A ray bouncing between two parallel mirrors zigzags; every bounce lands
// alternately on one mirror and the other.
func TestTraceParallelMirrors(t *testing.T) {
	bottom := mustPlane(t, pt(0, 0), pt(20, 0))
	top := mustPlane(t, pt(0, 1), pt(20, 1))
	s := &Scene{Mirrors: []Mirror{bottom, top}}
	path := s.Trace(NewRay(pt(0.5, 0.5), vec(1, 1)), 4)
	want := []Point{pt(0.5, 0.5), pt(1, 1), pt(2, 0), pt(3, 1), pt(4, 0)}
	if len(path) != len(want) {
		t.Fatalf("got %d path points, want %d", len(path), len(want))
	}
	for i := range want {
		assertNear(t, want[i], path[i], 1e-9)
	}
}

func TestTraceBounceCap(t *testing.T) {
	bottom := mustPlane(t, pt(0, 0), pt(20, 0))
	top := mustPlane(t, pt(0, 1), pt(20, 1))
	s := &Scene{Mirrors: []Mirror{bottom, top}}
	if path := s.Trace(NewRay(pt(0.5, 0.5), vec(1, 1)), 2); len(path) != 3 {
		t.Errorf("got %d path points, want 3 (origin plus two bounces)", len(path))
	}
}

func TestTraceEscape(t *testing.T) {
	s := &Scene{Mirrors: []Mirror{mustPlane(t, pt(0, 1), pt(1, 1))}}
	path := s.Trace(NewRay(pt(0.5, 0.5), vec(0, -1)), 8)
	if len(path) != 1 {
		t.Errorf("got %d path points, want 1 (ray never meets a mirror)", len(path))
	}
}

// After reflecting off a curved mirror the ray must not re-detect the point
// it just left.
func TestTraceCurvedMirror(t *testing.T) {
	m, err := NewBezierMirror([]Point{pt(0, 0), pt(0.5, 1), pt(1, 0)})
	if err != nil {
		t.Fatal(err)
	}
	s := &Scene{Mirrors: []Mirror{m}}
	path := s.Trace(NewRay(pt(0.5, -1), vec(0, 1)), 4)
	// The apex tangent is horizontal, so the ray comes straight back down and
	// leaves the scene.
	if len(path) != 2 {
		t.Fatalf("got %d path points, want 2", len(path))
	}
	assertNear(t, pt(0.5, -1), path[0], 0)
	assertNear(t, pt(0.5, 0.5), path[1], 1e-6)
}
