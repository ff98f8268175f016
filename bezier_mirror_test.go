package mirrorverse

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestBezierMirrorKind(t *testing.T) {
	m, err := NewBezierMirror([]Point{pt(0, 0), pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Kind(); got != "bezier" {
		t.Errorf("Kind() = %q, want %q", got, "bezier")
	}
}

func TestBezierMirrorReflect(t *testing.T) {
	m, err := NewBezierMirror([]Point{pt(0, 1), pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	ray := NewRay(pt(0.25, 0), vec(0, 1))
	refls := m.Reflect(ray)
	if len(refls) != 1 {
		t.Fatalf("got %d reflections, want 1", len(refls))
	}
	if math.Abs(refls[0].Distance-1) > 1e-6 {
		t.Errorf("Distance = %g, want 1", refls[0].Distance)
	}
	// Reflecting across the horizontal mirror sends the ray straight back
	// down.
	assertNearVec(t, vec(0, -1), refls[0].Transform.MulVec(ray.Dir), 1e-9)
}

func TestBezierMirrorReflectMiss(t *testing.T) {
	m, err := NewBezierMirror([]Point{pt(0, 1), pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	if refls := m.Reflect(NewRay(pt(0.25, 0), vec(0, -1))); len(refls) != 0 {
		t.Errorf("got %d reflections, want 0", len(refls))
	}
}

// A contact without a tangent direction is dropped, not escalated: the
// solver still reports it, Reflect silently skips it.
func TestBezierMirrorReflectDegenerate(t *testing.T) {
	// All control points coincide, so the derivative vanishes everywhere.
	m, err := NewBezierMirror([]Point{pt(1, 1), pt(1, 1)})
	if err != nil {
		t.Fatal(err)
	}
	ray := NewRay(pt(0, 1), vec(1, 0))
	if hits := m.Curve().Intersections(ray, m.Opts); len(hits) != 1 {
		t.Fatalf("got %d solver hits, want the point contact folded into 1", len(hits))
	}
	if refls := m.Reflect(ray); len(refls) != 0 {
		t.Errorf("got %d reflections, want 0 (no tangent exists)", len(refls))
	}
}

func TestBezierMirrorJSONRoundTrip(t *testing.T) {
	orig, err := NewBezierMirror([]Point{pt(1, 2), pt(4, 5), pt(7, 8)})
	if err != nil {
		t.Fatal(err)
	}
	data, err := json.Marshal(orig)
	if err != nil {
		t.Fatal(err)
	}
	var parsed BezierMirror
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatal(err)
	}
	diff(t, orig.Curve().ControlPoints(), parsed.Curve().ControlPoints())
	const n = 10
	for i := 0; i <= n; i++ {
		tt := float64(i) / n
		diff(t, orig.Curve().Eval(tt), parsed.Curve().Eval(tt))
		wantTan, err1 := orig.Curve().Tangent(tt)
		gotTan, err2 := parsed.Curve().Tangent(tt)
		if err1 != nil || err2 != nil {
			t.Fatalf("tangent errors: %v, %v", err1, err2)
		}
		diff(t, wantTan, gotTan)
	}
}

func TestBezierMirrorUnmarshalMalformed(t *testing.T) {
	coords := func(n int) string {
		return "[" + strings.TrimSuffix(strings.Repeat("1,", n), ",") + "]"
	}
	cases := map[string]string{
		"non-numeric value": `{"control_points": [["a", 1]]}`,
		"missing points":    `{}`,
		"single point":      fmt.Sprintf(`{"control_points": [%s]}`, coords(Dims)),
		"too few coords":    fmt.Sprintf(`{"control_points": [%s, %s]}`, coords(Dims), coords(Dims-1)),
		"too many coords":   fmt.Sprintf(`{"control_points": [%s, %s]}`, coords(Dims+1), coords(Dims)),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			var m BezierMirror
			if err := json.Unmarshal([]byte(data), &m); !errors.Is(err, ErrMalformedInput) {
				t.Errorf("got %v, want ErrMalformedInput", err)
			}
		})
	}
}
