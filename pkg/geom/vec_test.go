// pkg/geom/vec_test.go
package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestNormalizeZeroVector(t *testing.T) {
	v := Vec2{}.Normalize()
	if !v.IsZero() {
		t.Errorf("normalize of zero vector = %v, want zero", v)
	}
}

func TestNormalizeUnitLength(t *testing.T) {
	v := V(3, 4).Normalize()
	if math.Abs(v.Length()-1.0) > eps {
		t.Errorf("normalized length = %f, want 1", v.Length())
	}
	if math.Abs(v.X-0.6) > eps || math.Abs(v.Y-0.8) > eps {
		t.Errorf("normalized (3,4) = %v, want (0.6, 0.8)", v)
	}
}

func TestDistance(t *testing.T) {
	d := V(0, 0).Distance(V(3, 4))
	if math.Abs(d-5.0) > eps {
		t.Errorf("distance = %f, want 5", d)
	}
}

func TestLerpEndpoints(t *testing.T) {
	from := V(1, 2)
	to := V(5, -2)
	if got := Lerp(from, to, 0); got != from {
		t.Errorf("lerp t=0 = %v, want %v", got, from)
	}
	if got := Lerp(from, to, 1); got != to {
		t.Errorf("lerp t=1 = %v, want %v", got, to)
	}
	mid := Lerp(from, to, 0.5)
	if math.Abs(mid.X-3) > eps || math.Abs(mid.Y-0) > eps {
		t.Errorf("lerp t=0.5 = %v, want (3, 0)", mid)
	}
}

func TestArcHeight(t *testing.T) {
	cases := []struct {
		t    float64
		want float64
	}{
		{0, 0},
		{0.5, 5.0}, // пик дуги
		{1, 0},
		{0.25, 3.75},
	}
	for _, c := range cases {
		got := ArcHeight(5.0, c.t)
		if math.Abs(got-c.want) > eps {
			t.Errorf("ArcHeight(5, %f) = %f, want %f", c.t, got, c.want)
		}
	}
}

func TestAngleBetween(t *testing.T) {
	a := V(1, 0)
	b := V(0, 1)
	if got := AngleBetween(a, b); math.Abs(got-math.Pi/2) > eps {
		t.Errorf("angle between perpendicular vectors = %f, want %f", got, math.Pi/2)
	}
	if got := AngleBetween(a, a); math.Abs(got) > eps {
		t.Errorf("angle between identical vectors = %f, want 0", got)
	}
	if got := AngleBetween(a, V(-1, 0)); math.Abs(got-math.Pi) > eps {
		t.Errorf("angle between opposite vectors = %f, want %f", got, math.Pi)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(5, 0, 1); got != 1 {
		t.Errorf("Clamp(5,0,1) = %f, want 1", got)
	}
	if got := Clamp(-5, 0, 1); got != 0 {
		t.Errorf("Clamp(-5,0,1) = %f, want 0", got)
	}
	if got := Clamp(0.5, 0, 1); got != 0.5 {
		t.Errorf("Clamp(0.5,0,1) = %f, want 0.5", got)
	}
}
