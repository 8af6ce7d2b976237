package utils

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestNormalizeAngleRange(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{-math.Pi, math.Pi},
		{3 * math.Pi, math.Pi},
		{2*math.Pi + 0.5, 0.5},
		{-2*math.Pi - 0.5, -0.5},
		{1.5 * math.Pi, -0.5 * math.Pi},
	}
	for _, c := range cases {
		got := NormalizeAngle(c.in)
		if !near(got, c.want) {
			t.Fatalf("NormalizeAngle(%f) got=%f want=%f", c.in, got, c.want)
		}
		if got <= -math.Pi || got > math.Pi {
			t.Fatalf("NormalizeAngle(%f)=%f out of (-π, π]", c.in, got)
		}
	}
}

func TestReflectAgainstWallNormal(t *testing.T) {
	n := r2.Point{X: 1, Y: 0}
	got := Reflect(r2.Point{X: 3, Y: 2}, n)
	if !near(got.X, -3) || !near(got.Y, 2) {
		t.Fatalf("reflect got=%v want=(-3, 2)", got)
	}

	n = UnitFromAngle(math.Pi / 4)
	v := r2.Point{X: 1, Y: 1}
	got = Reflect(v, n)
	if !near(got.X, -1) || !near(got.Y, -1) {
		t.Fatalf("reflect along diagonal got=%v want=(-1, -1)", got)
	}
	if !near(got.Norm(), v.Norm()) {
		t.Fatalf("reflection must preserve speed: got=%f want=%f", got.Norm(), v.Norm())
	}
}

func TestAngleInIntervalWraps(t *testing.T) {
	lo := NormalizeAngle(math.Pi - 0.2)
	hi := NormalizeAngle(math.Pi + 0.2)
	if lo <= hi {
		t.Fatalf("test setup: expected wrapped interval, lo=%f hi=%f", lo, hi)
	}
	for _, a := range []float64{math.Pi, -math.Pi + 0.1, math.Pi - 0.1} {
		if !AngleInInterval(a, lo, hi) {
			t.Fatalf("angle %f should be inside wrapped interval", a)
		}
	}
	for _, a := range []float64{0, math.Pi / 2, -math.Pi / 2} {
		if AngleInInterval(a, lo, hi) {
			t.Fatalf("angle %f should be outside wrapped interval", a)
		}
	}
	if !AngleInInterval(0.1, -0.2, 0.2) || AngleInInterval(0.3, -0.2, 0.2) {
		t.Fatal("plain interval membership is wrong")
	}
}

func TestClampSpeed(t *testing.T) {
	fallback := r2.Point{X: -1, Y: 0}

	fast := r2.Point{X: 3, Y: 4}
	if got := ClampSpeed(fast, 2, 2.5, fallback); got != fast {
		t.Fatalf("fast vector should be untouched, got=%v", got)
	}

	slow := r2.Point{X: 0.3, Y: 0.4}
	got := ClampSpeed(slow, 2, 2.5, fallback)
	if !near(got.Norm(), 2.5) {
		t.Fatalf("slow vector speed got=%f want=2.5", got.Norm())
	}
	if !near(got.X/got.Y, slow.X/slow.Y) {
		t.Fatalf("slow vector direction changed: %v", got)
	}

	got = ClampSpeed(r2.Point{}, 2, 2.5, fallback)
	if math.IsNaN(got.X) || math.IsNaN(got.Y) {
		t.Fatalf("zero vector produced NaN: %v", got)
	}
	if !near(got.X, -2.5) || !near(got.Y, 0) {
		t.Fatalf("zero vector should use fallback, got=%v", got)
	}
}

func TestFromPolarDistance(t *testing.T) {
	c := r2.Point{X: 250, Y: 200}
	p := FromPolar(c, 166, 1.2)
	if !near(Distance(p, c), 166) {
		t.Fatalf("distance got=%f want=166", Distance(p, c))
	}
	if !near(AngleOf(p.Sub(c)), 1.2) {
		t.Fatalf("angle got=%f want=1.2", AngleOf(p.Sub(c)))
	}
}
