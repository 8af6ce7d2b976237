// internal/utils/math.go
package utils

import (
	"math"

	"github.com/golang/geo/r2"
)

// Distance returns the euclidean distance between two points.
func Distance(a, b r2.Point) float64 {
	return a.Sub(b).Norm()
}

// AngleOf returns the polar angle of v in (-π, π].
func AngleOf(v r2.Point) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromPolar returns the point at distance r and angle from center.
func FromPolar(center r2.Point, r, angle float64) r2.Point {
	return center.Add(UnitFromAngle(angle).Mul(r))
}

// UnitFromAngle returns the unit vector pointing at angle.
func UnitFromAngle(angle float64) r2.Point {
	return r2.Point{X: math.Cos(angle), Y: math.Sin(angle)}
}

// Reflect mirrors v about the surface with unit normal n: v - 2(v·n)n.
func Reflect(v, n r2.Point) r2.Point {
	p := v.Dot(n)
	return v.Sub(n.Mul(2 * p))
}

// NormalizeAngle maps angle into (-π, π].
func NormalizeAngle(angle float64) float64 {
	angle = math.Mod(angle, 2*math.Pi)
	if angle <= -math.Pi {
		angle += 2 * math.Pi
	} else if angle > math.Pi {
		angle -= 2 * math.Pi
	}
	return angle
}

// AngleInInterval reports whether angle lies in [lo, hi], all three taken as
// normalised angles. When lo > hi the interval wraps through ±π and
// membership is a disjunction of the two halves.
func AngleInInterval(angle, lo, hi float64) bool {
	angle = NormalizeAngle(angle)
	if lo <= hi {
		return angle >= lo && angle <= hi
	}
	return angle >= lo || angle <= hi
}

// ClampSpeed rescales v to recover when its length is below floor. A zero
// vector has no direction, so fallback is used instead.
func ClampSpeed(v r2.Point, floor, recover float64, fallback r2.Point) r2.Point {
	speed := v.Norm()
	if speed >= floor {
		return v
	}
	if speed == 0 {
		return fallback.Normalize().Mul(recover)
	}
	return v.Mul(recover / speed)
}
