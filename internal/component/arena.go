// internal/component/arena.go
package component

import (
	"math"

	"go-arena-league/internal/utils"

	"github.com/golang/geo/r2"
)

// Arena is the circular boundary with a single rotating gap. Rotation is the
// only field that changes during a match and is the sole source of truth for
// where the gap is.
type Arena struct {
	Center       r2.Point
	Radius       float64
	GapHalfAngle float64
	Rotation     float64 // gap centre, grows without wrapping
	RotationRate float64 // radians added per unpaused frame
}

func NewArena(center r2.Point, radius, gapHalfAngle, rotationRate float64) *Arena {
	return &Arena{
		Center:       center,
		Radius:       radius,
		GapHalfAngle: gapHalfAngle,
		RotationRate: rotationRate,
	}
}

// GapCenter returns the normalised angle of the gap centre.
func (a *Arena) GapCenter() float64 {
	return utils.NormalizeAngle(a.Rotation)
}

// GapBounds returns the open angular interval, both ends normalised to
// (-π, π]. min is greater than max when the gap straddles ±π.
func (a *Arena) GapBounds() (min, max float64) {
	return utils.NormalizeAngle(a.Rotation - a.GapHalfAngle), utils.NormalizeAngle(a.Rotation + a.GapHalfAngle)
}

// IsWithinGap reports whether a boundary point at angle lies in the gap.
func (a *Arena) IsWithinGap(angle float64) bool {
	if a.GapHalfAngle >= math.Pi {
		return true
	}
	lo, hi := a.GapBounds()
	return utils.AngleInInterval(angle, lo, hi)
}

// Advance rotates the gap by one frame.
func (a *Arena) Advance() {
	a.Rotation += a.RotationRate
}

// Polar returns the distance and angle of p relative to the centre.
func (a *Arena) Polar(p r2.Point) (float64, float64) {
	rel := p.Sub(a.Center)
	return rel.Norm(), utils.AngleOf(rel)
}
