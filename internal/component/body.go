// internal/component/body.go
package component

import "github.com/golang/geo/r2"

// Side identifies which team a body plays for.
type Side int

const (
	SideA Side = iota
	SideB
)

func (s Side) String() string {
	switch s {
	case SideA:
		return "A"
	case SideB:
		return "B"
	}
	return "?"
}

// Valid reports whether s is one of the two teams.
func (s Side) Valid() bool {
	return s == SideA || s == SideB
}

// Body is one moving disc in the arena. The radius is shared by all bodies
// and lives in the tuning.
type Body struct {
	Pos  r2.Point
	Vel  r2.Point // distance per frame
	Side Side
	// Exiting is set while the body is crossing the boundary through the gap.
	Exiting bool
}

// Speed returns the length of the velocity.
func (b *Body) Speed() float64 {
	return b.Vel.Norm()
}
