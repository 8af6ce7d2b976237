// internal/system/collision.go
package system

import (
	"go-arena-league/internal/component"
	"go-arena-league/internal/config"
	"go-arena-league/internal/event"
	"go-arena-league/internal/utils"

	"github.com/golang/geo/r2"
)

// RandomSource is the only source of randomness of the resolver. Tests pass a
// fixed value, matches pass a seeded utils.PRNGService.
type RandomSource interface {
	Float64() float64
}

// CollisionSystem owns the bodies of a match and advances them one frame at a
// time: integration, wall and gap handling, goals and body-body contacts.
//
// Goals use the delayed policy: a body that reaches the wall inside the gap is
// marked Exiting and keeps flying; the goal is registered once it is
// ExitDepth body radii past the boundary, then the body respawns. If the gap
// rotates away first, the body meets the wall like anywhere else.
type CollisionSystem struct {
	arena           *component.Arena
	bodies          []component.Body
	tuning          config.Tuning
	rng             RandomSource
	eventDispatcher *event.Dispatcher

	wallHits int
	contacts int
}

func NewCollisionSystem(arena *component.Arena, bodies []component.Body, tuning config.Tuning, rng RandomSource, eventDispatcher *event.Dispatcher) *CollisionSystem {
	owned := make([]component.Body, len(bodies))
	copy(owned, bodies)
	return &CollisionSystem{
		arena:           arena,
		bodies:          owned,
		tuning:          tuning,
		rng:             rng,
		eventDispatcher: eventDispatcher,
	}
}

// Bodies returns a copy of the current body states.
func (s *CollisionSystem) Bodies() []component.Body {
	out := make([]component.Body, len(s.bodies))
	copy(out, s.bodies)
	return out
}

// Len returns the number of bodies in play.
func (s *CollisionSystem) Len() int {
	return len(s.bodies)
}

// WallHits returns how many wall contacts were resolved so far.
func (s *CollisionSystem) WallHits() int {
	return s.wallHits
}

// Contacts returns how many body-body contacts were resolved so far.
func (s *CollisionSystem) Contacts() int {
	return s.contacts
}

// Step advances every body by one frame. A goal ends the step: GoalScored is
// dispatched, the scorer respawns and later bodies wait for the next step.
func (s *CollisionSystem) Step() (event.Goal, bool) {
	for i := range s.bodies {
		b := &s.bodies[i]
		b.Pos = b.Pos.Add(b.Vel)

		if s.resolveBoundary(b) {
			goal := event.Goal{Side: b.Side, Body: i}
			if s.eventDispatcher != nil {
				s.eventDispatcher.Dispatch(event.Event{Type: event.GoalScored, Data: goal})
			}
			s.respawn(b)
			return goal, true
		}
	}
	s.resolveContacts()
	return event.Goal{}, false
}

// resolveBoundary handles a body at or past the wall. It reports true when the
// body has scored.
func (s *CollisionSystem) resolveBoundary(b *component.Body) bool {
	d, theta := s.arena.Polar(b.Pos)
	limit := s.tuning.ArenaRadius - s.tuning.BodyRadius
	if d < limit {
		b.Exiting = false
		return false
	}

	if s.arena.IsWithinGap(theta) {
		if !b.Exiting && b.Vel.Norm() == 0 {
			b.Vel = utils.UnitFromAngle(theta).Mul(s.tuning.MinSpeed)
		}
		b.Exiting = true
		return d > s.tuning.ArenaRadius+s.tuning.BodyRadius*s.tuning.ExitDepth
	}

	b.Exiting = false
	s.bounce(b, theta)
	return false
}

// bounce reflects a body off the wall at angle theta and puts it back inside.
func (s *CollisionSystem) bounce(b *component.Body, theta float64) {
	n := utils.UnitFromAngle(theta)
	v := b.Vel
	if v.Dot(n) > 0 {
		v = utils.Reflect(v, n)
	}
	v.X *= s.wallJitter()
	v.Y *= s.wallJitter()
	b.Vel = utils.ClampSpeed(v, s.tuning.MinSpeed, s.tuning.RecoverSpeed, n.Mul(-1))

	b.Pos = utils.FromPolar(s.arena.Center, s.innerLimit(), theta)
	s.wallHits++
}

// resolveContacts separates overlapping bodies in ascending pair order.
func (s *CollisionSystem) resolveContacts() {
	minDist := 2 * s.tuning.BodyRadius
	for i := 0; i < len(s.bodies); i++ {
		for j := i + 1; j < len(s.bodies); j++ {
			a, b := &s.bodies[i], &s.bodies[j]
			if a.Exiting || b.Exiting {
				continue
			}
			delta := a.Pos.Sub(b.Pos)
			dist := delta.Norm()
			if dist >= minDist {
				continue
			}

			av, bv := a.Vel, b.Vel
			a.Vel = r2.Point{
				X: bv.X*s.tuning.CollisionDamping + s.symmetric(s.tuning.CollisionJitter),
				Y: bv.Y*s.tuning.CollisionDamping + s.symmetric(s.tuning.CollisionJitter),
			}
			b.Vel = r2.Point{
				X: av.X*s.tuning.CollisionDamping + s.symmetric(s.tuning.CollisionJitter),
				Y: av.Y*s.tuning.CollisionDamping + s.symmetric(s.tuning.CollisionJitter),
			}

			normal := r2.Point{X: 1, Y: 0}
			if dist > 0 {
				normal = delta.Mul(1 / dist)
			}
			push := (minDist-dist)/2 + s.tuning.SeparationSlop/2
			a.Pos = a.Pos.Add(normal.Mul(push))
			b.Pos = b.Pos.Sub(normal.Mul(push))
			s.contain(a)
			s.contain(b)
			s.contacts++
		}
	}
}

// contain pulls a body that is not exiting back inside the wall without
// touching its velocity.
func (s *CollisionSystem) contain(b *component.Body) {
	d, theta := s.arena.Polar(b.Pos)
	if d > s.tuning.ArenaRadius-s.tuning.BodyRadius {
		b.Pos = utils.FromPolar(s.arena.Center, s.innerLimit(), theta)
	}
}

// respawn puts a scorer back near the centre with a fresh velocity.
func (s *CollisionSystem) respawn(b *component.Body) {
	b.Exiting = false
	b.Pos = s.arena.Center.Add(r2.Point{
		X: s.symmetric(s.tuning.RespawnSpread),
		Y: s.symmetric(s.tuning.RespawnSpread),
	})
	v := r2.Point{
		X: s.symmetric(s.tuning.RespawnSpeed),
		Y: s.symmetric(s.tuning.RespawnSpeed),
	}
	b.Vel = utils.ClampSpeed(v, s.tuning.MinSpeed, s.tuning.RecoverSpeed, kickoffDirection(b.Side))
}

func (s *CollisionSystem) innerLimit() float64 {
	return s.tuning.ArenaRadius - s.tuning.BodyRadius - s.tuning.WallInset
}

func (s *CollisionSystem) wallJitter() float64 {
	return s.tuning.WallJitterMin + s.rng.Float64()*(s.tuning.WallJitterMax-s.tuning.WallJitterMin)
}

// symmetric returns a value in [-width/2, width/2).
func (s *CollisionSystem) symmetric(width float64) float64 {
	return (s.rng.Float64() - 0.5) * width
}

// kickoffDirection is the fallback heading of a respawned body whose random
// velocity came out as zero.
func kickoffDirection(side component.Side) r2.Point {
	if side == component.SideA {
		return r2.Point{X: 1, Y: 0}
	}
	return r2.Point{X: -1, Y: 0}
}
