// internal/system/render.go
package system

import (
	"image/color"
	"math"

	"go-arena-league/internal/component"
	"go-arena-league/internal/config"
	"go-arena-league/pkg/render"
)

// SideStyle is how the bodies of one side are drawn.
type SideStyle struct {
	Color     color.RGBA
	TextColor color.RGBA
	Initial   string
}

// RenderSystem draws the arena and its bodies. It only reads simulation state.
type RenderSystem struct {
	arena      *component.Arena
	collision  *CollisionSystem
	bodyRadius float64
	styles     [2]SideStyle
}

func NewRenderSystem(arena *component.Arena, collision *CollisionSystem, bodyRadius float64, styles [2]SideStyle) *RenderSystem {
	return &RenderSystem{
		arena:      arena,
		collision:  collision,
		bodyRadius: bodyRadius,
		styles:     styles,
	}
}

func (s *RenderSystem) Draw(surface render.Surface) {
	surface.Clear(config.BackgroundColor)
	s.drawBoundary(surface)
	s.drawBodies(surface)
}

// drawBoundary strokes the wall everywhere except the gap, then the gap
// itself and a post at each of its edges.
func (s *RenderSystem) drawBoundary(surface render.Surface) {
	a := s.arena
	cx, cy := a.Center.X, a.Center.Y
	gapStart := a.Rotation - a.GapHalfAngle
	gapEnd := a.Rotation + a.GapHalfAngle

	surface.StrokeArc(cx, cy, a.Radius, gapEnd, gapStart+2*math.Pi, config.ArenaStrokeWidth, config.ArenaColor)
	surface.StrokeArc(cx, cy, a.Radius, gapStart, gapEnd, config.GapStrokeWidth, config.GapColor)

	for _, edge := range []float64{gapStart, gapEnd} {
		cos, sin := math.Cos(edge), math.Sin(edge)
		inner := a.Radius - s.bodyRadius
		outer := a.Radius + s.bodyRadius
		surface.Line(cx+cos*inner, cy+sin*inner, cx+cos*outer, cy+sin*outer, config.BodyStrokeWidth, config.PostColor)
	}
}

func (s *RenderSystem) drawBodies(surface render.Surface) {
	for _, b := range s.collision.Bodies() {
		style := s.styles[b.Side]
		surface.FillCircle(b.Pos.X, b.Pos.Y, s.bodyRadius+config.BodyStrokeWidth, config.BodyStrokeColor)
		surface.FillCircle(b.Pos.X, b.Pos.Y, s.bodyRadius, style.Color)
		if style.Initial != "" {
			surface.Text(style.Initial, b.Pos.X, b.Pos.Y, style.TextColor)
		}
	}
}
