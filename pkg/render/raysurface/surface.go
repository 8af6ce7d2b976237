// Package raysurface draws with raylib inside a BeginDrawing/EndDrawing
// block.
package raysurface

import (
	"image/color"
	"math"

	"go-arena-league/pkg/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const fontSize = 10

// Surface issues raylib draw calls. The window must be open.
type Surface struct {
	Width, Height float64
}

var _ render.Surface = (*Surface)(nil)

func New(width, height float64) *Surface {
	return &Surface{Width: width, Height: height}
}

func (s *Surface) Size() (float64, float64) {
	return s.Width, s.Height
}

func (s *Surface) Clear(c color.Color) {
	rl.ClearBackground(toRL(c))
}

// StrokeArc draws a ring sector. raylib takes angles in degrees.
func (s *Surface) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	segments := int32(render.ArcSegments(r, end-start))
	rl.DrawRing(
		rl.NewVector2(float32(cx), float32(cy)),
		float32(r-width/2),
		float32(r+width/2),
		float32(start*180/math.Pi),
		float32(end*180/math.Pi),
		segments,
		toRL(c),
	)
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	rl.DrawLineEx(rl.NewVector2(float32(x0), float32(y0)), rl.NewVector2(float32(x1), float32(y1)), float32(width), toRL(c))
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	rl.DrawCircleV(rl.NewVector2(float32(cx), float32(cy)), float32(r), toRL(c))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), toRL(c))
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	w := rl.MeasureText(str, fontSize)
	rl.DrawText(str, int32(x)-w/2, int32(y)-fontSize/2, fontSize, toRL(c))
}

func toRL(c color.Color) rl.Color {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return rl.NewColor(rgba.R, rgba.G, rgba.B, rgba.A)
}
