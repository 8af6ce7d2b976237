// Package ebitensurface draws onto an ebiten image.
package ebitensurface

import (
	"image/color"
	"math"

	"go-arena-league/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Surface adapts a screen image to render.Surface. It is rebuilt every frame
// around the image ebiten hands to Draw.
type Surface struct {
	screen   *ebiten.Image
	fontFace font.Face
}

var _ render.Surface = (*Surface)(nil)

func New(screen *ebiten.Image) *Surface {
	return &Surface{screen: screen, fontFace: basicfont.Face7x13}
}

func (s *Surface) Size() (float64, float64) {
	b := s.screen.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (s *Surface) Clear(c color.Color) {
	s.screen.Fill(c)
}

// StrokeArc has no native counterpart in vector, so the arc is drawn as a
// chain of short lines.
func (s *Surface) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	n := render.ArcSegments(r, end-start)
	step := (end - start) / float64(n)
	x0, y0 := cx+r*math.Cos(start), cy+r*math.Sin(start)
	for i := 1; i <= n; i++ {
		a := start + step*float64(i)
		x1, y1 := cx+r*math.Cos(a), cy+r*math.Sin(a)
		vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
		x0, y0 = x1, y1
	}
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	vector.StrokeLine(s.screen, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), c, true)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	vector.DrawFilledCircle(s.screen, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	vector.DrawFilledRect(s.screen, float32(x), float32(y), float32(w), float32(h), c, true)
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	bounds := text.BoundString(s.fontFace, str)
	tx := int(x) - bounds.Dx()/2
	ty := int(y) + bounds.Dy()/2
	text.Draw(s.screen, str, s.fontFace, tx, ty, c)
}
