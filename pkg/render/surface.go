// Package render defines the drawing sink the arena is rendered onto. The
// simulation never reads anything back from a surface.
package render

import "image/color"

// Surface is a 2D drawable of fixed logical size. Angles are in radians,
// measured like the simulation (x right, y down).
type Surface interface {
	Size() (width, height float64)
	Clear(c color.Color)
	StrokeArc(cx, cy, r, start, end, width float64, c color.Color)
	Line(x0, y0, x1, y1, width float64, c color.Color)
	FillCircle(cx, cy, r float64, c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	// Text draws s centred on (x, y).
	Text(s string, x, y float64, c color.Color)
}

// Nop discards every draw call. It is the headless surface.
type Nop struct {
	Width, Height float64
}

func (n Nop) Size() (float64, float64) { return n.Width, n.Height }
func (Nop) Clear(color.Color) {}
func (Nop) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {}
func (Nop) Line(x0, y0, x1, y1, width float64, c color.Color) {}
func (Nop) FillCircle(cx, cy, r float64, c color.Color) {}
func (Nop) FillRect(x, y, w, h float64, c color.Color) {}
func (Nop) Text(s string, x, y float64, c color.Color) {}

// ArcSegments returns how many straight segments approximate an arc of the
// given radius and sweep, for backends without a native arc primitive.
func ArcSegments(r, sweep float64) int {
	n := int(r * sweep / 4)
	if n < 4 {
		n = 4
	}
	return n
}
