package render

import "image/color"

// Op is one recorded draw call.
type Op struct {
	Kind  string // "clear", "arc", "line", "circle", "rect", "text"
	X, Y  float64
	R     float64
	Start float64
	End   float64
	Text  string
	Color color.Color
}

// Recorder keeps every draw call, for tests.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) { return r.Width, r.Height }

func (r *Recorder) Clear(c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "clear", Color: c})
}

func (r *Recorder) StrokeArc(cx, cy, radius, start, end, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "arc", X: cx, Y: cy, R: radius, Start: start, End: end, Color: c})
}

func (r *Recorder) Line(x0, y0, x1, y1, width float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "line", X: x0, Y: y0, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "circle", X: cx, Y: cy, R: radius, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, c color.Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, Text: s, Color: c})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every string drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// Reset forgets the recorded ops.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}
