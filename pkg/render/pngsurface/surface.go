// Package pngsurface renders frames into an in-memory image with gg and
// writes them out as numbered PNG files.
package pngsurface

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"go-arena-league/pkg/render"

	"github.com/fogleman/gg"
)

// Surface draws onto a gg context.
type Surface struct {
	dc *gg.Context
}

var _ render.Surface = (*Surface)(nil)

func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

func (s *Surface) Size() (float64, float64) {
	return float64(s.dc.Width()), float64(s.dc.Height())
}

func (s *Surface) Clear(c color.Color) {
	s.dc.SetColor(c)
	s.dc.Clear()
}

func (s *Surface) StrokeArc(cx, cy, r, start, end, width float64, c color.Color) {
	s.dc.NewSubPath()
	s.dc.DrawArc(cx, cy, r, start, end)
	s.stroke(width, c)
}

func (s *Surface) Line(x0, y0, x1, y1, width float64, c color.Color) {
	s.dc.DrawLine(x0, y0, x1, y1)
	s.stroke(width, c)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.Color) {
	s.dc.DrawCircle(cx, cy, r)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *Surface) FillRect(x, y, w, h float64, c color.Color) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(c)
	s.dc.Fill()
}

func (s *Surface) Text(str string, x, y float64, c color.Color) {
	s.dc.SetColor(c)
	s.dc.DrawStringAnchored(str, x, y, 0.5, 0.5)
}

func (s *Surface) stroke(width float64, c color.Color) {
	s.dc.SetLineWidth(width)
	s.dc.SetColor(c)
	s.dc.Stroke()
}

// Image returns the current frame.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the current frame to path.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// FrameWriter saves every Every-th frame of a surface into Dir as
// <prefix>_00042.png.
type FrameWriter struct {
	Surface *Surface
	Dir     string
	Prefix  string
	Every   int

	written int
	err     error
}

func NewFrameWriter(surface *Surface, dir, prefix string, every int) (*FrameWriter, error) {
	if every < 1 {
		every = 1
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create frames dir: %w", err)
	}
	return &FrameWriter{Surface: surface, Dir: dir, Prefix: prefix, Every: every}, nil
}

// Frame is meant as a loop.Driver AfterDraw hook. The first write error is
// kept and later frames are skipped.
func (w *FrameWriter) Frame(frame int) {
	if w.err != nil || frame%w.Every != 0 {
		return
	}
	path := filepath.Join(w.Dir, fmt.Sprintf("%s_%05d.png", w.Prefix, frame))
	if err := w.Surface.SavePNG(path); err != nil {
		w.err = fmt.Errorf("failed to write frame %d: %w", frame, err)
		return
	}
	w.written++
}

// Written returns how many frames were saved.
func (w *FrameWriter) Written() int {
	return w.written
}

func (w *FrameWriter) Err() error {
	return w.err
}
