// internal/ui/scoreboard.go
package ui

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"go-arena-league/internal/component"
	"go-arena-league/internal/config"
	"go-arena-league/pkg/render"
)

// ScoreView is the state the scoreboard shows for one frame.
type ScoreView struct {
	NameA, NameB   string
	ColorA, ColorB color.RGBA
	ScoreA, ScoreB int
	Remaining      int
	Phase          component.Phase
	LastScorer     string         // name of the last scoring side, empty before the first goal
	ScorerSide     component.Side // side of LastScorer
	SinceGoal      time.Duration  // time since the last goal, drives the pulse
}

// Scoreboard draws the clock, score and banners over the arena.
type Scoreboard struct {
	X, Y   float64
	Radius float64
}

func NewScoreboard(x, y, radius float64) *Scoreboard {
	return &Scoreboard{X: x, Y: y, Radius: radius}
}

// Draw renders v onto surface.
func (s *Scoreboard) Draw(surface render.Surface, v ScoreView) {
	w, h := surface.Size()

	surface.Text(fmt.Sprintf("%ds", v.Remaining), w/2, s.Y, config.TextDarkColor)
	sinceA, sinceB := time.Hour, time.Hour
	if v.LastScorer != "" {
		if v.ScorerSide == component.SideA {
			sinceA = v.SinceGoal
		} else {
			sinceB = v.SinceGoal
		}
	}
	s.drawSide(surface, s.X, v.NameA, v.ScoreA, v.ColorA, sinceA)
	s.drawSide(surface, w-s.X, v.NameB, v.ScoreB, v.ColorB, sinceB)

	switch v.Phase {
	case component.NotStarted:
		s.banner(surface, w, h, "Match Ready!")
	case component.Paused:
		s.banner(surface, w, h, "GOAL! "+v.LastScorer)
	case component.Ended:
		s.banner(surface, w, h, "Final Whistle!")
	}
}

// drawSide draws one team dot with its name and goals. The dot swells right
// after a goal and settles back.
func (s *Scoreboard) drawSide(surface render.Surface, x float64, name string, goals int, c color.RGBA, sinceGoal time.Duration) {
	scale := 1.0 + 0.3*math.Exp(-sinceGoal.Seconds()*8)
	r := s.Radius * scale
	surface.FillCircle(x, s.Y, r+1, render.DarkenColor(c))
	surface.FillCircle(x, s.Y, r, c)
	surface.Text(name, x, s.Y+s.Radius+10, config.TextDarkColor)
	surface.Text(fmt.Sprintf("%d", goals), x, s.Y+s.Radius+24, config.TextDarkColor)
}

func (s *Scoreboard) banner(surface render.Surface, w, h float64, msg string) {
	surface.FillRect(0, h/2-14, w, 28, config.OverlayColor)
	surface.Text(msg, w/2, h/2, config.TextLightColor)
}
