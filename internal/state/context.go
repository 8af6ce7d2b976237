// internal/state/context.go
package state

import (
	"fmt"

	"go-arena-league/internal/config"
	"go-arena-league/internal/league"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/utils"
	"go-arena-league/pkg/render"
)

// League is what every screen shares: the season being played and the
// settings matches are created with.
type League struct {
	Season   *league.Season
	Tuning   config.Tuning
	RNG      *utils.PRNGService
	Log      *logger.Logger
	SavePath string
}

// save writes the season to SavePath, if one is set.
func (l *League) save() {
	if l.SavePath == "" {
		return
	}
	if err := l.Season.Save(l.SavePath); err != nil {
		l.Log.Printf("season not saved: %v", err)
	}
}

// drawTable writes the top rows of the standings starting at y.
func drawTable(surface render.Surface, standings []league.Standing, y float64, rows int) {
	w, _ := surface.Size()
	surface.Text("    Team           P  GD Pts", w/2, y, config.TextDarkColor)
	for i, s := range standings {
		if i >= rows {
			break
		}
		line := fmt.Sprintf("%2d. %-14s %2d %3d %3d", i+1, s.Team.Name, s.Played, s.GoalDifference(), s.Points)
		surface.Text(line, w/2, y+float64(i+1)*14, config.TextDarkColor)
	}
}
