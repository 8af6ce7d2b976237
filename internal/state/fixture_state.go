// internal/state/fixture_state.go
package state

import (
	"fmt"
	"time"

	"go-arena-league/internal/config"
	"go-arena-league/internal/league"
	"go-arena-league/pkg/render"
	"go-arena-league/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*FixtureState)(nil)

// FixtureState is the card of the current week. Left and Right pick one of the
// week's open fixtures, Space kicks it off. R asks to reset the league and Y
// confirms.
type FixtureState struct {
	sm       *StateMachine
	league   *League
	pending  []league.Fixture
	selected int
	resetAsk bool
}

func NewFixtureState(sm *StateMachine, l *League) *FixtureState {
	return &FixtureState{sm: sm, league: l}
}

func (s *FixtureState) Enter() {
	s.pending = s.league.Season.Pending()
	s.selected = 0
	s.resetAsk = false
}

func (s *FixtureState) Update(deltaTime time.Duration) {
	if s.resetAsk {
		switch {
		case inpututil.IsKeyJustPressed(ebiten.KeyY):
			s.league.Season.Reset(s.league.RNG)
			s.league.save()
			s.Enter()
		case inpututil.IsKeyJustPressed(ebiten.KeyN), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
			s.resetAsk = false
		}
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.resetAsk = true
		return
	}
	if len(s.pending) == 0 {
		return
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight):
		s.selected = (s.selected + 1) % len(s.pending)
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		s.selected = (s.selected + len(s.pending) - 1) % len(s.pending)
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		s.sm.SetState(NewMatchState(s.sm, s.league, s.pending[s.selected]))
	}
}

func (s *FixtureState) Draw(screen *ebiten.Image) {
	surface := ebitensurface.New(screen)
	s.draw(surface)
}

func (s *FixtureState) draw(surface render.Surface) {
	surface.Clear(config.BackgroundColor)
	w, _ := surface.Size()

	if s.resetAsk {
		surface.FillRect(0, 20, w, 28, config.BannerColor)
		surface.Text("Reset the whole league? Y - yes, N - no", w/2, 34, config.TextLightColor)
		return
	}
	if len(s.pending) == 0 {
		surface.Text("Season complete - R to start again", w/2, 40, config.TextDarkColor)
		drawTable(surface, s.league.Season.Standings(), 80, 20)
		return
	}

	f := s.pending[s.selected]
	week := s.league.Season.CurrentWeek()
	surface.Text(fmt.Sprintf("Week %d of %d", week, s.league.Season.Weeks()), w/2, 30, config.TextDarkColor)
	drawTeam(surface, w/2-90, 90, f.Home.Name, f.Home.PrimaryColor)
	surface.Text("vs", w/2, 90, config.TextDarkColor)
	drawTeam(surface, w/2+90, 90, f.Away.Name, f.Away.PrimaryColor)
	surface.Text("Left/Right - choose, Space - kick off, R - reset", w/2, 120, config.TextDarkColor)

	y := 145.0
	for _, wf := range s.league.Season.WeekFixtures(week) {
		line := fmt.Sprintf("%s v %s", wf.Home.Name, wf.Away.Name)
		switch {
		case wf.Played:
			line = fmt.Sprintf("%s %d-%d %s", wf.Home.Name, wf.HomeGoals, wf.AwayGoals, wf.Away.Name)
		case wf.ID == f.ID:
			line = "> " + line + " <"
		}
		surface.Text(line, w/2, y, config.TextDarkColor)
		y += 13
	}
	drawTable(surface, s.league.Season.Standings(), y+12, 6)
}

func drawTeam(surface render.Surface, x, y float64, name, hex string) {
	c, err := render.ParseHexColor(hex)
	if err == nil {
		surface.FillCircle(x, y-22, 13, config.BodyStrokeColor)
		surface.FillCircle(x, y-22, 12, c)
	}
	surface.Text(name, x, y, config.TextDarkColor)
}

func (s *FixtureState) Exit() {}
