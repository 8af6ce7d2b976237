// internal/state/result_state.go
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

var _ State = (*ResultState)(nil)

// ResultState shows the full time score. Space moves on to the next fixture.
type ResultState struct {
	sm      *StateMachine
	league  *League
	fixture league.Fixture
}

func NewResultState(sm *StateMachine, l *League, fixture league.Fixture) *ResultState {
	return &ResultState{sm: sm, league: l, fixture: fixture}
}

func (s *ResultState) Enter() {}

func (s *ResultState) Update(deltaTime time.Duration) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.sm.SetState(NewFixtureState(s.sm, s.league))
	}
}

func (s *ResultState) Draw(screen *ebiten.Image) {
	s.draw(ebitensurface.New(screen))
}

func (s *ResultState) draw(surface render.Surface) {
	surface.Clear(config.BackgroundColor)
	w, _ := surface.Size()
	f := s.fixture

	surface.FillRect(0, 20, w, 28, config.BannerColor)
	surface.Text("Final Whistle", w/2, 34, config.TextLightColor)
	surface.Text(fmt.Sprintf("%s %d - %d %s", f.Home.Name, f.HomeGoals, f.AwayGoals, f.Away.Name), w/2, 70, config.TextDarkColor)
	surface.Text("Press Space for the next fixture", w/2, 95, config.TextDarkColor)
	drawTable(surface, s.league.Season.Standings(), 130, 15)
}

func (s *ResultState) Exit() {}
