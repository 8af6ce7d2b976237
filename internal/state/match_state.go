// internal/state/match_state.go
package state

import (
	"time"

	"go-arena-league/internal/app"
	"go-arena-league/internal/league"
	"go-arena-league/pkg/render/ebitensurface"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*MatchState)(nil)

// MatchState runs one fixture in the window. Escape abandons it; the match is
// torn down and nothing is recorded.
type MatchState struct {
	sm      *StateMachine
	league  *League
	fixture league.Fixture
	match   *app.Match

	finished             bool
	homeGoals, awayGoals int
}

func NewMatchState(sm *StateMachine, l *League, fixture league.Fixture) *MatchState {
	return &MatchState{sm: sm, league: l, fixture: fixture}
}

func (s *MatchState) Enter() {
	m, err := app.New(s.fixture.Descriptor(), s.onResult,
		app.WithTuning(s.league.Tuning),
		app.WithRandom(s.league.RNG.Fork()),
		app.WithLogger(s.league.Log),
	)
	if err != nil {
		s.league.Log.Printf("cannot start %s: %v", s.fixture.ID, err)
		s.sm.SetState(NewFixtureState(s.sm, s.league))
		return
	}
	s.match = m
	if err := m.Start(); err != nil {
		s.league.Log.Printf("cannot start %s: %v", s.fixture.ID, err)
	}
}

// onResult runs inside match.Update; the state change waits for Update to
// return.
func (s *MatchState) onResult(home, away int) {
	s.finished = true
	s.homeGoals, s.awayGoals = home, away
}

func (s *MatchState) Update(deltaTime time.Duration) {
	if s.match == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewFixtureState(s.sm, s.league))
		return
	}

	s.match.Update(deltaTime)
	if !s.finished {
		return
	}
	if err := s.league.Season.RecordResult(s.fixture.ID, s.homeGoals, s.awayGoals); err != nil {
		s.league.Log.Printf("result of %s not saved: %v", s.fixture.ID, err)
	}
	s.league.save()
	fixture, _ := s.league.Season.Fixture(s.fixture.ID)
	s.sm.SetState(NewResultState(s.sm, s.league, fixture))
}

func (s *MatchState) Draw(screen *ebiten.Image) {
	if s.match == nil {
		return
	}
	s.match.Draw(ebitensurface.New(screen))
}

// Exit tears the match down when leaving before the result came in.
func (s *MatchState) Exit() {
	if s.match != nil && !s.match.Done() {
		s.match.Stop()
	}
}
