// internal/league/season.go
package league

import (
	"errors"
	"fmt"

	"go-arena-league/internal/defs"
	"go-arena-league/internal/logger"
)

var (
	ErrUnknownFixture = errors.New("unknown fixture")
	ErrAlreadyPlayed  = errors.New("fixture already played")
)

// Season holds the fixture list and the table of one league campaign.
type Season struct {
	teams    []defs.TeamDefinition
	fixtures []Fixture
	index    map[string]int
	table    *Table
	log      *logger.Logger
}

func NewSeason(teams []defs.TeamDefinition, rng Shuffler, log *logger.Logger) (*Season, error) {
	if err := defs.ValidateTeams(teams); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.New("league")
	}
	s := &Season{teams: teams, log: log}
	s.setFixtures(Schedule(teams, rng))
	log.Printf("season created: %d teams, %d fixtures over %d weeks", len(teams), len(s.fixtures), s.Weeks())
	return s, nil
}

// setFixtures replaces the fixture list and rebuilds the index and the table
// from the fixtures already played.
func (s *Season) setFixtures(fixtures []Fixture) {
	s.fixtures = fixtures
	s.index = make(map[string]int, len(fixtures))
	s.table = NewTable(s.teams)
	for i, f := range fixtures {
		s.index[f.ID] = i
		if f.Played {
			s.table.Record(f.Home.ID, f.Away.ID, f.HomeGoals, f.AwayGoals)
		}
	}
}

// Reset throws every result away and draws a new fixture list for the same
// teams.
func (s *Season) Reset(rng Shuffler) {
	s.setFixtures(Schedule(s.teams, rng))
	s.log.Printf("season reset: %d fixtures over %d weeks", len(s.fixtures), s.Weeks())
}

// NextFixture returns the first fixture not played yet.
func (s *Season) NextFixture() (Fixture, bool) {
	for _, f := range s.fixtures {
		if !f.Played {
			return f, true
		}
	}
	return Fixture{}, false
}

// Fixture looks a fixture up by id.
func (s *Season) Fixture(id string) (Fixture, error) {
	i, ok := s.index[id]
	if !ok {
		return Fixture{}, fmt.Errorf("%w: %s", ErrUnknownFixture, id)
	}
	return s.fixtures[i], nil
}

// RecordResult stores the score of a fixture and updates the table.
func (s *Season) RecordResult(id string, homeGoals, awayGoals int) error {
	i, ok := s.index[id]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFixture, id)
	}
	f := &s.fixtures[i]
	if f.Played {
		return fmt.Errorf("%w: %s", ErrAlreadyPlayed, id)
	}
	if homeGoals < 0 || awayGoals < 0 {
		return fmt.Errorf("negative score %d-%d for %s", homeGoals, awayGoals, id)
	}

	f.Played = true
	f.HomeGoals = homeGoals
	f.AwayGoals = awayGoals
	s.table.Record(f.Home.ID, f.Away.ID, homeGoals, awayGoals)
	s.log.Printf("%s: %s %d-%d %s", id, f.Home.Name, homeGoals, awayGoals, f.Away.Name)
	return nil
}

// CurrentWeek is the week of the next unplayed fixture, or the last week
// once the season is complete.
func (s *Season) CurrentWeek() int {
	if f, ok := s.NextFixture(); ok {
		return f.Week
	}
	return s.Weeks()
}

// Weeks returns the number of match weeks.
func (s *Season) Weeks() int {
	if len(s.fixtures) == 0 {
		return 0
	}
	return s.fixtures[len(s.fixtures)-1].Week
}

// WeekFixtures returns the fixtures of one week.
func (s *Season) WeekFixtures(week int) []Fixture {
	var out []Fixture
	for _, f := range s.fixtures {
		if f.Week == week {
			out = append(out, f)
		}
	}
	return out
}

// Pending returns the fixtures of the current week that still need a result.
// Any of them may be played next.
func (s *Season) Pending() []Fixture {
	var out []Fixture
	for _, f := range s.WeekFixtures(s.CurrentWeek()) {
		if !f.Played {
			out = append(out, f)
		}
	}
	return out
}

// Played returns how many fixtures have a result.
func (s *Season) Played() int {
	n := 0
	for _, f := range s.fixtures {
		if f.Played {
			n++
		}
	}
	return n
}

// Complete reports whether every fixture has been played.
func (s *Season) Complete() bool {
	return s.Played() == len(s.fixtures)
}

// Standings returns the current table.
func (s *Season) Standings() []Standing {
	return s.table.Standings()
}
