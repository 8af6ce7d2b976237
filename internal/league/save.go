// internal/league/save.go
package league

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"go-arena-league/internal/defs"
	"go-arena-league/internal/logger"
)

// ErrInvalidSave is returned when a save file does not describe a season.
var ErrInvalidSave = errors.New("invalid season save")

type saveFile struct {
	Teams    []defs.TeamDefinition `json:"teams"`
	Fixtures []savedFixture        `json:"fixtures"`
}

type savedFixture struct {
	ID        string `json:"id"`
	Week      int    `json:"week"`
	HomeID    int    `json:"home_id"`
	AwayID    int    `json:"away_id"`
	Played    bool   `json:"played"`
	HomeGoals int    `json:"home_goals"`
	AwayGoals int    `json:"away_goals"`
}

// Save writes the teams, the fixture list and every result to path as JSON.
func (s *Season) Save(path string) error {
	save := saveFile{Teams: s.teams}
	for _, f := range s.fixtures {
		save.Fixtures = append(save.Fixtures, savedFixture{
			ID:        f.ID,
			Week:      f.Week,
			HomeID:    f.Home.ID,
			AwayID:    f.Away.ID,
			Played:    f.Played,
			HomeGoals: f.HomeGoals,
			AwayGoals: f.AwayGoals,
		})
	}

	data, err := json.MarshalIndent(save, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal season: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write season file: %w", err)
	}
	return nil
}

// LoadSeason restores a season written by Save. The table is rebuilt from the
// stored results.
func LoadSeason(path string, log *logger.Logger) (*Season, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read season file: %w", err)
	}

	var save saveFile
	if err := json.Unmarshal(file, &save); err != nil {
		return nil, fmt.Errorf("failed to unmarshal season: %w", err)
	}
	if err := defs.ValidateTeams(save.Teams); err != nil {
		return nil, err
	}

	byID := make(map[int]defs.TeamDefinition, len(save.Teams))
	for _, t := range save.Teams {
		byID[t.ID] = t
	}
	seen := make(map[string]bool, len(save.Fixtures))
	fixtures := make([]Fixture, 0, len(save.Fixtures))
	for _, sf := range save.Fixtures {
		home, okHome := byID[sf.HomeID]
		away, okAway := byID[sf.AwayID]
		switch {
		case sf.ID == "" || seen[sf.ID]:
			return nil, fmt.Errorf("%w: missing or duplicate fixture id %q", ErrInvalidSave, sf.ID)
		case !okHome || !okAway || sf.HomeID == sf.AwayID:
			return nil, fmt.Errorf("%w: %s: bad teams %d v %d", ErrInvalidSave, sf.ID, sf.HomeID, sf.AwayID)
		case sf.HomeGoals < 0 || sf.AwayGoals < 0:
			return nil, fmt.Errorf("%w: %s: negative score", ErrInvalidSave, sf.ID)
		}
		seen[sf.ID] = true
		fixtures = append(fixtures, Fixture{
			ID:        sf.ID,
			Week:      sf.Week,
			Home:      home,
			Away:      away,
			Played:    sf.Played,
			HomeGoals: sf.HomeGoals,
			AwayGoals: sf.AwayGoals,
		})
	}
	if len(fixtures) == 0 {
		return nil, fmt.Errorf("%w: no fixtures", ErrInvalidSave)
	}

	if log == nil {
		log = logger.New("league")
	}
	s := &Season{teams: save.Teams, log: log}
	s.setFixtures(fixtures)
	log.Printf("season loaded from %s: %d of %d fixtures played", path, s.Played(), len(s.fixtures))
	return s, nil
}

// OpenSeason loads the season saved at path. When path is empty or the file
// does not exist yet, a new season is scheduled for teams.
func OpenSeason(path string, teams []defs.TeamDefinition, rng Shuffler, log *logger.Logger) (*Season, error) {
	if path == "" {
		return NewSeason(teams, rng, log)
	}
	s, err := LoadSeason(path, log)
	if errors.Is(err, fs.ErrNotExist) {
		return NewSeason(teams, rng, log)
	}
	return s, err
}
