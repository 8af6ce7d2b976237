// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"go-arena-league/pkg/render"
)

// ErrInvalidTeams is returned when a team list cannot make a league.
var ErrInvalidTeams = errors.New("invalid team definitions")

// LoadTeams reads a JSON array of team definitions and validates it.
func LoadTeams(path string) ([]TeamDefinition, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read team definitions file: %w", err)
	}

	var teams []TeamDefinition
	if err := json.Unmarshal(file, &teams); err != nil {
		return nil, fmt.Errorf("failed to unmarshal team definitions: %w", err)
	}
	if err := ValidateTeams(teams); err != nil {
		return nil, err
	}
	return teams, nil
}

// ValidateTeams checks that there are at least two teams, that ids are unique
// and that every team has a name and a usable colour.
func ValidateTeams(teams []TeamDefinition) error {
	if len(teams) < 2 {
		return fmt.Errorf("%w: need at least 2 teams, got %d", ErrInvalidTeams, len(teams))
	}
	seen := make(map[int]bool, len(teams))
	for _, t := range teams {
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate id %d", ErrInvalidTeams, t.ID)
		}
		seen[t.ID] = true
		if t.Initial() == "" {
			return fmt.Errorf("%w: team %d has no name", ErrInvalidTeams, t.ID)
		}
		if _, err := render.ParseHexColor(t.PrimaryColor); err != nil {
			return fmt.Errorf("%w: team %d: %v", ErrInvalidTeams, t.ID, err)
		}
	}
	return nil
}

// TeamsFrom loads path, or returns the built-in teams when path is empty.
func TeamsFrom(path string) ([]TeamDefinition, error) {
	if path == "" {
		return DefaultTeams(), nil
	}
	return LoadTeams(path)
}
