// internal/league/table.go
package league

import (
	"sort"

	"go-arena-league/internal/defs"
)

// Points for a result.
const (
	PointsWin  = 3
	PointsDraw = 1
)

// Standing is one row of the league table.
type Standing struct {
	Team         defs.TeamDefinition
	Played       int
	Won          int
	Drawn        int
	Lost         int
	GoalsFor     int
	GoalsAgainst int
	Points       int
}

func (s Standing) GoalDifference() int {
	return s.GoalsFor - s.GoalsAgainst
}

func (s *Standing) add(scored, conceded int) {
	s.Played++
	s.GoalsFor += scored
	s.GoalsAgainst += conceded
	switch {
	case scored > conceded:
		s.Won++
		s.Points += PointsWin
	case scored == conceded:
		s.Drawn++
		s.Points += PointsDraw
	default:
		s.Lost++
	}
}

// Table accumulates results per team.
type Table struct {
	rows  map[int]*Standing
	order []int
}

func NewTable(teams []defs.TeamDefinition) *Table {
	t := &Table{rows: make(map[int]*Standing, len(teams))}
	for _, team := range teams {
		t.rows[team.ID] = &Standing{Team: team}
		t.order = append(t.order, team.ID)
	}
	return t
}

// Record adds one result. Unknown team ids are ignored.
func (t *Table) Record(homeID, awayID, homeGoals, awayGoals int) {
	if row, ok := t.rows[homeID]; ok {
		row.add(homeGoals, awayGoals)
	}
	if row, ok := t.rows[awayID]; ok {
		row.add(awayGoals, homeGoals)
	}
}

// Standings returns the table ordered by points, goal difference, goals
// scored, then name.
func (t *Table) Standings() []Standing {
	out := make([]Standing, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, *t.rows[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		if a.GoalDifference() != b.GoalDifference() {
			return a.GoalDifference() > b.GoalDifference()
		}
		if a.GoalsFor != b.GoalsFor {
			return a.GoalsFor > b.GoalsFor
		}
		return a.Team.Name < b.Team.Name
	})
	return out
}
