// internal/league/fixture.go
package league

import (
	"fmt"

	"go-arena-league/internal/app"
	"go-arena-league/internal/defs"
)

// Fixture is one scheduled match. The home team plays as side A.
type Fixture struct {
	ID        string
	Week      int
	Home      defs.TeamDefinition
	Away      defs.TeamDefinition
	Played    bool
	HomeGoals int
	AwayGoals int
}

// Descriptor builds the engine input for the fixture.
func (f Fixture) Descriptor() app.Descriptor {
	return app.Descriptor{
		ID:    f.ID,
		SideA: sideInfo(f.Home),
		SideB: sideInfo(f.Away),
	}
}

func sideInfo(t defs.TeamDefinition) app.SideInfo {
	return app.SideInfo{
		Name:    t.Name,
		Color:   t.PrimaryColor,
		Initial: t.Initial(),
	}
}

func (f Fixture) String() string {
	if !f.Played {
		return fmt.Sprintf("week %d: %s vs %s", f.Week, f.Home.Name, f.Away.Name)
	}
	return fmt.Sprintf("week %d: %s %d-%d %s", f.Week, f.Home.Name, f.HomeGoals, f.AwayGoals, f.Away.Name)
}

// Shuffler permutes a slice; utils.PRNGService implements it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// Schedule returns a double round robin: every team meets every other team
// once at home and once away. Teams are shuffled first, then paired with the
// circle method. An odd team count gives one team a bye each week.
func Schedule(teams []defs.TeamDefinition, rng Shuffler) []Fixture {
	order := make([]int, len(teams))
	for i := range order {
		order[i] = i
	}
	if rng != nil {
		rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })
	}
	if len(order)%2 == 1 {
		order = append(order, -1)
	}

	n := len(order)
	rounds := n - 1
	var fixtures []Fixture
	id := 1
	add := func(week, home, away int) {
		if home < 0 || away < 0 {
			return
		}
		fixtures = append(fixtures, Fixture{
			ID:   fmt.Sprintf("match-%d", id),
			Week: week,
			Home: teams[home],
			Away: teams[away],
		})
		id++
	}

	type pair struct{ home, away int }
	firstHalf := make([][]pair, rounds)
	for r := 0; r < rounds; r++ {
		for j := 0; j < n/2; j++ {
			home, away := order[j], order[n-1-j]
			if (j == 0 && r%2 == 1) || (j > 0 && j%2 == 1) {
				home, away = away, home
			}
			firstHalf[r] = append(firstHalf[r], pair{home, away})
		}
		// Keep the first slot fixed and rotate the rest by one.
		last := order[n-1]
		copy(order[2:], order[1:n-1])
		order[1] = last
	}

	for r, pairs := range firstHalf {
		for _, p := range pairs {
			add(r+1, p.home, p.away)
		}
	}
	for r, pairs := range firstHalf {
		for _, p := range pairs {
			add(rounds+r+1, p.away, p.home)
		}
	}
	return fixtures
}
