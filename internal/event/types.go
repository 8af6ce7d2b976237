// internal/event/types.go
package event

import "go-arena-league/internal/component"

const (
	MatchStarted   EventType = "MatchStarted"   // no payload
	GoalScored     EventType = "GoalScored"     // Goal
	MatchPaused    EventType = "MatchPaused"    // Goal that caused the pause
	MatchResumed   EventType = "MatchResumed"   // no payload
	ClockTicked    EventType = "ClockTicked"    // Tick
	MatchEnded     EventType = "MatchEnded"     // Score
	ResultReported EventType = "ResultReported" // Score
)

// Goal is raised once per body that leaves through the gap.
type Goal struct {
	Side component.Side
	Body int // index of the scoring body
}

// Tick carries the clock after it advanced.
type Tick struct {
	Elapsed   int
	Remaining int
}

// Score is the scoreline at the time of the event.
type Score struct {
	A, B int
}
