// internal/system/clock.go
package system

import (
	"errors"
	"time"

	"go-arena-league/internal/component"
	"go-arena-league/internal/event"
	"go-arena-league/internal/timer"
)

// ErrAlreadyStarted is returned by Start on a clock that has left NotStarted.
var ErrAlreadyStarted = errors.New("match already started")

// ResultFunc receives the final score exactly once per match.
type ResultFunc func(scoreA, scoreB int)

// ClockTiming groups the durations the clock schedules with.
type ClockTiming struct {
	Duration     int           // ticks in a match
	TickInterval time.Duration // time per tick
	GoalPause    time.Duration // celebration after a goal
	FinalWhistle time.Duration // delay between Ended and the result report
}

// ClockSystem is the match clock and pause controller. It listens for
// GoalScored, keeps the score and moves the match through
// NotStarted → Running → (Paused ⇄ Running)* → Ended. All of its waiting is
// done with timers on the shared scheduler.
type ClockSystem struct {
	phase    component.Phase
	elapsed  int
	scores   [2]int
	timing   ClockTiming
	onResult ResultFunc

	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher

	tickTimer    timer.ID
	resumeTimer  timer.ID
	whistleTimer timer.ID
	lastGoal     event.Goal
	reported     bool
	stopped      bool
}

func NewClockSystem(scheduler *timer.Scheduler, eventDispatcher *event.Dispatcher, timing ClockTiming, onResult ResultFunc) *ClockSystem {
	cs := &ClockSystem{
		phase:           component.NotStarted,
		timing:          timing,
		onResult:        onResult,
		scheduler:       scheduler,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(event.GoalScored, cs)
	return cs
}

func (c *ClockSystem) OnEvent(e event.Event) {
	if e.Type == event.GoalScored {
		if goal, ok := e.Data.(event.Goal); ok {
			c.RegisterGoal(goal)
		}
	}
}

// Start moves the clock to Running and schedules the first tick.
func (c *ClockSystem) Start() error {
	if c.phase != component.NotStarted || c.stopped {
		return ErrAlreadyStarted
	}
	c.phase = component.Running
	c.scheduleTick()
	c.eventDispatcher.Dispatch(event.Event{Type: event.MatchStarted})
	return nil
}

// RegisterGoal counts a goal and pauses the match. Goals arriving while the
// match is not running are rejected.
func (c *ClockSystem) RegisterGoal(goal event.Goal) bool {
	if c.phase != component.Running || c.stopped {
		return false
	}
	c.scores[goal.Side]++
	c.lastGoal = goal
	c.pause()
	return true
}

func (c *ClockSystem) pause() {
	c.phase = component.Paused
	c.scheduler.Cancel(c.tickTimer)
	c.resumeTimer = c.scheduler.After(c.timing.GoalPause, c.resume)
	c.eventDispatcher.Dispatch(event.Event{Type: event.MatchPaused, Data: c.lastGoal})
}

func (c *ClockSystem) resume() {
	if c.phase != component.Paused {
		return
	}
	c.phase = component.Running
	c.scheduleTick()
	c.eventDispatcher.Dispatch(event.Event{Type: event.MatchResumed})
}

func (c *ClockSystem) scheduleTick() {
	c.tickTimer = c.scheduler.After(c.timing.TickInterval, c.tick)
}

func (c *ClockSystem) tick() {
	if c.phase != component.Running {
		return
	}
	c.elapsed++
	c.eventDispatcher.Dispatch(event.Event{
		Type: event.ClockTicked,
		Data: event.Tick{Elapsed: c.elapsed, Remaining: c.Remaining()},
	})
	if c.elapsed >= c.timing.Duration {
		c.end()
		return
	}
	c.scheduleTick()
}

func (c *ClockSystem) end() {
	c.phase = component.Ended
	c.scheduler.Cancel(c.tickTimer)
	c.scheduler.Cancel(c.resumeTimer)
	c.eventDispatcher.Dispatch(event.Event{Type: event.MatchEnded, Data: c.score()})
	c.whistleTimer = c.scheduler.After(c.timing.FinalWhistle, c.report)
}

func (c *ClockSystem) report() {
	if c.reported || c.stopped {
		return
	}
	c.reported = true
	score := c.score()
	if c.onResult != nil {
		c.onResult(score.A, score.B)
	}
	c.eventDispatcher.Dispatch(event.Event{Type: event.ResultReported, Data: score})
}

// Stop tears the clock down: pending timers are dropped and the result is
// never reported. Safe to call more than once.
func (c *ClockSystem) Stop() {
	if c.stopped {
		return
	}
	c.stopped = true
	c.scheduler.Cancel(c.tickTimer)
	c.scheduler.Cancel(c.resumeTimer)
	c.scheduler.Cancel(c.whistleTimer)
	c.eventDispatcher.Unsubscribe(event.GoalScored, c)
}

func (c *ClockSystem) score() event.Score {
	return event.Score{A: c.scores[component.SideA], B: c.scores[component.SideB]}
}

// Phase returns the current lifecycle phase.
func (c *ClockSystem) Phase() component.Phase {
	return c.phase
}

// Running reports whether physics may advance.
func (c *ClockSystem) Running() bool {
	return c.phase == component.Running && !c.stopped
}

func (c *ClockSystem) Elapsed() int {
	return c.elapsed
}

func (c *ClockSystem) Remaining() int {
	return c.timing.Duration - c.elapsed
}

// Score returns the goals of side A and side B.
func (c *ClockSystem) Score() (int, int) {
	s := c.score()
	return s.A, s.B
}

// LastGoal returns the most recent accepted goal, if any.
func (c *ClockSystem) LastGoal() (event.Goal, bool) {
	return c.lastGoal, c.scores[0]+c.scores[1] > 0
}

// Reported reports whether the result callback has fired.
func (c *ClockSystem) Reported() bool {
	return c.reported
}

// Stopped reports whether the clock was torn down.
func (c *ClockSystem) Stopped() bool {
	return c.stopped
}
