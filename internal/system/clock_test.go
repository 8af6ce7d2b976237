package system

import (
	"errors"
	"testing"
	"time"

	"go-arena-league/internal/component"
	"go-arena-league/internal/event"
	"go-arena-league/internal/timer"
)

type eventLog struct {
	types []event.EventType
}

func (l *eventLog) OnEvent(e event.Event) {
	l.types = append(l.types, e.Type)
}

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, got := range l.types {
		if got == t {
			n++
		}
	}
	return n
}

type resultSpy struct {
	calls int
	a, b  int
}

func (r *resultSpy) report(a, b int) {
	r.calls++
	r.a, r.b = a, b
}

func newTestClock(duration int) (*ClockSystem, *timer.Scheduler, *eventLog, *resultSpy) {
	scheduler := timer.New()
	dispatcher := event.NewDispatcher()
	log := &eventLog{}
	dispatcher.SubscribeAll(log, event.MatchStarted, event.MatchPaused, event.MatchResumed,
		event.ClockTicked, event.MatchEnded, event.ResultReported)
	spy := &resultSpy{}
	clock := NewClockSystem(scheduler, dispatcher, ClockTiming{
		Duration:     duration,
		TickInterval: time.Second,
		GoalPause:    1500 * time.Millisecond,
		FinalWhistle: 2 * time.Second,
	}, spy.report)
	return clock, scheduler, log, spy
}

func TestClockRunsToFullTime(t *testing.T) {
	clock, scheduler, log, spy := newTestClock(90)
	if clock.Phase() != component.NotStarted {
		t.Fatalf("phase got=%v want=not started", clock.Phase())
	}
	if err := clock.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := clock.Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("second start got=%v want=%v", err, ErrAlreadyStarted)
	}

	scheduler.Advance(89 * time.Second)
	if clock.Remaining() != 1 || clock.Phase() != component.Running {
		t.Fatalf("after 89s remaining=%d phase=%v", clock.Remaining(), clock.Phase())
	}
	scheduler.Advance(time.Second)
	if clock.Phase() != component.Ended || clock.Remaining() != 0 {
		t.Fatalf("after 90s remaining=%d phase=%v", clock.Remaining(), clock.Phase())
	}
	if log.count(event.ClockTicked) != 90 {
		t.Fatalf("ticks got=%d want=90", log.count(event.ClockTicked))
	}

	scheduler.Advance(1999 * time.Millisecond)
	if spy.calls != 0 {
		t.Fatal("result reported before the final whistle delay")
	}
	scheduler.Advance(time.Millisecond)
	if spy.calls != 1 || !clock.Reported() {
		t.Fatalf("result calls got=%d want=1", spy.calls)
	}

	scheduler.Advance(time.Minute)
	if spy.calls != 1 || log.count(event.ResultReported) != 1 {
		t.Fatalf("result reported %d times", spy.calls)
	}
	if clock.Elapsed() != 90 {
		t.Fatalf("clock ticked after the end: elapsed=%d", clock.Elapsed())
	}
}

func TestGoalPausesAndResumes(t *testing.T) {
	clock, scheduler, log, _ := newTestClock(90)
	clock.Start()
	scheduler.Advance(time.Second)

	if !clock.RegisterGoal(event.Goal{Side: component.SideB}) {
		t.Fatal("goal while running was rejected")
	}
	if clock.Phase() != component.Paused || clock.Running() {
		t.Fatalf("phase got=%v want=paused", clock.Phase())
	}
	if clock.RegisterGoal(event.Goal{Side: component.SideB}) {
		t.Fatal("goal while paused was accepted")
	}
	if a, b := clock.Score(); a != 0 || b != 1 {
		t.Fatalf("score got=%d-%d want=0-1", a, b)
	}

	scheduler.Advance(1499 * time.Millisecond)
	if clock.Phase() != component.Paused || clock.Elapsed() != 1 {
		t.Fatalf("clock moved during the pause: phase=%v elapsed=%d", clock.Phase(), clock.Elapsed())
	}
	scheduler.Advance(time.Millisecond)
	if clock.Phase() != component.Running {
		t.Fatalf("phase got=%v want=running", clock.Phase())
	}
	if log.count(event.MatchPaused) != 1 || log.count(event.MatchResumed) != 1 {
		t.Fatalf("pause/resume events got=%d/%d", log.count(event.MatchPaused), log.count(event.MatchResumed))
	}

	scheduler.Advance(time.Second)
	if clock.Elapsed() != 2 {
		t.Fatalf("elapsed got=%d want=2", clock.Elapsed())
	}
	if goal, ok := clock.LastGoal(); !ok || goal.Side != component.SideB {
		t.Fatalf("last goal got=%+v ok=%v", goal, ok)
	}
}

func TestGoalScoredEventIsCounted(t *testing.T) {
	scheduler := timer.New()
	dispatcher := event.NewDispatcher()
	clock := NewClockSystem(scheduler, dispatcher, ClockTiming{Duration: 5, TickInterval: time.Second}, nil)

	dispatcher.Dispatch(event.Event{Type: event.GoalScored, Data: event.Goal{Side: component.SideA}})
	if a, _ := clock.Score(); a != 0 {
		t.Fatal("goal counted before kick off")
	}
	clock.Start()
	dispatcher.Dispatch(event.Event{Type: event.GoalScored, Data: event.Goal{Side: component.SideA}})
	if a, _ := clock.Score(); a != 1 {
		t.Fatalf("score A got=%d want=1", a)
	}
}

func TestGoalRejectedAfterFullTime(t *testing.T) {
	clock, scheduler, _, spy := newTestClock(2)
	clock.Start()
	scheduler.Advance(2 * time.Second)
	if clock.RegisterGoal(event.Goal{Side: component.SideA}) {
		t.Fatal("goal after full time was accepted")
	}
	scheduler.Advance(2 * time.Second)
	if spy.calls != 1 || spy.a != 0 || spy.b != 0 {
		t.Fatalf("result got calls=%d score=%d-%d want one 0-0", spy.calls, spy.a, spy.b)
	}
}

func TestStopCancelsEverything(t *testing.T) {
	clock, scheduler, _, spy := newTestClock(1)
	clock.Start()
	scheduler.Advance(time.Second)
	if clock.Phase() != component.Ended {
		t.Fatalf("phase got=%v want=ended", clock.Phase())
	}

	clock.Stop()
	clock.Stop()
	if scheduler.Pending() != 0 {
		t.Fatalf("pending timers after stop: %d", scheduler.Pending())
	}
	scheduler.Advance(time.Minute)
	if spy.calls != 0 || clock.Reported() {
		t.Fatal("result reported after stop")
	}
	if clock.RegisterGoal(event.Goal{}) {
		t.Fatal("goal accepted after stop")
	}
}

func TestStopDuringPause(t *testing.T) {
	clock, scheduler, _, _ := newTestClock(90)
	clock.Start()
	clock.RegisterGoal(event.Goal{Side: component.SideA})
	clock.Stop()
	scheduler.Advance(time.Minute)
	if clock.Phase() != component.Paused || clock.Elapsed() != 0 {
		t.Fatalf("stopped clock moved: phase=%v elapsed=%d", clock.Phase(), clock.Elapsed())
	}
	if err := clock.Start(); err == nil {
		t.Fatal("start after stop should fail")
	}
}

func TestPauseDropsPartialTick(t *testing.T) {
	clock, scheduler, _, _ := newTestClock(90)
	if err := clock.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	scheduler.Advance(600 * time.Millisecond)
	if !clock.RegisterGoal(event.Goal{Side: component.SideA}) {
		t.Fatal("goal rejected while running")
	}
	scheduler.Advance(1500 * time.Millisecond)
	if clock.Phase() != component.Running {
		t.Fatalf("phase got=%v want=running", clock.Phase())
	}

	// The 600ms played before the goal do not count towards the next tick.
	scheduler.Advance(900 * time.Millisecond)
	if clock.Elapsed() != 0 {
		t.Fatalf("elapsed got=%d want=0", clock.Elapsed())
	}
	scheduler.Advance(100 * time.Millisecond)
	if clock.Elapsed() != 1 {
		t.Fatalf("elapsed got=%d want=1", clock.Elapsed())
	}
}
