// internal/app/match.go
package app

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go-arena-league/internal/component"
	"go-arena-league/internal/config"
	"go-arena-league/internal/event"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/system"
	"go-arena-league/internal/timer"
	"go-arena-league/internal/ui"
	"go-arena-league/internal/utils"
	"go-arena-league/pkg/render"

	"github.com/golang/geo/r2"
)

var (
	// ErrStopped is returned by Start on a match that was torn down.
	ErrStopped = errors.New("match stopped")
	// ErrInvalidKickoff is returned by New for unusable starting bodies.
	ErrInvalidKickoff = errors.New("invalid kickoff")
)

// Match is one arena simulation instance. It owns all mutable state of the
// match and is driven from a single goroutine through Update and Draw.
type Match struct {
	desc   Descriptor
	tuning config.Tuning
	log    *logger.Logger
	rng    system.RandomSource

	scheduler       *timer.Scheduler
	eventDispatcher *event.Dispatcher
	arena           *component.Arena
	collision       *system.CollisionSystem
	clock           *system.ClockSystem
	renderer        *system.RenderSystem
	scoreboard      *ui.Scoreboard

	kickoff     []component.Body
	accumulator time.Duration
	frames      int
	lastGoalAt  time.Duration
	stopped     bool
}

// Option configures a Match.
type Option func(*Match)

// WithTuning replaces the default tuning.
func WithTuning(t config.Tuning) Option {
	return func(m *Match) { m.tuning = t }
}

// WithRandom injects the random source used for jitter and respawns.
func WithRandom(rng system.RandomSource) Option {
	return func(m *Match) { m.rng = rng }
}

// WithLogger replaces the default "match" logger.
func WithLogger(l *logger.Logger) Option {
	return func(m *Match) { m.log = l }
}

// WithKickoff replaces the starting bodies.
func WithKickoff(bodies ...component.Body) Option {
	return func(m *Match) { m.kickoff = append([]component.Body{}, bodies...) }
}

// New validates desc and builds a match ready to Start. onResult receives
// the final score once, after the final whistle.
func New(desc Descriptor, onResult ResultFunc, opts ...Option) (*Match, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}

	m := &Match{
		desc:   desc,
		tuning: config.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	if err := m.tuning.Validate(); err != nil {
		return nil, err
	}
	if m.log == nil {
		m.log = logger.New("match")
	}
	if m.rng == nil {
		m.rng = utils.NewPRNGService(0)
	}

	center := r2.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	if m.kickoff == nil {
		m.kickoff = DefaultKickoff(center)
	}
	if len(m.kickoff) == 0 {
		return nil, fmt.Errorf("%w: no bodies", ErrInvalidKickoff)
	}
	for i, b := range m.kickoff {
		if !b.Side.Valid() {
			return nil, fmt.Errorf("%w: body %d has side %d", ErrInvalidKickoff, i, int(b.Side))
		}
	}

	m.scheduler = timer.New()
	m.eventDispatcher = event.NewDispatcher()
	m.arena = component.NewArena(center, m.tuning.ArenaRadius, m.tuning.GapHalfAngle, m.tuning.RotationRate)
	m.collision = system.NewCollisionSystem(m.arena, m.kickoff, m.tuning, m.rng, m.eventDispatcher)
	m.clock = system.NewClockSystem(m.scheduler, m.eventDispatcher, system.ClockTiming{
		Duration:     m.tuning.MatchDuration,
		TickInterval: m.tuning.TickInterval,
		GoalPause:    m.tuning.GoalPause,
		FinalWhistle: m.tuning.FinalWhistle,
	}, onResult)
	m.renderer = system.NewRenderSystem(m.arena, m.collision, m.tuning.BodyRadius, [2]system.SideStyle{
		sideStyle(desc.SideA),
		sideStyle(desc.SideB),
	})
	m.scoreboard = ui.NewScoreboard(40, 30, 10)

	m.eventDispatcher.SubscribeAll(m, event.MatchPaused, event.MatchResumed, event.MatchEnded, event.ResultReported)
	return m, nil
}

// DefaultKickoff returns the reference starting bodies around center.
func DefaultKickoff(center r2.Point) []component.Body {
	return []component.Body{
		{Pos: center.Add(r2.Point{X: -50, Y: 0}), Vel: r2.Point{X: 3, Y: 2}, Side: component.SideA},
		{Pos: center.Add(r2.Point{X: 100, Y: 60}), Vel: r2.Point{X: -2.5, Y: -3}, Side: component.SideB},
	}
}

func sideStyle(s SideInfo) system.SideStyle {
	c := s.rgba()
	initial := []rune(strings.TrimSpace(s.Initial))
	return system.SideStyle{
		Color:     c,
		TextColor: render.Contrast(c, config.TextLightColor, config.TextDarkColor),
		Initial:   string(initial[:1]),
	}
}

func (m *Match) OnEvent(e event.Event) {
	switch e.Type {
	case event.MatchPaused:
		goal := e.Data.(event.Goal)
		m.lastGoalAt = m.scheduler.Now()
		a, b := m.clock.Score()
		m.log.Printf("%s: goal for %s at %ds, %d-%d", m.desc.ID, m.sideName(goal.Side), m.clock.Elapsed(), a, b)
	case event.MatchResumed:
		m.log.Printf("%s: play resumes", m.desc.ID)
	case event.MatchEnded:
		s := e.Data.(event.Score)
		m.log.Printf("%s: full time %d-%d", m.desc.ID, s.A, s.B)
	case event.ResultReported:
		m.log.Printf("%s: result reported", m.desc.ID)
	}
}

// Start kicks the match off.
func (m *Match) Start() error {
	if m.stopped {
		return ErrStopped
	}
	if err := m.clock.Start(); err != nil {
		return err
	}
	m.log.Printf("%s: kick off %s vs %s", m.desc.ID, m.desc.SideA.displayName(), m.desc.SideB.displayName())
	return nil
}

// Update advances the match by dt of real time, in whole fixed frames. Time
// left over is carried into the next call.
func (m *Match) Update(dt time.Duration) {
	if m.stopped || m.clock.Reported() {
		return
	}
	m.accumulator += dt
	for m.accumulator >= m.tuning.FrameDuration {
		m.accumulator -= m.tuning.FrameDuration
		m.step()
		if m.stopped || m.clock.Reported() {
			m.accumulator = 0
			return
		}
	}
}

// step runs one fixed frame: timers first, then physics and rotation if the
// match is still running.
func (m *Match) step() {
	m.scheduler.Advance(m.tuning.FrameDuration)
	if !m.clock.Running() {
		return
	}
	m.collision.Step()
	if m.clock.Running() {
		m.arena.Advance()
	}
	m.frames++
}

// Draw renders the current state. A nil surface draws nothing.
func (m *Match) Draw(surface render.Surface) {
	if surface == nil {
		return
	}
	m.renderer.Draw(surface)

	a, b := m.clock.Score()
	view := ui.ScoreView{
		NameA:     m.desc.SideA.displayName(),
		NameB:     m.desc.SideB.displayName(),
		ColorA:    m.desc.SideA.rgba(),
		ColorB:    m.desc.SideB.rgba(),
		ScoreA:    a,
		ScoreB:    b,
		Remaining: m.clock.Remaining(),
		Phase:     m.clock.Phase(),
		SinceGoal: time.Hour,
	}
	if goal, ok := m.clock.LastGoal(); ok {
		view.LastScorer = m.sideName(goal.Side)
		view.ScorerSide = goal.Side
		view.SinceGoal = m.scheduler.Now() - m.lastGoalAt
	}
	m.scoreboard.Draw(surface, view)
}

// Stop tears the match down. Pending timers are cancelled, the result is
// never reported and later Update calls do nothing.
func (m *Match) Stop() {
	if m.stopped {
		return
	}
	m.stopped = true
	m.clock.Stop()
	m.scheduler.CancelAll()
	m.eventDispatcher.Clear()
	m.log.Printf("%s: torn down", m.desc.ID)
}

func (m *Match) sideName(s component.Side) string {
	if s == component.SideA {
		return m.desc.SideA.displayName()
	}
	return m.desc.SideB.displayName()
}

// Descriptor returns the match input.
func (m *Match) Descriptor() Descriptor { return m.desc }

// Phase returns the clock phase.
func (m *Match) Phase() component.Phase { return m.clock.Phase() }

// Score returns the goals of side A and side B.
func (m *Match) Score() (int, int) { return m.clock.Score() }

// Remaining returns the seconds left on the clock.
func (m *Match) Remaining() int { return m.clock.Remaining() }

// Bodies returns a copy of the bodies.
func (m *Match) Bodies() []component.Body { return m.collision.Bodies() }

// Arena returns a copy of the arena.
func (m *Match) Arena() component.Arena { return *m.arena }

// Frames returns how many physics frames have run.
func (m *Match) Frames() int { return m.frames }

// Ended reports whether the final whistle has gone.
func (m *Match) Ended() bool { return m.clock.Phase() == component.Ended }

// Done reports whether the match will not change any more: the result was
// reported or the match was torn down.
func (m *Match) Done() bool { return m.stopped || m.clock.Reported() }

// Stopped reports whether Stop was called.
func (m *Match) Stopped() bool { return m.stopped }
