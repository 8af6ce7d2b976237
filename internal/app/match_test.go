package app

import (
	"errors"
	"testing"
	"time"

	"go-arena-league/internal/component"
	"go-arena-league/internal/config"
	"go-arena-league/internal/logger"
	"go-arena-league/internal/utils"
	"go-arena-league/pkg/render"

	"github.com/golang/geo/r2"
)

type fixedRandom float64

func (f fixedRandom) Float64() float64 { return float64(f) }

type resultSpy struct {
	calls int
	a, b  int
}

func (r *resultSpy) report(a, b int) {
	r.calls++
	r.a, r.b = a, b
}

func testDescriptor() Descriptor {
	return Descriptor{
		ID:    "match-1",
		SideA: SideInfo{Name: "Reds", Color: "#DC2626", Initial: "R"},
		SideB: SideInfo{Name: "Blues", Color: "#2563EB", Initial: "B"},
	}
}

func TestNewRejectsInvalidDescriptor(t *testing.T) {
	desc := testDescriptor()
	desc.SideB.Initial = " "
	if _, err := New(desc, nil, WithLogger(logger.Discard())); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("missing initial got=%v want=%v", err, ErrInvalidDescriptor)
	}

	desc = testDescriptor()
	desc.SideA.Color = ""
	if _, err := New(desc, nil, WithLogger(logger.Discard())); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("missing colour got=%v want=%v", err, ErrInvalidDescriptor)
	}

	desc = testDescriptor()
	desc.SideA.Color = "crimson"
	if _, err := New(desc, nil, WithLogger(logger.Discard())); !errors.Is(err, ErrInvalidDescriptor) {
		t.Fatalf("bad colour got=%v want=%v", err, ErrInvalidDescriptor)
	}
}

func TestNewRejectsInvalidTuning(t *testing.T) {
	tuning := config.Default()
	tuning.BodyRadius = tuning.ArenaRadius
	_, err := New(testDescriptor(), nil, WithTuning(tuning), WithLogger(logger.Discard()))
	if !errors.Is(err, config.ErrInvalidTuning) {
		t.Fatalf("got=%v want=%v", err, config.ErrInvalidTuning)
	}
}

func TestNewRejectsInvalidKickoff(t *testing.T) {
	center := r2.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	for _, side := range []component.Side{-1, 2, 7} {
		_, err := New(testDescriptor(), nil,
			WithLogger(logger.Discard()),
			WithKickoff(component.Body{Pos: center, Vel: r2.Point{X: 3}, Side: side}))
		if !errors.Is(err, ErrInvalidKickoff) {
			t.Fatalf("side %d got=%v want=%v", int(side), err, ErrInvalidKickoff)
		}
	}

	_, err := New(testDescriptor(), nil, WithLogger(logger.Discard()), WithKickoff())
	if !errors.Is(err, ErrInvalidKickoff) {
		t.Fatalf("no bodies got=%v want=%v", err, ErrInvalidKickoff)
	}
}

func TestFullMatchReportsOnce(t *testing.T) {
	spy := &resultSpy{}
	m, err := New(testDescriptor(), spy.report,
		WithRandom(utils.NewPRNGService(11)),
		WithLogger(logger.Discard()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := m.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}

	lastA, lastB := 0, 0
	for i := 0; i < 600 && !m.Done(); i++ {
		m.Update(time.Second)
		a, b := m.Score()
		if a < lastA || b < lastB {
			t.Fatalf("score went backwards: %d-%d after %d-%d", a, b, lastA, lastB)
		}
		lastA, lastB = a, b
	}

	if !m.Done() || !m.Ended() {
		t.Fatalf("match did not finish: phase=%v", m.Phase())
	}
	if spy.calls != 1 {
		t.Fatalf("result calls got=%d want=1", spy.calls)
	}
	if spy.a != lastA || spy.b != lastB || spy.a < 0 || spy.b < 0 {
		t.Fatalf("reported %d-%d, scoreboard %d-%d", spy.a, spy.b, lastA, lastB)
	}
	if m.Remaining() != 0 {
		t.Fatalf("remaining got=%d want=0", m.Remaining())
	}

	frames := m.Frames()
	m.Update(time.Minute)
	if spy.calls != 1 || m.Frames() != frames {
		t.Fatal("finished match kept running")
	}
}

func TestPauseFreezesBodiesAndGap(t *testing.T) {
	center := r2.Point{X: config.ScreenWidth / 2, Y: config.ScreenHeight / 2}
	m, err := New(testDescriptor(), nil,
		WithRandom(fixedRandom(0.5)),
		WithLogger(logger.Discard()),
		WithKickoff(component.Body{Pos: center.Add(r2.Point{X: 170}), Vel: r2.Point{X: 5}}))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m.Start()

	frame := config.Default().FrameDuration
	for i := 0; i < 20 && m.Phase() == component.Running; i++ {
		m.Update(frame)
	}
	if m.Phase() != component.Paused {
		t.Fatalf("phase got=%v want=paused", m.Phase())
	}
	if a, b := m.Score(); a != 1 || b != 0 {
		t.Fatalf("score got=%d-%d want=1-0", a, b)
	}

	bodies := m.Bodies()
	rotation := m.Arena().Rotation
	frames := m.Frames()

	m.Update(time.Second)
	if m.Phase() != component.Paused {
		t.Fatalf("pause ended early: phase=%v", m.Phase())
	}
	if got := m.Bodies(); got[0] != bodies[0] {
		t.Fatalf("body moved during the pause: %+v -> %+v", bodies[0], got[0])
	}
	if m.Arena().Rotation != rotation || m.Frames() != frames {
		t.Fatal("gap rotated during the pause")
	}

	m.Update(time.Second)
	if m.Phase() != component.Running {
		t.Fatalf("phase got=%v want=running", m.Phase())
	}
	if m.Arena().Rotation <= rotation || m.Bodies()[0].Pos == bodies[0].Pos {
		t.Fatal("simulation did not resume")
	}
}

func TestStopPreventsResult(t *testing.T) {
	spy := &resultSpy{}
	m, err := New(testDescriptor(), spy.report,
		WithRandom(utils.NewPRNGService(3)),
		WithLogger(logger.Discard()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m.Start()
	m.Update(10 * time.Second)

	m.Stop()
	bodies := m.Bodies()
	frames := m.Frames()
	a, b := m.Score()

	for i := 0; i < 200; i++ {
		m.Update(time.Second)
	}
	if spy.calls != 0 {
		t.Fatal("result reported after teardown")
	}
	if m.Frames() != frames || m.Bodies()[0] != bodies[0] || m.Bodies()[1] != bodies[1] {
		t.Fatal("state changed after teardown")
	}
	if a2, b2 := m.Score(); a2 != a || b2 != b {
		t.Fatal("score changed after teardown")
	}
	if !m.Done() || !m.Stopped() {
		t.Fatal("stopped match should be done")
	}
	if err := m.Start(); !errors.Is(err, ErrStopped) {
		t.Fatalf("start after stop got=%v want=%v", err, ErrStopped)
	}
}

func TestDrawShowsReadyBanner(t *testing.T) {
	m, err := New(testDescriptor(), nil, WithLogger(logger.Discard()))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	m.Draw(nil)

	rec := render.NewRecorder(config.ScreenWidth, config.ScreenHeight)
	m.Draw(rec)
	found := false
	for _, s := range rec.Texts() {
		if s == "Match Ready!" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ready banner missing from %v", rec.Texts())
	}
}
