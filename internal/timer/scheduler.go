// Package timer runs delayed callbacks against simulated time. Nothing runs
// on its own: time only moves when Advance is called, which keeps a match
// single threaded and lets tests run a whole match without sleeping.
package timer

import (
	"sort"
	"time"
)

// ID identifies a scheduled callback. The zero ID is never issued.
type ID uint64

type entry struct {
	id  ID
	due time.Duration
	fn  func()
}

// Scheduler is a queue of callbacks ordered by due time, then by the order
// they were scheduled in.
type Scheduler struct {
	now     time.Duration
	nextID  ID
	pending []entry
}

func New() *Scheduler {
	return &Scheduler{}
}

// Now returns the simulated time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules fn to run once d has elapsed.
func (s *Scheduler) After(d time.Duration, fn func()) ID {
	if d < 0 {
		d = 0
	}
	s.nextID++
	e := entry{id: s.nextID, due: s.now + d, fn: fn}
	i := sort.Search(len(s.pending), func(i int) bool {
		return s.pending[i].due > e.due
	})
	s.pending = append(s.pending, entry{})
	copy(s.pending[i+1:], s.pending[i:])
	s.pending[i] = e
	return e.id
}

// Cancel drops a pending callback. It reports whether one was removed.
func (s *Scheduler) Cancel(id ID) bool {
	for i, e := range s.pending {
		if e.id == id {
			s.pending = append(s.pending[:i], s.pending[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every pending callback.
func (s *Scheduler) CancelAll() {
	s.pending = nil
}

// Pending returns the number of callbacks still waiting.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// Scheduled reports whether id is still waiting.
func (s *Scheduler) Scheduled(id ID) bool {
	for _, e := range s.pending {
		if e.id == id {
			return true
		}
	}
	return false
}

// Advance moves time forward by dt and runs every callback that falls due,
// in order. Callbacks may schedule or cancel others; new ones that fall due
// within dt run during the same call. It returns how many callbacks ran.
func (s *Scheduler) Advance(dt time.Duration) int {
	target := s.now + dt
	fired := 0
	for len(s.pending) > 0 && s.pending[0].due <= target {
		e := s.pending[0]
		s.pending = s.pending[1:]
		s.now = e.due
		e.fn()
		fired++
	}
	s.now = target
	return fired
}
