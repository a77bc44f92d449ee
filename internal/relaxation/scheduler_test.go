package relaxation

import (
	"sort"
	"sync"
	"time"
)

// fakeScheduler runs timers against simulated time. Advance fires due
// callbacks in order on the calling goroutine, so tests are fully
// deterministic.
type fakeScheduler struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	sched   *fakeScheduler
	at      time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{}
}

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &fakeTimer{sched: s, at: s.now + d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// Advance moves simulated time forward, firing due timers in deadline
// order. Callbacks may schedule new timers; those fire too if they fall
// within the window.
func (s *fakeScheduler) Advance(d time.Duration) {
	s.mu.Lock()
	target := s.now + d
	for {
		var next *fakeTimer
		for _, t := range s.timers {
			if t.fired || t.stopped || t.at > target {
				continue
			}
			if next == nil || t.at < next.at {
				next = t
			}
		}
		if next == nil {
			break
		}
		s.now = next.at
		next.fired = true
		fn := next.fn
		s.mu.Unlock()
		fn()
		s.mu.Lock()
	}
	s.now = target
	s.mu.Unlock()
}

// pending returns deadlines of unfired, unstopped timers.
func (s *fakeScheduler) pending() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []time.Duration
	for _, t := range s.timers {
		if !t.fired && !t.stopped {
			out = append(out, t.at)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (t *fakeTimer) Stop() bool {
	t.sched.mu.Lock()
	defer t.sched.mu.Unlock()
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
