package relaxation

import "time"

// Scheduler abstracts timer creation so sessions can run against
// simulated time in tests. The real scheduler delegates to time.AfterFunc.
type Scheduler interface {
	// AfterFunc runs fn on its own goroutine after d elapses.
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancelable pending callback.
type Timer interface {
	// Stop cancels the callback if it has not fired yet, reporting
	// whether it was still pending.
	Stop() bool
}

type realScheduler struct{}

// NewScheduler returns the wall-clock scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
