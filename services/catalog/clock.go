package catalog

import "time"

// Clock schedules callbacks. Production code uses the real clock; tests
// drive timers by hand so hover lifecycles are verified deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a stoppable scheduled callback.
type Timer interface {
	Stop() bool
}

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// NewRealClock returns the wall clock.
func NewRealClock() Clock { return realClock{} }
