// Package clock abstracts the time source and the timer facility a tween
// runs on, so sessions can be driven by real timers or stepped by hand.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// Timer is a handle to a scheduled callback.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented the
	// callback from running.
	Stop() bool
}

type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// System uses the wall clock and time.AfterFunc. Callbacks run on their own
// goroutines.
type System struct{}

func (System) Now() time.Time { return time.Now() }

func (System) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}
