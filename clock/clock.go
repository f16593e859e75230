// Package clock abstracts the time source used by the combinators so that
// tests can drive timers deterministically instead of sleeping.
package clock

import "time"

// Clock provides the time operations the combinators need. Use [Real] in
// production and [NewFake] in tests.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// After waits for the duration to elapse and then sends the current
	// time on the returned channel.
	After(d time.Duration) <-chan time.Time

	// NewTimer creates a new Timer that will send the current time on its
	// channel after at least duration d.
	NewTimer(d time.Duration) Timer

	// AfterFunc waits for the duration to elapse and then calls f in its
	// own goroutine. It returns a Timer that can be used to cancel or
	// reschedule the call; the returned Timer's channel is unused.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer represents a single scheduled firing. It mirrors the time.Timer
// contract: Stop and Reset do not drain the channel.
type Timer interface {
	// C returns the channel on which the firing is delivered.
	C() <-chan time.Time

	// Stop prevents the Timer from firing. It returns true if the call
	// stops the timer, false if the timer has already expired or been
	// stopped.
	Stop() bool

	// Reset changes the timer to expire after duration d. It returns true
	// if the timer had been active, false if the timer had expired or been
	// stopped.
	Reset(d time.Duration) bool
}

// Real returns a Clock backed by the time package.
func Real() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return &realTimer{t: time.AfterFunc(d, f)}
}

type realTimer struct {
	t *time.Timer
}

func (t *realTimer) C() <-chan time.Time {
	return t.t.C
}

func (t *realTimer) Stop() bool {
	return t.t.Stop()
}

func (t *realTimer) Reset(d time.Duration) bool {
	return t.t.Reset(d)
}
