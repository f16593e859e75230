// Package timer provides a re-armable single-firing timer owned by exactly
// one user. It exists so the combinators can treat "fire once after d,
// restart on demand" as a small value type instead of juggling the
// stop-and-drain choreography of time.Timer at every call site.
package timer

import (
	"time"

	"github.com/glacyr/debounced/clock"
)

// Timer fires at most once per arming. The zero state is unarmed: C returns
// nil, which blocks forever in a select, so an unarmed Timer is simply an
// inert case.
//
// A Timer is not safe for concurrent use; it is meant to be owned by a
// single goroutine.
type Timer struct {
	clock clock.Clock
	inner clock.Timer
	armed bool
}

// New returns an unarmed Timer driven by c.
func New(c clock.Clock) *Timer {
	return &Timer{clock: c}
}

// Arm starts a countdown of d. If the Timer is already armed, the previous
// countdown is discarded entirely and the Timer restarts from d; a firing
// that already happened but was never received is swallowed so it cannot be
// mistaken for the new one.
func (t *Timer) Arm(d time.Duration) {
	if t.inner == nil {
		t.inner = t.clock.NewTimer(d)
		t.armed = true
		return
	}
	t.drain()
	t.inner.Reset(d)
	t.armed = true
}

// C returns the firing channel, or nil if the Timer is not armed. Receiving
// from it consumes the firing; the caller must then call Fired or Arm
// before the next firing can be observed.
func (t *Timer) C() <-chan time.Time {
	if !t.armed {
		return nil
	}
	return t.inner.C()
}

// Fired records that the owner received the firing from C. The Timer
// becomes unarmed without touching the underlying timer, which has already
// expired.
func (t *Timer) Fired() {
	t.armed = false
}

// Stop cancels any pending countdown. It is safe to call on an unarmed or
// already-fired Timer and is the only cleanup an owner needs before
// abandoning the Timer.
func (t *Timer) Stop() {
	if t.inner == nil {
		return
	}
	t.drain()
	t.armed = false
}

// drain stops the underlying timer and swallows an already-delivered firing
// so a later Reset starts from a clean channel.
func (t *Timer) drain() {
	if !t.inner.Stop() {
		select {
		case <-t.inner.C():
		default:
		}
	}
}
