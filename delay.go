package debounced

import (
	"context"
	"errors"
	"time"

	"github.com/glacyr/debounced/timer"
)

// ErrCompleted is returned when a Delay that already produced its value (or
// was stopped) is awaited again.
var ErrCompleted = errors.New("debounced: delay already completed")

type delayState int

const (
	delayNotStarted delayState = iota
	delayArmed
	delayCompleted
)

// Delay resolves to a fixed value after a fixed duration. It is a one-shot:
// the value is produced at most once, and a Delay that has completed, been
// canceled or been stopped stays completed forever.
//
// A Delay is meant to be owned and awaited by a single goroutine.
type Delay[T any] struct {
	value T
	d     time.Duration
	timer *timer.Timer
	state delayState
}

// NewDelay returns a Delay that resolves to value once d has elapsed. The
// countdown starts on the first call to Await, not at construction.
func NewDelay[T any](value T, d time.Duration, opts ...Option) *Delay[T] {
	o := applyOptions(opts)
	return &Delay[T]{
		value: value,
		d:     d,
		timer: timer.New(o.clock),
	}
}

// Await blocks until the duration has elapsed and returns the stored value,
// moved out of the Delay. The first call arms the timer; a call after
// completion returns ErrCompleted. If ctx is canceled first, the timer is
// released, the zero value and ctx.Err() are returned, and the Delay is
// spent.
func (d *Delay[T]) Await(ctx context.Context) (T, error) {
	var zero T
	switch d.state {
	case delayCompleted:
		return zero, ErrCompleted
	case delayNotStarted:
		d.timer.Arm(d.d)
		d.state = delayArmed
	}

	select {
	case <-d.timer.C():
		d.timer.Fired()
		d.state = delayCompleted
		v := d.value
		d.value = zero
		return v, nil
	case <-ctx.Done():
		d.Stop()
		return zero, ctx.Err()
	}
}

// Stop abandons the Delay before it resolves, releasing the timer. It is
// safe to call in any state, including after completion, and has no later
// observable side effect. The value is never produced after Stop.
func (d *Delay[T]) Stop() {
	var zero T
	d.timer.Stop()
	d.value = zero
	d.state = delayCompleted
}

// Delayed resolves to value after d has elapsed. It is shorthand for
// awaiting a fresh [Delay] once.
func Delayed[T any](ctx context.Context, value T, d time.Duration, opts ...Option) (T, error) {
	return NewDelay(value, d, opts...).Await(ctx)
}
