// Package debounced collapses bursts of asynchronously produced values into
// a single representative value, and delays one-shot resolutions.
//
// [Debounce] implements trailing debounce over a channel: it re-emits only
// the most recently received value once a quiet period has passed with no
// new arrivals. [Delay] and [Delayed] resolve to a fixed value after a fixed
// duration. Leading debounce and throttling are out of scope.
package debounced

import (
	"context"
	"time"

	"github.com/glacyr/debounced/timer"
	"github.com/rs/zerolog"
)

// Debounce returns a channel that yields only the most recent value received
// from in once no new value has arrived for the quiet period d. Values
// arriving less than d apart overwrite each other; only the last one of a
// burst is ever observable downstream.
//
// The returned channel is unbuffered and closed when in is closed or ctx is
// canceled. A value still buffered when in closes is flushed before the
// close, without waiting out the remaining quiet period. Cancellation closes
// the output immediately and discards any buffered value.
//
// If a new value is already queued on in at the moment a quiet period
// expires, the arrival supersedes the expiry: the buffer is overwritten and
// the timer restarts. This makes the arrival/expiry race deterministic.
//
// Debounce panics if d <= 0. If in is nil, the returned channel is closed
// immediately.
func Debounce[T any](ctx context.Context, in <-chan T, d time.Duration, opts ...Option) <-chan T {
	return debounce(ctx, in, d, nil, opts)
}

func debounce[T any](
	ctx context.Context,
	in <-chan T,
	d time.Duration,
	failed func(T) bool,
	opts []Option,
) <-chan T {
	if d <= 0 {
		panic("debounced: quiet period must be positive")
	}
	o := applyOptions(opts)
	out := make(chan T)
	if in == nil {
		close(out)
		return out
	}

	db := &debouncer[T]{
		in:     in,
		out:    out,
		d:      d,
		timer:  timer.New(o.clock),
		log:    o.log,
		inst:   newInstruments(o.meter),
		failed: failed,
	}
	go db.run(ctx)
	return out
}

// debouncer holds the trailing-debounce state machine. All state is owned by
// the single goroutine started in debounce; there is no concurrent mutation.
type debouncer[T any] struct {
	in     <-chan T
	out    chan T
	d      time.Duration
	timer  *timer.Timer
	log    zerolog.Logger
	inst   *instruments
	failed func(T) bool

	pending    T
	hasPending bool
}

func (db *debouncer[T]) run(ctx context.Context) {
	defer close(db.out)
	defer db.timer.Stop()

	for {
		select {
		case v, ok := <-db.in:
			if db.onRecv(ctx, v, ok) {
				return
			}

		case <-db.timer.C():
			db.timer.Fired()
			// A value already queued on the source when the firing is
			// observed strictly preceded it: let the arrival supersede
			// the expiry instead of leaving the order to the scheduler.
			select {
			case v, ok := <-db.in:
				if db.onRecv(ctx, v, ok) {
					return
				}
				continue
			default:
			}
			if !db.hasPending {
				continue
			}
			db.inst.emitted.Add(ctx, 1)
			db.log.Trace().Msg("quiet period elapsed, emitting value")
			if !db.send(ctx, db.pending) {
				return
			}
			db.clear()

		case <-ctx.Done():
			db.log.Debug().Msg("context canceled, dropping debouncer")
			return
		}
	}
}

// onRecv reacts to one receive from the source and reports whether the
// machine reached its terminal state.
func (db *debouncer[T]) onRecv(ctx context.Context, v T, ok bool) bool {
	if !ok {
		if db.hasPending {
			db.inst.flushed.Add(ctx, 1)
			db.log.Trace().Msg("source exhausted, flushing pending value")
			db.send(ctx, db.pending)
		}
		db.log.Debug().Msg("debouncer terminated")
		return true
	}
	if db.failed != nil && db.failed(v) {
		if db.hasPending {
			db.inst.discarded.Add(ctx, 1)
			db.log.Trace().Msg("source failed, discarding pending value")
			db.clear()
		}
		db.send(ctx, v)
		return true
	}
	if db.hasPending {
		db.inst.coalesced.Add(ctx, 1)
	}
	db.pending = v
	db.hasPending = true
	db.timer.Arm(db.d)
	db.log.Trace().Msg("buffered value, quiet period restarted")
	return false
}

// send delivers v downstream, honoring cancellation. It reports whether the
// value was delivered.
func (db *debouncer[T]) send(ctx context.Context, v T) bool {
	select {
	case db.out <- v:
		return true
	case <-ctx.Done():
		return false
	}
}

func (db *debouncer[T]) clear() {
	var zero T
	db.pending = zero
	db.hasPending = false
}
