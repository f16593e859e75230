package debounced

import (
	"context"
	"time"
)

// Result pairs a value with the error that produced it, for sources that
// can fail mid-stream.
type Result[T any] struct {
	Value T
	Err   error
}

// Ok wraps a successful value in a Result.
func Ok[T any](v T) Result[T] {
	return Result[T]{Value: v}
}

// Failed wraps an error in a Result.
func Failed[T any](err error) Result[T] {
	return Result[T]{Err: err}
}

// DebounceResults is [Debounce] over a source that can fail. Successful
// results are debounced exactly like plain values. A failed result
// terminates the stream: any buffered value is discarded, the failure is
// forwarded downstream, and the output closes. The pending value is not
// flushed first because a failure means the source's state is no longer
// trustworthy.
func DebounceResults[T any](
	ctx context.Context,
	in <-chan Result[T],
	d time.Duration,
	opts ...Option,
) <-chan Result[T] {
	return debounce(ctx, in, d, func(r Result[T]) bool { return r.Err != nil }, opts)
}
