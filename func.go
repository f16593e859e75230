package debounced

import (
	"sync"
	"time"

	"github.com/glacyr/debounced/clock"
)

// Func returns a trigger that runs fn once a quiet period of d has passed
// since the last trigger, and a cancel that discards any pending run. It is
// the callback form of [Debounce], for call sites that react to events with
// a function instead of consuming a channel.
//
// Both trigger and cancel are safe for concurrent use and may be called any
// number of times; cancel never has to be called. fn runs in its own
// goroutine and may overlap a later run, so it must be safe for that.
//
// Func panics if d <= 0 or fn is nil.
func Func(d time.Duration, fn func(), opts ...Option) (trigger func(), cancel func()) {
	if d <= 0 {
		panic("debounced: quiet period must be positive")
	}
	if fn == nil {
		panic("debounced: Func requires a non-nil fn")
	}
	o := applyOptions(opts)

	var mu sync.Mutex
	var t clock.Timer

	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if t == nil {
			t = o.clock.AfterFunc(d, fn)
			return
		}
		t.Reset(d)
	}
	cancel = func() {
		mu.Lock()
		defer mu.Unlock()
		if t != nil {
			t.Stop()
		}
	}
	return trigger, cancel
}
