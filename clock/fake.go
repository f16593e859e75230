package clock

import (
	"sort"
	"sync"
	"time"
)

// Fake is a Clock that only moves when told to. Timers fire synchronously
// inside [Fake.Advance], in deadline order, and deliver the deadline as the
// firing time. Safe for concurrent use.
type Fake struct {
	mu      sync.Mutex
	cond    *sync.Cond
	now     time.Time
	timers  []*fakeTimer
	armings int
}

// NewFake returns a Fake clock starting at an arbitrary fixed time.
func NewFake() *Fake {
	f := &Fake{now: time.Unix(1700000000, 0)}
	f.cond = sync.NewCond(&f.mu)
	return f
}

// Now returns the fake current time.
func (f *Fake) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

// After behaves like time.After against the fake clock.
func (f *Fake) After(d time.Duration) <-chan time.Time {
	return f.NewTimer(d).C()
}

// NewTimer creates a fake timer that fires once f has been advanced past
// its deadline.
func (f *Fake) NewTimer(d time.Duration) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{
		f:        f,
		ch:       make(chan time.Time, 1),
		deadline: f.now.Add(d),
		active:   true,
	}
	f.timers = append(f.timers, t)
	f.armings++
	f.cond.Broadcast()
	return t
}

// AfterFunc creates a fake timer that runs fn in its own goroutine once the
// timer's deadline is crossed by Advance.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &fakeTimer{
		f:        f,
		ch:       make(chan time.Time, 1),
		fn:       fn,
		deadline: f.now.Add(d),
		active:   true,
	}
	f.timers = append(f.timers, t)
	f.armings++
	f.cond.Broadcast()
	return t
}

// Advance moves the fake time forward by d, firing every active timer whose
// deadline is reached, in deadline order.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	target := f.now.Add(d)
	for {
		t := f.nextExpiredLocked(target)
		if t == nil {
			break
		}
		f.now = t.deadline
		t.active = false
		if t.fn != nil {
			go t.fn()
			continue
		}
		// Buffered channel: mirrors time.Timer, the firing is retained
		// until read and never blocks Advance.
		select {
		case t.ch <- t.deadline:
		default:
		}
	}
	f.now = target
}

// BlockUntilArmed waits until f has seen at least n armings overall, where
// every timer creation and every Reset counts as one arming. Tests use it to
// make sure a goroutine under test has (re-)armed its timer before Advance,
// without racing against the arming itself.
func (f *Fake) BlockUntilArmed(n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.armings < n {
		f.cond.Wait()
	}
}

func (f *Fake) nextExpiredLocked(target time.Time) *fakeTimer {
	var candidates []*fakeTimer
	for _, t := range f.timers {
		if t.active && !t.deadline.After(target) {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].deadline.Before(candidates[j].deadline)
	})
	return candidates[0]
}

type fakeTimer struct {
	f        *Fake
	ch       chan time.Time
	fn       func()
	deadline time.Time
	active   bool
}

func (t *fakeTimer) C() <-chan time.Time {
	return t.ch
}

func (t *fakeTimer) Stop() bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	wasActive := t.active
	t.active = false
	return wasActive
}

func (t *fakeTimer) Reset(d time.Duration) bool {
	t.f.mu.Lock()
	defer t.f.mu.Unlock()
	wasActive := t.active
	t.deadline = t.f.now.Add(d)
	t.active = true
	t.f.armings++
	t.f.cond.Broadcast()
	return wasActive
}
