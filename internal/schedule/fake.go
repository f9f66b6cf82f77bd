package schedule

import (
	"slices"
	"time"
)

// Fake is a Scheduler driven by a virtual clock. Timers fire only from
// Advance, in deadline order, so tests are deterministic.
type Fake struct {
	now    time.Time
	seq    int
	timers []*fakeTimer
}

type fakeTimer struct {
	owner  *Fake
	id     int
	period time.Duration
	next   time.Time
	fn     func()
	live   bool
}

// NewFake returns a Fake starting at a fixed epoch.
func NewFake() *Fake {
	return &Fake{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (f *Fake) Now() time.Time { return f.now }

func (f *Fake) Every(d time.Duration, fn func()) Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	f.seq++
	t := &fakeTimer{owner: f, id: f.seq, period: d, next: f.now.Add(d), fn: fn, live: true}
	f.timers = append(f.timers, t)
	return t
}

// Advance moves the clock forward by d, firing every tick that falls due.
func (f *Fake) Advance(d time.Duration) {
	target := f.now.Add(d)
	for {
		t := f.due(target)
		if t == nil {
			break
		}
		f.now = t.next
		t.next = t.next.Add(t.period)
		t.fn()
	}
	f.now = target
}

// Live returns the number of timers that have not been stopped.
func (f *Fake) Live() int {
	return len(f.timers)
}

func (f *Fake) due(target time.Time) *fakeTimer {
	var best *fakeTimer
	for _, t := range f.timers {
		if t.next.After(target) {
			continue
		}
		if best == nil || t.next.Before(best.next) || (t.next.Equal(best.next) && t.id < best.id) {
			best = t
		}
	}
	return best
}

func (t *fakeTimer) Stop() {
	if !t.live {
		return
	}
	t.live = false
	t.owner.timers = slices.DeleteFunc(t.owner.timers, func(o *fakeTimer) bool { return o == t })
}
