package mainloop

import (
	"sort"
	"time"
)

type timer struct {
	key string
	at  time.Duration
	seq uint64
	fn  func()
}

// Timers is a keyed queue of callbacks due at an uptime. It is driven by the
// UI loop through RunDue and is not safe for concurrent use.
type Timers struct {
	timers []timer
	seq    uint64
}

// NewTimers creates an empty timer queue.
func NewTimers() *Timers {
	return &Timers{}
}

// PostAt schedules fn to run once the uptime reaches at. Posting under a key
// that is already queued replaces the earlier timer.
func (t *Timers) PostAt(key string, at time.Duration, fn func()) {
	t.Remove(key)
	t.seq++
	t.timers = append(t.timers, timer{key: key, at: at, seq: t.seq, fn: fn})
	sort.SliceStable(t.timers, func(i, j int) bool {
		if t.timers[i].at == t.timers[j].at {
			return t.timers[i].seq < t.timers[j].seq
		}
		return t.timers[i].at < t.timers[j].at
	})
}

// Remove cancels the timer queued under key, if any.
func (t *Timers) Remove(key string) {
	for i, tm := range t.timers {
		if tm.key == key {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return
		}
	}
}

// Has reports whether a timer is queued under key.
func (t *Timers) Has(key string) bool {
	for _, tm := range t.timers {
		if tm.key == key {
			return true
		}
	}
	return false
}

// Next returns the earliest deadline.
func (t *Timers) Next() (time.Duration, bool) {
	if len(t.timers) == 0 {
		return 0, false
	}
	return t.timers[0].at, true
}

// RunDue runs every timer due at or before now, earliest first. Callbacks may
// post or remove timers; newly posted timers that are already due run in the
// same call.
func (t *Timers) RunDue(now time.Duration) int {
	ran := 0
	for len(t.timers) > 0 && t.timers[0].at <= now {
		tm := t.timers[0]
		t.timers = t.timers[1:]
		tm.fn()
		ran++
	}
	return ran
}

// Len returns the number of queued timers.
func (t *Timers) Len() int {
	return len(t.timers)
}
