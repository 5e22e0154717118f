package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the quiet period required after the last
// filesystem event before a reload runs. Editors save a config file as
// a burst of writes (or a temp-file rename plus chmod); one reload per
// burst is enough.
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer coalesces a burst of events into a single callback. Each
// Trigger restarts the quiet period; only the last callback passed in
// runs once the period elapses.
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
}

// NewDebouncer returns a Debouncer with the given quiet period, or
// DefaultDebounceDuration when duration is 0.
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback after the quiet period, replacing any
// callback still pending from an earlier Trigger.
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, callback)
}

// Cancel drops any pending callback.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Duration returns the quiet period.
func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
