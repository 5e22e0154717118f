package watcher

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncerDefaultDuration(t *testing.T) {
	if d := NewDebouncer(0); d.Duration() != DefaultDebounceDuration {
		t.Errorf("Duration() = %v, want %v", d.Duration(), DefaultDebounceDuration)
	}
	if d := NewDebouncer(40 * time.Millisecond); d.Duration() != 40*time.Millisecond {
		t.Errorf("Duration() = %v, want 40ms", d.Duration())
	}
}

func TestDebouncerCoalescesBurst(t *testing.T) {
	var reloads atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	// An editor save shows up as several events in quick succession;
	// only one reload should come out the other side.
	for i := 0; i < 5; i++ {
		d.Trigger(func() { reloads.Add(1) })
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(120 * time.Millisecond)

	if got := reloads.Load(); got != 1 {
		t.Errorf("burst produced %d reloads, want 1", got)
	}
}

func TestDebouncerSeparateSaves(t *testing.T) {
	var reloads atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Trigger(func() { reloads.Add(1) })
	time.Sleep(60 * time.Millisecond)
	d.Trigger(func() { reloads.Add(1) })
	time.Sleep(60 * time.Millisecond)

	if got := reloads.Load(); got != 2 {
		t.Errorf("two settled saves produced %d reloads, want 2", got)
	}
}

func TestDebouncerCancel(t *testing.T) {
	var reloads atomic.Int32
	d := NewDebouncer(50 * time.Millisecond)

	d.Trigger(func() { reloads.Add(1) })
	d.Cancel()
	time.Sleep(100 * time.Millisecond)

	if got := reloads.Load(); got != 0 {
		t.Errorf("canceled trigger produced %d reloads, want 0", got)
	}

	// Cancel with nothing pending is a no-op.
	d.Cancel()
}
