package core

import (
	"testing"
	"time"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepDue(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now

	if got := fs.Due(); got != 0 {
		t.Fatalf("first call should prime the clock, got %d ticks", got)
	}

	clock.advance(16 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("expected 1 tick after 16ms, got %d", got)
	}

	// 6ms carried over plus 16ms makes two more ticks.
	clock.advance(16 * time.Millisecond)
	if got := fs.Due(); got != 2 {
		t.Fatalf("expected accumulated remainder to release 2 ticks, got %d", got)
	}

	clock.advance(5 * time.Millisecond)
	if got := fs.Due(); got != 0 {
		t.Fatalf("expected no tick before the interval elapsed, got %d", got)
	}
}

func TestFixedStepCapsCatchUp(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10 * time.Millisecond)
	fs.now = clock.now
	fs.Due()

	clock.advance(time.Second)
	if got := fs.Due(); got != maxCatchUp {
		t.Fatalf("expected catch-up to be capped at %d, got %d", maxCatchUp, got)
	}
	clock.advance(10 * time.Millisecond)
	if got := fs.Due(); got != 1 {
		t.Fatalf("expected backlog to be dropped after capping, got %d", got)
	}
}

func TestFixedStepRejectsNonPositiveInterval(t *testing.T) {
	fs := NewFixedStep(0)
	if fs.Interval() != 10*time.Millisecond {
		t.Fatalf("expected fallback interval of 10ms, got %v", fs.Interval())
	}
}
