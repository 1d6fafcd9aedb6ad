package waves

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"ripple/internal/core"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestController(t *testing.T, cfg Config, background bool) (*Controller, *Field) {
	t.Helper()
	f := newTestField(t, cfg)
	c := NewController(f, cfg, Options{Background: background, Logger: quietLogger()})
	t.Cleanup(func() { c.Close() })
	return c, f
}

func runUntilIdle(t *testing.T, c *Controller, limit int) int {
	t.Helper()
	for tick := 1; tick <= limit; tick++ {
		if !c.Tick() {
			return tick
		}
	}
	t.Fatalf("controller still %v after %d ticks", c.State(), limit)
	return 0
}

func TestControllerScenarioFirstTick(t *testing.T) {
	c, f := newTestController(t, DefaultConfig(), false)
	if err := c.Inject(150, 200); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if c.State() != Running {
		t.Fatalf("expected Running after inject, got %v", c.State())
	}
	if !c.Tick() {
		t.Fatal("a fresh impulse must not settle after one tick")
	}

	springs := f.Springs()
	if springs[150].Velocity >= 200 {
		t.Fatalf("expected damped velocity, got %f", springs[150].Velocity)
	}
	if springs[149].Height == f.RestHeight() || springs[151].Height == f.RestHeight() {
		t.Fatal("immediate neighbours should have moved within the first tick")
	}
}

func TestControllerConvergesWithinBound(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndX = 900
	cfg.Granularity = 3
	c, f := newTestController(t, cfg, false)

	var got []core.Settlement
	c.OnSettle(func(s core.Settlement) { got = append(got, s) })

	if err := c.Inject(150, 300); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	ticks := runUntilIdle(t, c, 2000)

	if c.State() != Idle {
		t.Fatalf("expected Idle after settling, got %v", c.State())
	}
	for i, sp := range f.Springs() {
		if sp.Velocity != 0 || sp.Height != sp.RestHeight || sp.Displacement != 0 {
			t.Fatalf("spring %d not forced to exact rest: %+v", i, sp)
		}
	}
	if len(got) != 1 {
		t.Fatalf("expected one settlement, got %d", len(got))
	}
	if got[0].Ticks != ticks || got[0].Impulses != 1 {
		t.Fatalf("settlement %+v does not match %d ticks / 1 impulse", got[0], ticks)
	}
	if got[0].Peak <= 0 {
		t.Fatalf("expected a positive peak amplitude, got %f", got[0].Peak)
	}
	if c.Tick() {
		t.Fatal("Tick while idle must report false")
	}
}

func TestControllerSnapsSubUnitMotion(t *testing.T) {
	for _, v := range []float64{0.9, -0.99} {
		c, f := newTestController(t, DefaultConfig(), false)
		if err := c.Inject(10, v); err != nil {
			t.Fatalf("Inject: %v", err)
		}
		if c.Tick() {
			t.Fatalf("velocity %v should truncate to rest on the first tick", v)
		}
		if f.Energy() != 0 {
			t.Fatalf("velocity %v: residual energy %f after settling", v, f.Energy())
		}
	}
}

func TestControllerInjectOverwritesVelocity(t *testing.T) {
	c, f := newTestController(t, DefaultConfig(), false)
	f.Springs()[20].Velocity = 75

	if err := c.Inject(20, 10); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if got := f.Springs()[20].Velocity; got != 10 {
		t.Fatalf("expected velocity to be overwritten to 10, got %f", got)
	}
}

func TestControllerMergesIntoRunningCycle(t *testing.T) {
	c, _ := newTestController(t, DefaultConfig(), false)
	var settled []core.Settlement
	c.OnSettle(func(s core.Settlement) { settled = append(settled, s) })

	if err := c.Inject(50, 200); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	for i := 0; i < 30; i++ {
		c.Tick()
	}
	if err := c.Inject(250, 150); err != nil {
		t.Fatalf("second Inject: %v", err)
	}
	if c.State() != Running {
		t.Fatalf("second impulse should keep the cycle running, got %v", c.State())
	}
	if c.Status().Ticks != 30 {
		t.Fatalf("merged impulse must not restart the cycle, ticks=%d", c.Status().Ticks)
	}
	runUntilIdle(t, c, 5000)

	if len(settled) != 1 || settled[0].Impulses != 2 {
		t.Fatalf("expected one settlement covering 2 impulses, got %+v", settled)
	}
}

func TestControllerRejectsOutOfRange(t *testing.T) {
	c, f := newTestController(t, DefaultConfig(), false)
	for _, idx := range []int{-1, f.Len(), f.Len() + 10} {
		err := c.Inject(idx, 100)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("Inject(%d) error = %v, expected ErrIndexOutOfRange", idx, err)
		}
	}
	if c.State() != Idle {
		t.Fatalf("rejected impulse must not start the cycle, got %v", c.State())
	}
}

func TestControllerReset(t *testing.T) {
	c, f := newTestController(t, DefaultConfig(), false)
	if err := c.Inject(100, 200); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	for i := 0; i < 5; i++ {
		c.Tick()
	}
	c.Reset()
	if c.State() != Idle || f.Energy() != 0 {
		t.Fatalf("Reset should leave an idle field at rest, state=%v energy=%f", c.State(), f.Energy())
	}
}

func TestControllerBackgroundCycleSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Millisecond
	c, _ := newTestController(t, cfg, true)

	done := make(chan core.Settlement, 1)
	c.OnSettle(func(s core.Settlement) { done <- s })

	if err := c.Inject(150, 60); err != nil {
		t.Fatalf("Inject: %v", err)
	}

	// Read concurrently the way a render loop would.
	var wg sync.WaitGroup
	stop := make(chan struct{})
	wg.Add(1)
	go func() {
		defer wg.Done()
		var cols []core.Column
		for {
			select {
			case <-stop:
				return
			default:
				cols = c.Columns(cols)
			}
		}
	}()

	select {
	case s := <-done:
		if s.Ticks == 0 {
			t.Fatalf("settlement reported no ticks: %+v", s)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("background cycle did not settle")
	}
	close(stop)
	wg.Wait()

	if c.State() != Idle {
		t.Fatalf("expected Idle after background settle, got %v", c.State())
	}
}

func TestControllerCloseStopsCycle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TickInterval = time.Hour
	c, _ := newTestController(t, cfg, true)

	if err := c.Inject(10, 200); err != nil {
		t.Fatalf("Inject: %v", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := c.Inject(10, 200); !errors.Is(err, ErrClosed) {
		t.Fatalf("Inject after Close = %v, expected ErrClosed", err)
	}
	if err := c.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{Idle: "idle", Running: "running", Settling: "settling", State(9): "State(9)"} {
		if s.String() != want {
			t.Fatalf("State(%d).String() = %q, expected %q", int(s), s.String(), want)
		}
	}
}
