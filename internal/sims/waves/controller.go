package waves

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"ripple/internal/core"
)

// State is the phase of a Controller's update cycle.
type State int

const (
	// Idle means no stepping; the field is at rest.
	Idle State = iota
	// Running means the field is stepped every tick.
	Running
	// Settling is entered when the chain is judged at rest and left within
	// the same tick, after the field has been forced to exact rest.
	Settling
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Settling:
		return "settling"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Options configure a Controller.
type Options struct {
	// Background runs the update cycle on its own goroutine, started by the
	// first impulse and stopped once the chain settles. Without it the owner
	// must call Tick.
	Background bool
	Logger     *slog.Logger
}

// Controller owns the update cycle of one Field and is its only mutator.
// All methods are safe for concurrent use.
type Controller struct {
	mu sync.Mutex

	field    *Field
	stepper  *Stepper
	epsilon  float64
	interval time.Duration
	log      *slog.Logger
	now      func() time.Time

	background bool
	active     bool // a background cycle goroutine is alive
	closed     bool
	quit       chan struct{}
	wg         sync.WaitGroup

	state    State
	cycle    cycleStats
	onSettle []func(core.Settlement)
}

type cycleStats struct {
	ticks    int
	impulses int
	peak     float64
	started  time.Time
}

// NewController returns an idle controller for field using the constants in
// cfg. cfg is expected to have been validated by NewField.
func NewController(field *Field, cfg Config, opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		field:      field,
		stepper:    NewStepper(cfg.Params),
		epsilon:    cfg.Params.RestEpsilon,
		interval:   cfg.TickInterval,
		log:        logger,
		now:        time.Now,
		background: opts.Background,
		quit:       make(chan struct{}),
	}
}

// State returns the current phase.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Len returns the number of springs in the field.
func (c *Controller) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.Len()
}

// OnSettle registers fn to be called after each completed cycle. Callbacks
// run without the controller lock held.
func (c *Controller) OnSettle(fn func(core.Settlement)) {
	if fn == nil {
		return
	}
	c.mu.Lock()
	c.onSettle = append(c.onSettle, fn)
	c.mu.Unlock()
}

// Inject overwrites the velocity of spring index and starts the update cycle
// if it is not already running. A running cycle absorbs the impulse as is.
func (c *Controller) Inject(index int, velocity float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if index < 0 || index >= c.field.Len() {
		return fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, c.field.Len())
	}

	c.field.springs[index].Velocity = velocity

	if c.state == Running {
		c.cycle.impulses++
		c.log.Debug("impulse merged", "index", index, "velocity", velocity, "tick", c.cycle.ticks)
		return nil
	}

	c.state = Running
	c.cycle = cycleStats{impulses: 1, started: c.now()}
	c.log.Info("wave cycle started", "index", index, "velocity", velocity)

	if c.background && !c.active {
		c.active = true
		c.wg.Add(1)
		go c.run()
	}
	return nil
}

// Rebuild re-tiles the field without losing the energy it carries.
func (c *Controller) Rebuild() {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := c.field.Snapshot()
	c.field.Rebuild()
	c.field.Restore(snap)
}

// Tick advances a running field by one step and reports whether it is still
// running afterwards. It is a no-op while idle.
func (c *Controller) Tick() bool {
	c.mu.Lock()
	running, settled := c.step()
	c.mu.Unlock()
	c.notify(settled)
	return running
}

// step must be called with c.mu held.
func (c *Controller) step() (bool, *core.Settlement) {
	if c.state != Running {
		return false, nil
	}
	c.stepper.Step(c.field.springs)
	c.cycle.ticks++
	if a := c.field.Amplitude(); a > c.cycle.peak {
		c.cycle.peak = a
	}
	if !c.field.AtRest(c.epsilon) {
		return true, nil
	}

	c.state = Settling
	c.field.Settle()
	c.state = Idle

	return false, &core.Settlement{
		Ticks:    c.cycle.ticks,
		Impulses: c.cycle.impulses,
		Peak:     c.cycle.peak,
		Started:  c.cycle.started,
		Duration: c.now().Sub(c.cycle.started),
	}
}

func (c *Controller) notify(s *core.Settlement) {
	if s == nil {
		return
	}
	c.log.Info("wave settled", "ticks", s.Ticks, "impulses", s.Impulses, "peak", s.Peak, "duration", s.Duration)
	c.mu.Lock()
	fns := c.onSettle
	c.mu.Unlock()
	for _, fn := range fns {
		fn(*s)
	}
}

// run is the background update cycle. It exits once the field settles, the
// controller is reset, or Close is called.
func (c *Controller) run() {
	defer c.wg.Done()
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.quit:
			return
		case <-ticker.C:
			c.mu.Lock()
			running, settled := c.step()
			if !running {
				c.active = false
			}
			c.mu.Unlock()
			c.notify(settled)
			if !running {
				return
			}
		}
	}
}

// Reset forces the field to rest and returns to Idle without reporting a
// settlement.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.field.Settle()
	c.state = Idle
	c.cycle = cycleStats{}
}

// Columns appends the drawable state of the field to dst[:0].
func (c *Controller) Columns(dst []core.Column) []core.Column {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.Columns(dst)
}

// Snapshot returns a copy of the field's energy.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.field.Snapshot()
}

// Status summarises the current cycle.
func (c *Controller) Status() core.Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return core.Status{
		State:     c.state.String(),
		Amplitude: c.field.Amplitude(),
		Energy:    c.field.Energy(),
		Ticks:     c.cycle.ticks,
	}
}

// Close stops the background cycle, if any, and waits for it to exit.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.quit)
	c.mu.Unlock()
	c.wg.Wait()
	return nil
}
