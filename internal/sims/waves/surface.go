package waves

import (
	"strconv"
	"time"

	"ripple/internal/core"
)

// Surface adapts a Field, its Controller and an Injector to core.Surface.
type Surface struct {
	name  string
	cfg   Config
	field *Field
	ctrl  *Controller
	inj   *Injector
	rng   *core.RNG
}

// NewSurface validates cfg and assembles a surface at rest.
func NewSurface(name string, cfg Config, opts Options) (*Surface, error) {
	field, err := NewField(cfg)
	if err != nil {
		return nil, err
	}
	ctrl := NewController(field, cfg, opts)
	return &Surface{
		name:  name,
		cfg:   cfg,
		field: field,
		ctrl:  ctrl,
		inj:   NewInjector(ctrl, cfg),
		rng:   core.NewRNG(0),
	}, nil
}

// Name returns the surface identifier.
func (s *Surface) Name() string { return s.name }

// Size reports the pixel extent of the domain.
func (s *Surface) Size() core.Size { return core.Size{W: s.cfg.Width(), H: s.cfg.Height} }

// Config returns the configuration the surface was built with.
func (s *Surface) Config() Config { return s.cfg }

// WriteYAML snapshots the effective configuration to path.
func (s *Surface) WriteYAML(path string) error { return s.cfg.WriteYAML(path) }

// Controller exposes the update cycle.
func (s *Surface) Controller() *Controller { return s.ctrl }

// Injector exposes the pointer mapping.
func (s *Surface) Injector() *Injector { return s.inj }

// Reset forces the surface to rest and reseeds random drops.
func (s *Surface) Reset(seed int64) {
	s.ctrl.Reset()
	s.rng = core.NewRNG(seed)
}

// Columns appends the drawable state to dst[:0].
func (s *Surface) Columns(dst []core.Column) []core.Column { return s.ctrl.Columns(dst) }

// PointerDown fires an impulse at the pointer position.
func (s *Surface) PointerDown(x, y float64) error { return s.inj.PointerDown(x, y) }

// Drop fires an impulse of random strength at a random position.
func (s *Surface) Drop() error {
	x := s.rng.Between(float64(s.cfg.OriginX), float64(s.cfg.EndX))
	v := s.rng.Between(s.cfg.InitialSpeed/2, s.cfg.InitialSpeed*1.5)
	return s.inj.Impulse(x, v)
}

// Tick advances the surface when driven cooperatively.
func (s *Surface) Tick() bool { return s.ctrl.Tick() }

// Background reports whether the controller ticks itself.
func (s *Surface) Background() bool { return s.ctrl.background }

// TickInterval is the configured spacing between ticks.
func (s *Surface) TickInterval() time.Duration { return s.cfg.TickInterval }

// OnSettle registers a callback for completed cycles.
func (s *Surface) OnSettle(fn func(core.Settlement)) { s.ctrl.OnSettle(fn) }

// Status reports the controller state and field metrics.
func (s *Surface) Status() core.Status { return s.ctrl.Status() }

// Close stops any background cycle.
func (s *Surface) Close() error { return s.ctrl.Close() }

// factory builds surfaces for the registry. Recognised keys besides the
// Config fields: "config" (YAML path), "mode" ("sync" disables the
// background cycle) and "seed".
func factory(name string, preset func(*Config)) core.Factory {
	return func(m map[string]string) (core.Surface, error) {
		cfg, err := LoadConfig(m["config"])
		if err != nil {
			return nil, err
		}
		if preset != nil {
			preset(&cfg)
		}
		cfg = FromMap(cfg, m)

		s, err := NewSurface(name, cfg, Options{Background: m["mode"] != "sync"})
		if err != nil {
			return nil, err
		}
		if v, ok := m["seed"]; ok {
			if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
				s.Reset(seed)
			}
		}
		return s, nil
	}
}

var presets = map[string]func(*Config){
	"waves":        nil,
	"waves-coarse": func(c *Config) { c.Granularity = 6 },
	"waves-fine":   func(c *Config) { c.Granularity = 1 },
}

// ApplyPreset applies the named preset to base. It reports false for unknown
// names.
func ApplyPreset(name string, base Config) (Config, bool) {
	preset, ok := presets[name]
	if !ok {
		return base, false
	}
	if preset != nil {
		preset(&base)
	}
	return base, true
}

func init() {
	for name, preset := range presets {
		core.Register(name, factory(name, preset))
	}
}
