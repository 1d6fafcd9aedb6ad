package waves

import (
	"fmt"
	"strconv"
	"time"
)

// Params holds the physical constants shared by every spring in a chain.
type Params struct {
	Tension     float64 `yaml:"tension"`
	Dampening   float64 `yaml:"dampening"`
	SpreadSpeed float64 `yaml:"spread_speed"`
	Passes      int     `yaml:"passes"`

	// RestEpsilon is the magnitude below which a velocity or displacement
	// counts as zero. With 1 the test truncates to integer pixel units.
	RestEpsilon float64 `yaml:"rest_epsilon"`
}

// Config controls the spatial domain and cadence of a wave surface.
type Config struct {
	OriginX     int `yaml:"origin_x"`
	EndX        int `yaml:"end_x"`
	Height      int `yaml:"height"`
	Granularity int `yaml:"granularity"`

	InitialSpeed     float64       `yaml:"initial_speed"`
	TickInterval     time.Duration `yaml:"tick_interval"`
	RebuildOnImpulse bool          `yaml:"rebuild_on_impulse"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard 600x600 pond with 300 springs.
func DefaultConfig() Config {
	return Config{
		OriginX:          0,
		EndX:             600,
		Height:           600,
		Granularity:      2,
		InitialSpeed:     200,
		TickInterval:     10 * time.Millisecond,
		RebuildOnImpulse: true,
		Params: Params{
			Tension:     0.025,
			Dampening:   0.020,
			SpreadSpeed: 0.25,
			Passes:      5,
			RestEpsilon: 1,
		},
	}
}

// RestHeight is the equilibrium height shared by all springs.
func (c Config) RestHeight() float64 { return float64(c.Height) / 2 }

// Width is the horizontal extent of the domain.
func (c Config) Width() int { return c.EndX - c.OriginX }

// SegmentCount is the number of springs tiling [OriginX, EndX).
func (c Config) SegmentCount() int {
	if c.Granularity <= 0 || c.Width() <= 0 {
		return 0
	}
	return (c.Width() + c.Granularity - 1) / c.Granularity
}

// Validate rejects configurations that cannot tile the domain or whose
// constants would never bring the chain back to rest.
func (c Config) Validate() error {
	switch {
	case c.Granularity <= 0:
		return fmt.Errorf("%w: granularity %d must be positive", ErrInvalidConfiguration, c.Granularity)
	case c.EndX <= c.OriginX:
		return fmt.Errorf("%w: domain [%d, %d) is empty", ErrInvalidConfiguration, c.OriginX, c.EndX)
	case c.Height <= 0:
		return fmt.Errorf("%w: height %d must be positive", ErrInvalidConfiguration, c.Height)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval %v must be positive", ErrInvalidConfiguration, c.TickInterval)
	}
	return c.Params.Validate()
}

// Validate checks the physical constants for a damped, stable chain.
func (p Params) Validate() error {
	switch {
	case p.Dampening <= 0 || p.Dampening >= 1:
		return fmt.Errorf("%w: dampening %g must be in (0, 1)", ErrInvalidConfiguration, p.Dampening)
	case p.Tension <= 0 || p.Tension >= 4-2*p.Dampening:
		// Past 4-2d the per-spring update overshoots and grows every tick.
		return fmt.Errorf("%w: tension %g must be in (0, %g)", ErrInvalidConfiguration, p.Tension, 4-2*p.Dampening)
	case p.SpreadSpeed <= 0 || p.SpreadSpeed >= 0.5:
		return fmt.Errorf("%w: spread speed %g must be in (0, 0.5)", ErrInvalidConfiguration, p.SpreadSpeed)
	case p.Passes < 0:
		return fmt.Errorf("%w: passes %d must not be negative", ErrInvalidConfiguration, p.Passes)
	case p.RestEpsilon <= 0:
		return fmt.Errorf("%w: rest epsilon %g must be positive", ErrInvalidConfiguration, p.RestEpsilon)
	}
	return nil
}

// FromMap populates a Config from a string map (flag-style key/value pairs)
// on top of base. Unparseable values are ignored.
func FromMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["origin_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.OriginX = parsed
		}
	}
	if v, ok := cfg["end_x"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.EndX = parsed
		}
	}
	if v, ok := cfg["height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Height = parsed
		}
	}
	if v, ok := cfg["granularity"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Granularity = parsed
		}
	}
	if v, ok := cfg["initial_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.InitialSpeed = parsed
		}
	}
	if v, ok := cfg["tick_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil {
			c.TickInterval = parsed
		}
	}
	if v, ok := cfg["rebuild_on_impulse"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.RebuildOnImpulse = parsed
		}
	}
	if v, ok := cfg["tension"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Tension = parsed
		}
	}
	if v, ok := cfg["dampening"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.Dampening = parsed
		}
	}
	if v, ok := cfg["spread_speed"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.SpreadSpeed = parsed
		}
	}
	if v, ok := cfg["passes"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Params.Passes = parsed
		}
	}
	if v, ok := cfg["rest_epsilon"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Params.RestEpsilon = parsed
		}
	}
	return c
}
