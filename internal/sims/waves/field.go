package waves

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"ripple/internal/core"
)

// Field owns the ordered chain of springs tiling [originX, endX). Index i
// always maps to the same horizontal position, including across rebuilds.
// Field is not safe for concurrent use; Controller serialises access.
type Field struct {
	originX     int
	endX        int
	granularity int
	rest        float64

	springs []Spring
	scratch []float64
}

// Snapshot holds per-index displacement and velocity, in chain order.
type Snapshot struct {
	Displacement []float64
	Velocity     []float64
}

// Build tiles [originX, endX) with springs of the given granularity. A
// trailing partial segment still gets a spring so the domain has no gaps.
func Build(originX, endX, granularity int, restHeight float64) []Spring {
	if granularity <= 0 || endX <= originX {
		return nil
	}
	springs := make([]Spring, 0, (endX-originX+granularity-1)/granularity)
	for x := originX; x < endX; x += granularity {
		springs = append(springs, NewSpring(float64(x), float64(granularity), restHeight))
	}
	return springs
}

// NewField validates cfg and builds a chain at rest.
func NewField(cfg Config) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	f := &Field{
		originX:     cfg.OriginX,
		endX:        cfg.EndX,
		granularity: cfg.Granularity,
		rest:        cfg.RestHeight(),
	}
	f.Rebuild()
	return f, nil
}

// Springs exposes the backing slice so the stepper can mutate it in place.
func (f *Field) Springs() []Spring { return f.springs }

// Len returns the number of springs.
func (f *Field) Len() int { return len(f.springs) }

// RestHeight returns the shared equilibrium height.
func (f *Field) RestHeight() float64 { return f.rest }

// Granularity returns the width of one segment.
func (f *Field) Granularity() int { return f.granularity }

// OriginX returns the left edge of the domain.
func (f *Field) OriginX() int { return f.originX }

// Rebuild replaces the chain with a fresh one at rest.
func (f *Field) Rebuild() {
	f.springs = Build(f.originX, f.endX, f.granularity, f.rest)
	f.scratch = make([]float64, len(f.springs))
}

// Snapshot captures the energy currently held by the chain.
func (f *Field) Snapshot() Snapshot {
	s := Snapshot{
		Displacement: make([]float64, len(f.springs)),
		Velocity:     make([]float64, len(f.springs)),
	}
	for i := range f.springs {
		s.Displacement[i] = f.springs[i].Height - f.rest
		s.Velocity[i] = f.springs[i].Velocity
	}
	return s
}

// Restore adds saved energy back onto the chain index by index. Entries past
// the shorter of the two lengths are left alone.
func (f *Field) Restore(s Snapshot) {
	n := min(len(f.springs), len(s.Displacement), len(s.Velocity))
	for i := 0; i < n; i++ {
		sp := &f.springs[i]
		sp.Height += s.Displacement[i]
		sp.Velocity += s.Velocity[i]
		sp.refresh()
	}
}

// Settle forces every spring to exact rest in a single pass.
func (f *Field) Settle() {
	for i := range f.springs {
		f.springs[i].settle()
	}
}

// AtRest reports whether every velocity and displacement truncates to zero
// in units of epsilon.
func (f *Field) AtRest(epsilon float64) bool {
	for i := range f.springs {
		sp := &f.springs[i]
		if math.Trunc(sp.Velocity/epsilon) != 0 || math.Trunc(sp.Displacement/epsilon) != 0 {
			return false
		}
	}
	return true
}

// Amplitude returns the largest absolute displacement in the chain.
func (f *Field) Amplitude() float64 {
	if len(f.springs) == 0 {
		return 0
	}
	for i := range f.springs {
		f.scratch[i] = f.springs[i].Height - f.rest
	}
	return floats.Norm(f.scratch, math.Inf(1))
}

// Energy returns the sum of squared displacements and velocities.
func (f *Field) Energy() float64 {
	if len(f.springs) == 0 {
		return 0
	}
	for i := range f.springs {
		f.scratch[i] = f.springs[i].Height - f.rest
	}
	e := floats.Dot(f.scratch, f.scratch)
	for i := range f.springs {
		f.scratch[i] = f.springs[i].Velocity
	}
	return e + floats.Dot(f.scratch, f.scratch)
}

// Columns appends the drawable state of every spring to dst[:0].
func (f *Field) Columns(dst []core.Column) []core.Column {
	dst = dst[:0]
	for i := range f.springs {
		sp := &f.springs[i]
		dst = append(dst, core.Column{X: sp.X, Height: sp.Height, Width: sp.Width})
	}
	return dst
}
