package core

import (
	"maps"
	"slices"
	"time"
)

// Size describes the pixel extent of a simulated surface.
type Size struct {
	W int
	H int
}

// Column is one drawable segment of a surface.
type Column struct {
	X      float64
	Height float64
	Width  float64
}

// Surface defines the minimal contract the render loop drives. Columns is
// called every frame and must not mutate simulation state.
type Surface interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Columns(dst []Column) []Column
	PointerDown(x, y float64) error
	Close() error
}

// Ticker is implemented by surfaces that can be advanced from the frame loop
// instead of their own background cycle. Tick reports whether the surface is
// still in motion.
type Ticker interface {
	Tick() bool
}

// Paced is implemented by surfaces with a preferred tick interval.
type Paced interface {
	TickInterval() time.Duration
}

// Dropper injects an impulse at a random location.
type Dropper interface {
	Drop() error
}

// Settlement describes one completed wave cycle, from the first impulse until
// the surface was forced back to rest.
type Settlement struct {
	Ticks    int
	Impulses int
	Peak     float64
	Started  time.Time
	Duration time.Duration
}

// SettleNotifier lets callers observe completed cycles.
type SettleNotifier interface {
	OnSettle(fn func(Settlement))
}

// Status is a point-in-time summary shown on the HUD.
type Status struct {
	State     string
	Amplitude float64
	Energy    float64
	Ticks     int
}

// StatusProvider exposes the current Status of a surface.
type StatusProvider interface {
	Status() Status
}

// Factory constructs a Surface using an optional configuration map.
type Factory func(cfg map[string]string) (Surface, error)

var surfaces = map[string]Factory{}

// Register adds a surface factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	surfaces[name] = f
}

// Surfaces exposes the registry of available surface factories.
func Surfaces() map[string]Factory {
	return surfaces
}

// Names returns the registered surface names in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(surfaces))
}
