package waves

import "math"

// MapPositionToIndex converts a pixel offset into a spring index, clamped to
// [0, n-1].
func MapPositionToIndex(pixelX, segmentWidth float64, n int) int {
	if n <= 0 || segmentWidth <= 0 {
		return 0
	}
	idx := int(math.Floor(pixelX / segmentWidth))
	return max(0, min(idx, n-1))
}

// Injector turns pointer positions into impulses on a Controller.
type Injector struct {
	ctrl    *Controller
	originX float64
	segment float64
	speed   float64
	rebuild bool
}

// NewInjector returns an Injector that fires cfg.InitialSpeed impulses.
func NewInjector(ctrl *Controller, cfg Config) *Injector {
	return &Injector{
		ctrl:    ctrl,
		originX: float64(cfg.OriginX),
		segment: float64(cfg.Granularity),
		speed:   cfg.InitialSpeed,
		rebuild: cfg.RebuildOnImpulse,
	}
}

// IndexAt maps a pixel x coordinate to a spring index.
func (in *Injector) IndexAt(pixelX float64) int {
	return MapPositionToIndex(pixelX-in.originX, in.segment, in.ctrl.Len())
}

// PointerDown fires the configured initial speed at the spring under pixelX.
// The vertical coordinate is not used.
func (in *Injector) PointerDown(pixelX, _ float64) error {
	return in.Impulse(pixelX, in.speed)
}

// Impulse fires velocity at the spring under pixelX. When rebuilding is
// enabled the field is re-tiled first with its current energy carried over,
// so waves already in flight survive.
func (in *Injector) Impulse(pixelX, velocity float64) error {
	idx := in.IndexAt(pixelX)
	if in.rebuild {
		in.ctrl.Rebuild()
	}
	return in.ctrl.Inject(idx, velocity)
}
