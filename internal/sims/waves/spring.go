package waves

// Spring is one oscillator of the chain. X, Width and RestHeight are fixed at
// construction; Height and Velocity change every tick. Displacement caches
// Height-RestHeight and is refreshed by the stepper.
type Spring struct {
	X          float64
	Width      float64
	RestHeight float64

	Height       float64
	Velocity     float64
	Displacement float64
}

// NewSpring returns a spring sitting at rest.
func NewSpring(x, width, restHeight float64) Spring {
	return Spring{X: x, Width: width, RestHeight: restHeight, Height: restHeight}
}

// hooke applies the damped restoring force for one tick.
func (s *Spring) hooke(tension, dampening float64) {
	s.Displacement = s.Height - s.RestHeight
	s.Velocity += -tension*s.Displacement - s.Velocity*dampening
	s.Height += s.Velocity
}

func (s *Spring) refresh() { s.Displacement = s.Height - s.RestHeight }

func (s *Spring) settle() {
	s.Velocity = 0
	s.Height = s.RestHeight
	s.Displacement = 0
}
