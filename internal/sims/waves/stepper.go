package waves

// Stepper advances a chain by one fixed tick: every spring first feels its
// own restoring force, then neighbours exchange energy over a number of
// coupling passes.
type Stepper struct {
	tension   float64
	dampening float64
	spread    float64
	passes    int

	left  []float64
	right []float64
}

// NewStepper returns a Stepper using the constants in p.
func NewStepper(p Params) *Stepper {
	return &Stepper{
		tension:   p.Tension,
		dampening: p.Dampening,
		spread:    p.SpreadSpeed,
		passes:    p.Passes,
	}
}

// Step advances springs in place by one tick.
func (st *Stepper) Step(springs []Spring) {
	for i := range springs {
		springs[i].hooke(st.tension, st.dampening)
	}
	st.spreadNeighbours(springs)
	for i := range springs {
		springs[i].refresh()
	}
}

// spreadNeighbours runs the coupling passes. Within a pass every delta is
// taken from heights as they stood at the start of the pass; velocities are
// nudged first, heights afterwards.
func (st *Stepper) spreadNeighbours(springs []Spring) {
	n := len(springs)
	if n < 2 {
		return
	}
	if len(st.left) != n {
		st.left = make([]float64, n)
		st.right = make([]float64, n)
	}
	left, right := st.left, st.right
	last := n - 1

	for pass := 0; pass < st.passes; pass++ {
		for i := 0; i < n; i++ {
			if i > 0 {
				left[i] = st.spread * (springs[i].Height - springs[i-1].Height)
				springs[i-1].Velocity += left[i]
			}
			if i < last {
				right[i] = st.spread * (springs[i].Height - springs[i+1].Height)
				springs[i+1].Velocity += right[i]
			}
		}
		for i := 0; i < n; i++ {
			if i > 0 {
				springs[i-1].Height += left[i]
			}
			if i < last {
				springs[i+1].Height += right[i]
			}
		}
	}
}
