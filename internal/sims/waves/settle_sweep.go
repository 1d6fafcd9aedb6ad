package waves

import (
	"io"
	"log/slog"
	"sync"

	"ripple/internal/core"
)

// Trial is one impulse to evaluate from rest.
type Trial struct {
	Index    int
	Velocity float64
}

// TrialResult reports how long a Trial took to settle.
type TrialResult struct {
	Trial
	Ticks   int
	Peak    float64
	Settled bool
	Err     error
}

// RunTrial injects t into a fresh chain built from cfg and ticks it until it
// settles or maxTicks elapse.
func RunTrial(cfg Config, t Trial, maxTicks int) TrialResult {
	res := TrialResult{Trial: t}
	field, err := NewField(cfg)
	if err != nil {
		res.Err = err
		return res
	}
	ctrl := NewController(field, cfg, Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	ctrl.OnSettle(func(s core.Settlement) {
		res.Settled = true
		res.Peak = s.Peak
	})
	if err := ctrl.Inject(t.Index, t.Velocity); err != nil {
		res.Err = err
		return res
	}
	for res.Ticks < maxTicks {
		res.Ticks++
		if !ctrl.Tick() {
			break
		}
	}
	if !res.Settled {
		res.Peak = ctrl.cycle.peak
	}
	return res
}

// SettleSweep runs every trial against cfg using up to workers goroutines.
// Results keep the order of trials.
func SettleSweep(cfg Config, trials []Trial, maxTicks, workers int) []TrialResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]TrialResult, len(trials))

	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for i, t := range trials {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, t Trial) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = RunTrial(cfg, t, maxTicks)
		}(i, t)
	}
	wg.Wait()
	return results
}

// GridTrials returns one trial per (index, velocity) pair, stepping through
// the chain every stride springs.
func GridTrials(n, stride int, velocities []float64) []Trial {
	if stride <= 0 {
		stride = 1
	}
	var trials []Trial
	for idx := 0; idx < n; idx += stride {
		for _, v := range velocities {
			trials = append(trials, Trial{Index: idx, Velocity: v})
		}
	}
	return trials
}

// RandomTrials draws count trials with velocities in [lo, hi).
func RandomTrials(rng *core.RNG, n, count int, lo, hi float64) []Trial {
	trials := make([]Trial, count)
	for i := range trials {
		trials[i] = Trial{Index: rng.IntN(n), Velocity: rng.Between(lo, hi)}
	}
	return trials
}
