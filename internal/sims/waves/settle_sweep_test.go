package waves

import (
	"errors"
	"testing"

	"ripple/internal/core"
)

func TestRunTrialSettles(t *testing.T) {
	cfg := DefaultConfig()
	cfg.EndX = 900
	cfg.Granularity = 3

	res := RunTrial(cfg, Trial{Index: 150, Velocity: 300}, 2000)
	if res.Err != nil {
		t.Fatalf("RunTrial: %v", res.Err)
	}
	if !res.Settled {
		t.Fatalf("impulse did not settle within 2000 ticks: %+v", res)
	}
	if res.Ticks <= 0 || res.Ticks >= 2000 || res.Peak <= 0 {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestRunTrialReportsErrors(t *testing.T) {
	res := RunTrial(DefaultConfig(), Trial{Index: 300, Velocity: 10}, 10)
	if !errors.Is(res.Err, ErrIndexOutOfRange) {
		t.Fatalf("expected ErrIndexOutOfRange, got %v", res.Err)
	}

	bad := DefaultConfig()
	bad.Granularity = 0
	res = RunTrial(bad, Trial{}, 10)
	if !errors.Is(res.Err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", res.Err)
	}
}

func TestRunTrialStopsAtLimit(t *testing.T) {
	res := RunTrial(DefaultConfig(), Trial{Index: 150, Velocity: 200}, 5)
	if res.Settled || res.Ticks != 5 {
		t.Fatalf("expected an unsettled trial capped at 5 ticks, got %+v", res)
	}
	if res.Peak <= 0 {
		t.Fatalf("unsettled trial should still report its peak, got %f", res.Peak)
	}
}

func TestSettleSweepKeepsOrder(t *testing.T) {
	cfg := DefaultConfig()
	trials := GridTrials(300, 100, []float64{50, 150})
	if len(trials) != 6 {
		t.Fatalf("expected 6 grid trials, got %d", len(trials))
	}

	results := SettleSweep(cfg, trials, 3000, 3)
	for i, r := range results {
		if r.Trial != trials[i] {
			t.Fatalf("result %d is for %+v, expected %+v", i, r.Trial, trials[i])
		}
		if !r.Settled {
			t.Fatalf("trial %+v did not settle", r.Trial)
		}
	}
	serial := RunTrial(cfg, trials[4], 3000)
	if serial.Ticks != results[4].Ticks || serial.Peak != results[4].Peak {
		t.Fatalf("parallel and serial runs disagree: %+v vs %+v", results[4], serial)
	}
}

func TestRandomTrialsInRange(t *testing.T) {
	trials := RandomTrials(core.NewRNG(3), 300, 50, 100, 300)
	for _, tr := range trials {
		if tr.Index < 0 || tr.Index >= 300 || tr.Velocity < 100 || tr.Velocity >= 300 {
			t.Fatalf("trial out of range: %+v", tr)
		}
	}
}
