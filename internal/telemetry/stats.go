package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// SweepSummary aggregates a batch of sweep trials.
type SweepSummary struct {
	Trials    int
	Unsettled int
	MeanTicks float64
	StdTicks  float64
	MaxTicks  float64
	MaxPeak   float64
}

// Summarize computes tick statistics over the trials that settled.
func Summarize(recs []SweepRecord) SweepSummary {
	s := SweepSummary{Trials: len(recs)}
	ticks := make([]float64, 0, len(recs))
	peaks := make([]float64, 0, len(recs))
	for _, r := range recs {
		peaks = append(peaks, r.Peak)
		if !r.Settled {
			s.Unsettled++
			continue
		}
		ticks = append(ticks, float64(r.Ticks))
	}
	if len(peaks) > 0 {
		s.MaxPeak = floats.Max(peaks)
	}
	if len(ticks) == 0 {
		return s
	}
	s.MaxTicks = floats.Max(ticks)
	if len(ticks) == 1 {
		s.MeanTicks = ticks[0]
		return s
	}
	s.MeanTicks, s.StdTicks = stat.MeanStdDev(ticks, nil)
	return s
}
