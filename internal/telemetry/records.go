package telemetry

import (
	"time"

	"ripple/internal/core"
)

// SettleRecord is one completed wave cycle as written to settles.csv.
type SettleRecord struct {
	Started    string  `csv:"started"`
	Ticks      int     `csv:"ticks"`
	Impulses   int     `csv:"impulses"`
	Peak       float64 `csv:"peak"`
	DurationMS int64   `csv:"duration_ms"`
}

// NewSettleRecord converts a settlement into its CSV form.
func NewSettleRecord(s core.Settlement) SettleRecord {
	return SettleRecord{
		Started:    s.Started.UTC().Format(time.RFC3339Nano),
		Ticks:      s.Ticks,
		Impulses:   s.Impulses,
		Peak:       s.Peak,
		DurationMS: s.Duration.Milliseconds(),
	}
}

// SweepRecord is one headless impulse trial.
type SweepRecord struct {
	Preset   string  `csv:"preset"`
	Index    int     `csv:"index"`
	Velocity float64 `csv:"velocity"`
	Ticks    int     `csv:"ticks"`
	Peak     float64 `csv:"peak"`
	Settled  bool    `csv:"settled"`
}
