package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"ripple/internal/app"
	"ripple/internal/core"
	"ripple/internal/sims/waves"
	"ripple/internal/telemetry"
)

func main() {
	preset := flag.String("sim", "waves", "preset to sweep")
	configPath := flag.String("config", "", "YAML file overlaid on the built-in defaults")
	velocities := flag.String("velocities", "100,200,400", "comma-separated impulse velocities")
	stride := flag.Int("stride", 25, "spring spacing between grid trials")
	random := flag.Int("random", 0, "draw this many random trials instead of the grid")
	seed := flag.Int64("seed", 1337, "seed for random trials")
	maxTicks := flag.Int("max-ticks", 2000, "ticks before a trial is reported unsettled")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel trial evaluations")
	outputDir := flag.String("output-dir", "", "directory for sweep.csv (disabled when empty)")
	logJSON := flag.Bool("log-json", false, "emit JSON logs")
	var overrides app.KVList
	flag.Var(&overrides, "set", "parameter override in key=value form (repeatable)")
	flag.Parse()

	slog.SetDefault(app.NewLogger(os.Stderr, *logJSON, false))

	cfg, err := waves.LoadConfig(*configPath)
	if err != nil {
		fatal("failed to load config", err)
	}
	cfg, ok := waves.ApplyPreset(*preset, cfg)
	if !ok {
		slog.Error("unknown preset", "sim", *preset, "available", core.Names())
		os.Exit(1)
	}
	cfg = waves.FromMap(cfg, overrides.Map())
	if err := cfg.Validate(); err != nil {
		fatal("invalid configuration", err)
	}

	vs, err := parseVelocities(*velocities)
	if err != nil {
		fatal("invalid -velocities", err)
	}

	n := cfg.SegmentCount()
	var trials []waves.Trial
	if *random > 0 {
		lo, hi := minMax(vs)
		if hi <= lo {
			hi = lo * 2
		}
		trials = waves.RandomTrials(core.NewRNG(*seed), n, *random, lo, hi)
	} else {
		trials = waves.GridTrials(n, *stride, vs)
	}

	out, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		fatal("failed to prepare output", err)
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "err", err)
	}

	slog.Info("sweeping", "sim", *preset, "springs", n, "trials", len(trials), "workers", *workers)
	results := waves.SettleSweep(cfg, trials, *maxTicks, *workers)

	records := make([]telemetry.SweepRecord, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			slog.Warn("trial failed", "index", r.Index, "velocity", r.Velocity, "err", r.Err)
			continue
		}
		records = append(records, telemetry.SweepRecord{
			Preset:   *preset,
			Index:    r.Index,
			Velocity: r.Velocity,
			Ticks:    r.Ticks,
			Peak:     r.Peak,
			Settled:  r.Settled,
		})
	}
	if err := out.WriteSweep(records); err != nil {
		slog.Warn("failed to write sweep", "err", err)
	}

	s := telemetry.Summarize(records)
	fmt.Printf("Trials: %d (%d unsettled within %d ticks)\n", s.Trials, s.Unsettled, *maxTicks)
	fmt.Printf("Ticks to settle: mean %.1f, std %.1f, max %.0f\n", s.MeanTicks, s.StdTicks, s.MaxTicks)
	fmt.Printf("Peak amplitude: %.2f\n", s.MaxPeak)
	printParams(cfg.Params)
}

func fatal(msg string, err error) {
	slog.Error(msg, "err", err)
	os.Exit(1)
}

func parseVelocities(s string) ([]float64, error) {
	var out []float64
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no velocities in %q", s)
	}
	return out, nil
}

func minMax(vs []float64) (lo, hi float64) {
	lo, hi = vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	return lo, hi
}

func printParams(p waves.Params) {
	fmt.Println("Parameters:")
	fmt.Printf("  tension: %.4f\n", p.Tension)
	fmt.Printf("  dampening: %.4f\n", p.Dampening)
	fmt.Printf("  spread_speed: %.4f\n", p.SpreadSpeed)
	fmt.Printf("  passes: %d\n", p.Passes)
	fmt.Printf("  rest_epsilon: %.4f\n", p.RestEpsilon)
}
