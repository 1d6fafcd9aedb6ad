//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"ripple/internal/app"
	"ripple/internal/core"
	_ "ripple/internal/sims/waves"
	"ripple/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := app.NewLogger(os.Stderr, cfg.LogJSON, cfg.Debug)
	slog.SetDefault(logger)

	factory, ok := core.Surfaces()[cfg.Sim]
	if !ok {
		slog.Error("unknown surface", "sim", cfg.Sim, "available", core.Names())
		os.Exit(1)
	}

	surface, err := factory(cfg.SurfaceOptions())
	if err != nil {
		slog.Error("failed to build surface", "sim", cfg.Sim, "err", err)
		os.Exit(1)
	}
	defer surface.Close()

	out, err := telemetry.NewOutputManager(cfg.OutputDir)
	if err != nil {
		slog.Error("failed to prepare output", "err", err)
		os.Exit(1)
	}
	defer out.Close()
	if w, ok := surface.(telemetry.ConfigWriter); ok {
		if err := out.WriteConfig(w); err != nil {
			slog.Warn("failed to write config snapshot", "err", err)
		}
	}
	if n, ok := surface.(core.SettleNotifier); ok {
		n.OnSettle(func(s core.Settlement) {
			if err := out.WriteSettlement(telemetry.NewSettleRecord(s)); err != nil {
				slog.Warn("failed to record settlement", "err", err)
			}
		})
	}

	game := app.New(surface, cfg.Scale, cfg.Seed, logger)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("ripple: " + surface.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	slog.Info("starting", "sim", surface.Name(), "scale", cfg.Scale, "sync", cfg.Sync)
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game loop failed", "err", err)
		os.Exit(1)
	}
}
