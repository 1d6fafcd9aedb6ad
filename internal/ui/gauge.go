package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// gauge eases a displayed level toward a target so the energy bar does not
// jump between frames.
type gauge struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newGauge(fps int) gauge {
	if fps <= 0 {
		fps = 60
	}
	return gauge{spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 0.8)}
}

func (g *gauge) update(target float64) float64 {
	target = clamp01(target)
	g.pos, g.vel = g.spring.Update(g.pos, g.vel, target)
	g.pos = clamp01(g.pos)
	return g.pos
}

// energyLevel maps energy onto [0, 1] on a log scale where reference maps
// to 1.
func energyLevel(energy, reference float64) float64 {
	if energy <= 0 || reference <= 1 {
		return 0
	}
	return clamp01(math.Log1p(energy) / math.Log1p(reference))
}

func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
