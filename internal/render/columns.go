//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"ripple/internal/core"
)

// ColumnPainter draws a surface as vertical water columns.
type ColumnPainter struct {
	originX float64
	floor   float64
	rest    float64
}

// NewColumnPainter returns a painter for a domain starting at originX whose
// columns are filled down to floor. rest is the undisturbed surface height.
func NewColumnPainter(originX, floor, rest float64) *ColumnPainter {
	return &ColumnPainter{originX: originX, floor: floor, rest: rest}
}

// Draw clears dst and paints cols at the given scale.
func (p *ColumnPainter) Draw(dst *ebiten.Image, cols []core.Column, scale float64) {
	dst.Fill(BackgroundColor)

	peak := 0.0
	for _, c := range cols {
		peak = max(peak, abs(c.Height-p.rest))
	}
	for _, c := range cols {
		r := ColumnRect(c, p.originX, p.floor, scale)
		if r.H <= 0 {
			continue
		}
		vector.DrawFilledRect(dst, r.X, r.Y, r.W, r.H, Shade(c.Height-p.rest, peak), false)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
