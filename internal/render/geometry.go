package render

import (
	"image/color"
	"math"

	"ripple/internal/core"
)

var (
	// WaterColor fills the body of each column.
	WaterColor = color.RGBA{R: 0, G: 106, B: 255, A: 255}
	// CrestColor tints the column with the largest displacement.
	CrestColor = color.RGBA{R: 170, G: 210, B: 255, A: 255}
	// BackgroundColor clears the frame.
	BackgroundColor = color.RGBA{R: 32, G: 32, B: 32, A: 255}
)

// Rect is an axis-aligned rectangle in screen pixels.
type Rect struct {
	X, Y, W, H float32
}

// ColumnRect returns the filled area under col, from its surface height down
// to floor, shifted by originX and scaled. Columns sinking below the floor
// get a zero-height rect; columns rising above the top are clipped to it.
func ColumnRect(col core.Column, originX, floor, scale float64) Rect {
	if scale <= 0 {
		scale = 1
	}
	top := math.Max(col.Height, 0)
	h := math.Max(floor-top, 0)
	return Rect{
		X: float32((col.X - originX) * scale),
		Y: float32(top * scale),
		W: float32(col.Width * scale),
		H: float32(h * scale),
	}
}

// Shade blends WaterColor toward CrestColor by |disp|/maxDisp.
func Shade(disp, maxDisp float64) color.RGBA {
	if maxDisp <= 0 {
		return WaterColor
	}
	t := math.Min(math.Abs(disp)/maxDisp, 1)
	mix := func(a, b uint8) uint8 {
		return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
	}
	return color.RGBA{
		R: mix(WaterColor.R, CrestColor.R),
		G: mix(WaterColor.G, CrestColor.G),
		B: mix(WaterColor.B, CrestColor.B),
		A: 255,
	}
}
