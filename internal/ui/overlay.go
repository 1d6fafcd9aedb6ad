//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Overlay draws optional guides on top of the surface.
type Overlay struct {
	restY    float32
	width    float32
	showRest bool
	showHelp bool
}

// NewOverlay constructs an overlay for a view of the given width whose rest
// line sits at restY screen pixels.
func NewOverlay(width, restY float32) *Overlay {
	return &Overlay{width: width, restY: restY, showHelp: true}
}

// Update handles overlay toggles.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.Key1) {
		o.showRest = !o.showRest
	}
	if inpututil.IsKeyJustPressed(ebiten.Key2) {
		o.showHelp = !o.showHelp
	}
}

// Draw renders the enabled guides.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil {
		return
	}
	if o.showRest {
		vector.StrokeLine(screen, 0, o.restY, o.width, o.restY, 1, restLineColor, false)
	}
	if o.showHelp {
		for i, line := range helpLines {
			ebitenutil.DebugPrintAt(screen, line, 8, 8+i*lineHeight)
		}
	}
}

var restLineColor = color.RGBA{R: 255, G: 200, B: 80, A: 200}
