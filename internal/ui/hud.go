//go:build ebiten

package ui

import (
	"image/color"

	"ripple/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the status panel to the right of the surface view.
type HUD struct {
	surface    core.Surface
	width      int
	title      string
	panel      *ebiten.Image
	lastHeight int

	status    core.Status
	hasStatus bool
	params    []string
	energy    gauge
	level     float64
	reference float64
}

// NewHUD constructs a HUD for the surface and panel width.
func NewHUD(surface core.Surface, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		surface: surface,
		width:   width,
		title:   buildTitle(surface.Name()),
		energy:  newGauge(ebiten.TPS()),
	}
	if p, ok := surface.(core.ParameterProvider); ok {
		h.params = parameterLines(p.Parameters())
	}
	size := surface.Size()
	// Energy of a half-height swing across the whole chain.
	h.reference = float64(size.W) * float64(size.H*size.H) / 4
	return h
}

// Width reports the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the status and eases the energy gauge.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	sp, ok := h.surface.(core.StatusProvider)
	if !ok {
		return
	}
	h.status = sp.Status()
	h.hasStatus = true
	h.level = h.energy.update(energyLevel(h.status.Energy, h.reference))
}

// Draw paints the panel anchored at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.surface.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	text.Draw(h.panel, h.title, face, panelPadding, y, titleColor)
	y += lineHeight

	if h.hasStatus {
		for _, line := range statusLines(h.status) {
			y += lineHeight
			text.Draw(h.panel, line, face, panelPadding, y, textColor)
		}
		y += lineHeight / 2
		barW := float32(h.width - 2*panelPadding)
		vector.DrawFilledRect(h.panel, panelPadding, float32(y), barW, gaugeHeight, gaugeTrack, false)
		vector.DrawFilledRect(h.panel, panelPadding, float32(y), barW*float32(h.level), gaugeHeight, gaugeFill, false)
		y += gaugeHeight + lineHeight/2
	}

	for _, line := range h.params {
		y += lineHeight
		if y > height-panelPadding {
			break
		}
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

const (
	panelPadding = 12
	lineHeight   = 16
	gaugeHeight  = 8
)

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	textColor  = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	gaugeTrack = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	gaugeFill  = color.RGBA{R: 90, G: 170, B: 255, A: 255}
)
