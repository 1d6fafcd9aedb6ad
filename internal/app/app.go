//go:build ebiten

package app

import (
	"log/slog"

	"ripple/internal/core"
	"ripple/internal/render"
	"ripple/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a core surface to the ebiten.Game interface.
type Game struct {
	surface core.Surface
	ticker  core.Ticker
	step    *core.FixedStep
	painter *render.ColumnPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	log     *slog.Logger

	columns []core.Column
	originX float64

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the surface. When the surface implements
// core.Ticker it is driven from Update; otherwise it is expected to advance
// itself.
func New(surface core.Surface, scale int, seed int64, logger *slog.Logger) *Game {
	if scale <= 0 {
		scale = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	size := surface.Size()
	g := &Game{
		surface: surface,
		hud:     ui.NewHUD(surface, hudWidth),
		overlay: ui.NewOverlay(float32(size.W*scale), float32(size.H*scale)/2),
		log:     logger,
		scale:   scale,
		seed:    seed,
	}
	g.columns = surface.Columns(g.columns)
	if len(g.columns) > 0 {
		g.originX = g.columns[0].X
	}
	g.painter = render.NewColumnPainter(g.originX, float64(size.H), float64(size.H)/2)

	if t, ok := surface.(core.Ticker); ok && !isBackground(surface) {
		g.ticker = t
		interval := core.DefaultTickInterval
		if p, ok := surface.(core.Paced); ok {
			interval = p.TickInterval()
		}
		g.step = core.NewFixedStep(interval)
	}
	return g
}

// isBackground reports whether the surface runs its own update goroutine.
func isBackground(s core.Surface) bool {
	b, ok := s.(interface{ Background() bool })
	return ok && b.Background()
}

// Reset forces the surface back to rest with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.surface.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances cooperative surfaces.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		if d, ok := g.surface.(core.Dropper); ok {
			if err := d.Drop(); err != nil {
				g.log.Warn("drop failed", "err", err)
			}
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.pointerDown()
	}

	g.overlay.Update()
	g.advance()
	g.hud.Update()
	return nil
}

func (g *Game) pointerDown() {
	cx, cy := ebiten.CursorPosition()
	size := g.surface.Size()
	if cx < 0 || cy < 0 || cx >= size.W*g.scale || cy >= size.H*g.scale {
		return
	}
	x := float64(cx)/float64(g.scale) + g.originX
	y := float64(cy) / float64(g.scale)
	if err := g.surface.PointerDown(x, y); err != nil {
		g.log.Warn("impulse rejected", "x", x, "err", err)
	}
}

func (g *Game) advance() {
	if g.ticker == nil {
		return
	}
	due := g.step.Due()
	switch {
	case g.tickOnce:
		g.ticker.Tick()
		g.tickOnce = false
	case g.paused:
	default:
		for i := 0; i < due; i++ {
			if !g.ticker.Tick() {
				break
			}
		}
	}
}

// Draw renders the surface, overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.columns = g.surface.Columns(g.columns)
	g.painter.Draw(screen, g.columns, float64(g.scale))
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.surface.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.surface.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}
