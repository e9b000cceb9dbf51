//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"time"

	"mad-wfc/internal/render"
	"mad-wfc/internal/ui"
	"mad-wfc/pkg/wfc"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var backdrop = color.RGBA{R: 12, G: 12, B: 16, A: 255}

// Game adapts a running wave generator to the ebiten.Game interface.
type Game struct {
	gen     *wfc.Generator
	canvas  *render.PixelCanvas
	painter *render.Painter
	overlay *ui.Overlay
	status  *ui.Status

	label        string
	scale        int
	stepsPerTick int
	retry        bool

	paused   bool
	tickOnce bool
	attempt  int
	steps    int
}

// New constructs a Game around the provided generator. The label names the
// source sample in the status line.
func New(gen *wfc.Generator, label string, cfg *Config) *Game {
	canvas := render.NewCanvasFor(gen)
	canvas.Fill(backdrop)
	return &Game{
		gen:          gen,
		canvas:       canvas,
		painter:      render.NewPainter(canvas),
		overlay:      ui.NewOverlay(gen, cfg.Scale),
		status:       ui.NewStatus(),
		label:        label,
		scale:        cfg.Scale,
		stepsPerTick: cfg.StepsPerTick,
		retry:        cfg.Retry,
		attempt:      1,
	}
}

// Update handles per-frame input and advances the collapse.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.restart(g.gen.Seed())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.restart(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.overlay.Toggle()
	}

	g.overlay.Update()

	if g.paused && !g.tickOnce {
		return nil
	}
	steps := g.stepsPerTick
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	g.advance(steps)
	return nil
}

// Draw renders the texture, the overlay and the status line.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.scale)
	g.overlay.Draw(screen)
	g.status.Draw(screen, g.statusLine())
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.canvas.Size()
	return w * g.scale, h * g.scale
}

func (g *Game) advance(steps int) {
	for i := 0; i < steps; i++ {
		if g.gen.Done() {
			return
		}
		res := g.gen.Step()
		if res.Contradiction {
			if g.retry {
				g.attempt++
				g.resetWave(time.Now().UnixNano())
				continue
			}
			g.paused = true
			return
		}
		g.steps++
		g.canvas.PaintCell(res.Cell, res.Pattern)
		if res.Done {
			return
		}
	}
}

func (g *Game) restart(seed int64) {
	g.attempt = 1
	g.resetWave(seed)
}

func (g *Game) resetWave(seed int64) {
	g.gen.Reset(seed)
	g.steps = 0
	g.canvas.Fill(backdrop)
	g.tickOnce = false
}

func (g *Game) statusLine() string {
	state := "running"
	switch {
	case g.gen.Contradicted():
		state = "contradiction"
	case g.gen.Done():
		state = "done"
	case g.paused:
		state = "paused"
	}
	return fmt.Sprintf("%s n=%d seed=%d attempt=%d cells=%d/%d %s (space pause, n step, r/s restart, e entropy, q quit)",
		g.label, g.gen.Library().N(), g.gen.Seed(), g.attempt, g.gen.Collapsed(), g.gen.Size().Area(), state)
}
