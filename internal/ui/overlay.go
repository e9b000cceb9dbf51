//go:build ebiten

package ui

import (
	"image/color"
	"math"

	"mad-wfc/pkg/wfc"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay paints an entropy heatmap over the generated texture plus a red
// pulse once the wave has contradicted.
type Overlay struct {
	gen     *wfc.Generator
	scale   int
	visible bool

	heatImg *ebiten.Image
	heatBuf []byte
	entropy []float64
	tick    int
}

// NewOverlay constructs an overlay for the provided generator.
func NewOverlay(gen *wfc.Generator, scale int) *Overlay {
	return &Overlay{gen: gen, scale: scale}
}

// Toggle flips the heatmap visibility.
func (o *Overlay) Toggle() { o.visible = !o.visible }

// Visible reports whether the heatmap is currently shown.
func (o *Overlay) Visible() bool { return o.visible }

// Update advances the contradiction pulse clock.
func (o *Overlay) Update() {
	if o.gen.Contradicted() {
		o.tick++
		return
	}
	o.tick = 0
}

// Draw renders the heatmap onto the screen. The pulse draws even while the
// heatmap itself is toggled off.
func (o *Overlay) Draw(screen *ebiten.Image) {
	contradicted := o.gen.Contradicted()
	if !o.visible && !contradicted {
		return
	}
	size := o.gen.Size()
	total := size.Area()
	if total == 0 {
		return
	}
	if o.heatImg == nil || o.heatImg.Bounds().Dx() != size.W || o.heatImg.Bounds().Dy() != size.H {
		o.heatImg = ebiten.NewImage(size.W, size.H)
		o.heatBuf = make([]byte, 4*total)
	}

	if contradicted {
		o.fillPulse(total)
	} else {
		o.entropy = o.gen.EntropySnapshot(o.entropy[:0])
		o.fillHeat()
	}

	o.heatImg.ReplacePixels(o.heatBuf)
	cell := o.gen.CellSize()
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cell.W*scale), float64(cell.H*scale))
	screen.DrawImage(o.heatImg, op)
}

func (o *Overlay) fillHeat() {
	const (
		maxAlpha = 150.0
		bias     = 1.4
	)
	hot := color.RGBA{R: 235, G: 90, B: 40}
	cold := color.RGBA{R: 45, G: 70, B: 140}
	patterns := float64(o.gen.Library().Len())
	if patterns <= 0 {
		patterns = 1
	}
	for i, e := range o.entropy {
		base := i * 4
		if e < 0 {
			o.heatBuf[base+0] = 0
			o.heatBuf[base+1] = 0
			o.heatBuf[base+2] = 0
			o.heatBuf[base+3] = 0
			continue
		}
		t := clamp01(e / patterns)
		col := lerpRGBA(hot, cold, t)
		o.heatBuf[base+0] = col.R
		o.heatBuf[base+1] = col.G
		o.heatBuf[base+2] = col.B
		o.heatBuf[base+3] = uint8(math.Round(maxAlpha * math.Pow(1-t, bias)))
	}
}

func (o *Overlay) fillPulse(total int) {
	alpha := uint8(math.Round(80 + 50*math.Sin(float64(o.tick)*0.15)))
	for i := 0; i < total; i++ {
		base := i * 4
		o.heatBuf[base+0] = 200
		o.heatBuf[base+1] = 30
		o.heatBuf[base+2] = 30
		o.heatBuf[base+3] = alpha
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	t = clamp01(t)
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
