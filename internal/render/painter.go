//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads a PixelCanvas into a GPU image and draws it scaled.
type Painter struct {
	canvas *PixelCanvas
	img    *ebiten.Image
}

// NewPainter allocates a painter over the provided canvas.
func NewPainter(canvas *PixelCanvas) *Painter {
	w, h := canvas.Size()
	return &Painter{canvas: canvas, img: ebiten.NewImage(w, h)}
}

// Canvas returns the canvas the painter draws from.
func (p *Painter) Canvas() *PixelCanvas { return p.canvas }

// Blit uploads the canvas texels and draws them at an integer scale.
func (p *Painter) Blit(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	p.img.ReplacePixels(p.canvas.Image().Pix)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(p.img, op)
}

// Size returns the canvas dimensions in texels.
func (p *Painter) Size() (int, int) { return p.canvas.Size() }
