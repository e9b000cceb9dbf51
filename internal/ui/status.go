//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Status renders a single-line readout along the top edge of the screen.
type Status struct {
	pixel *ebiten.Image
}

// NewStatus constructs the status line renderer.
func NewStatus() *Status {
	s := &Status{pixel: ebiten.NewImage(1, 1)}
	s.pixel.Fill(color.White)
	return s
}

// Draw paints the line over a translucent backing strip.
func (s *Status) Draw(screen *ebiten.Image, line string) {
	if line == "" {
		return
	}
	face := basicfont.Face7x13
	bounds := text.BoundString(face, line)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(bounds.Dx()+2*statusPadding), float64(statusHeight))
	op.ColorM.Scale(0, 0, 0, 0.65)
	screen.DrawImage(s.pixel, op)

	text.Draw(screen, line, face, statusPadding, statusBaseline, color.RGBA{R: 220, G: 220, B: 230, A: 255})
}

const (
	statusPadding  = 4
	statusHeight   = 18
	statusBaseline = 13
)
