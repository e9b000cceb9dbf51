package wfc

import (
	"image"
	"image/color"
	"image/draw"
)

// Sample holds the raw RGBA pixels of a source image in row-major order.
type Sample struct {
	W, H int
	Pix  []uint8
}

// NewSample allocates an opaque black sample with the given dimensions.
func NewSample(w, h int) *Sample {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	s := &Sample{W: w, H: h, Pix: make([]uint8, w*h*4)}
	for i := 3; i < len(s.Pix); i += 4 {
		s.Pix[i] = 0xff
	}
	return s
}

// SampleFromImage copies an image into a Sample, converting to RGBA.
func SampleFromImage(img image.Image) *Sample {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return &Sample{W: b.Dx(), H: b.Dy(), Pix: rgba.Pix}
}

// Set writes the pixel color at (x, y).
func (s *Sample) Set(x, y int, c color.RGBA) {
	i := (y*s.W + x) * 4
	s.Pix[i] = c.R
	s.Pix[i+1] = c.G
	s.Pix[i+2] = c.B
	s.Pix[i+3] = c.A
}

// At returns the pixel color at (x, y).
func (s *Sample) At(x, y int) color.RGBA {
	i := (y*s.W + x) * 4
	return color.RGBA{R: s.Pix[i], G: s.Pix[i+1], B: s.Pix[i+2], A: s.Pix[i+3]}
}

// valid reports whether the buffer length matches the declared dimensions.
func (s *Sample) valid() bool {
	return s != nil && s.W > 0 && s.H > 0 && len(s.Pix) == s.W*s.H*4
}
