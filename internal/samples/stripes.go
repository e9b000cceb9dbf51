package samples

import (
	"image/color"

	"mad-wfc/pkg/wfc"
)

var (
	stripeTeal = color.RGBA{R: 0x1f, G: 0x8a, B: 0x8c, A: 0xff}
	stripeSand = color.RGBA{R: 0xef, G: 0xdd, B: 0xb2, A: 0xff}
)

// Stripes builds vertical bands of alternating color.
func Stripes(w, h, band int) *wfc.Sample {
	if band < 1 {
		band = 1
	}
	s := wfc.NewSample(w, h)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if (x/band)%2 == 0 {
				s.Set(x, y, stripeTeal)
			} else {
				s.Set(x, y, stripeSand)
			}
		}
	}
	return s
}

func init() {
	Register("stripes", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 12, 2, 256)
		h := intOption(cfg, "h", 12, 2, 256)
		band := intOption(cfg, "band", 2, 1, 64)
		return Stripes(w, h, band)
	})
}
