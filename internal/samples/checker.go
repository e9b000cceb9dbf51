package samples

import (
	"image/color"

	"mad-wfc/pkg/wfc"
)

var (
	checkerDark  = color.RGBA{R: 0x28, G: 0x2c, B: 0x38, A: 0xff}
	checkerLight = color.RGBA{R: 0xe8, G: 0xe2, B: 0xd4, A: 0xff}
)

// Checker builds a two-color checkerboard sample.
func Checker(w, h int) *wfc.Sample {
	s := wfc.NewSample(w, h)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			if (x+y)%2 == 0 {
				s.Set(x, y, checkerDark)
			} else {
				s.Set(x, y, checkerLight)
			}
		}
	}
	return s
}

func init() {
	Register("checker", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 8, 2, 256)
		h := intOption(cfg, "h", 8, 2, 256)
		return Checker(w, h)
	})
}
