package samples

import (
	"image/color"

	"mad-wfc/pkg/wfc"
)

var (
	rulePaper = color.RGBA{R: 0xf5, G: 0xf0, B: 0xe6, A: 0xff}
	ruleInk   = color.RGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
)

// Rule110 runs an elementary Wolfram automaton downwards from a single
// seeded cell and paints the history.
func Rule110(w, h int, rule uint8) *wfc.Sample {
	if w < 3 {
		w = 3
	}
	if h < 1 {
		h = 1
	}
	rows := make([]uint8, w*h)
	rows[w/2] = 1
	for y := 1; y < h; y++ {
		prev := rows[(y-1)*w : y*w]
		for x := 0; x < w; x++ {
			left := prev[(x-1+w)%w]
			center := prev[x]
			right := prev[(x+1)%w]
			idx := (left << 2) | (center << 1) | right
			rows[y*w+x] = (rule >> idx) & 1
		}
	}
	out := wfc.NewSample(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := rulePaper
			if rows[y*w+x] == 1 {
				c = ruleInk
			}
			out.Set(x, y, c)
		}
	}
	return out
}

func init() {
	Register("rule110", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 32, 3, 256)
		h := intOption(cfg, "h", 32, 1, 256)
		rule := intOption(cfg, "rule", 110, 0, 255)
		return Rule110(w, h, uint8(rule))
	})
}
