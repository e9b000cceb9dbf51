package samples

import (
	"image/color"

	"mad-wfc/pkg/core"
	"mad-wfc/pkg/wfc"
)

var (
	lifeDead  = color.RGBA{R: 0x10, G: 0x18, B: 0x24, A: 0xff}
	lifeAlive = color.RGBA{R: 0x7f, G: 0xd4, B: 0x8a, A: 0xff}
)

// Life evolves a random soup for a few generations and snapshots the board.
func Life(w, h, steps int, seed int64) *wfc.Sample {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	cur := make([]uint8, w*h)
	nxt := make([]uint8, w*h)
	core.FillBinary(core.NewRNG(seed).Source(), cur)
	for s := 0; s < steps; s++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				neighbors := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx := (x + dx + w) % w
						ny := (y + dy + h) % h
						neighbors += int(cur[ny*w+nx])
					}
				}
				idx := y*w + x
				alive := cur[idx] == 1
				nxt[idx] = 0
				if (alive && (neighbors == 2 || neighbors == 3)) || (!alive && neighbors == 3) {
					nxt[idx] = 1
				}
			}
		}
		cur, nxt = nxt, cur
	}
	out := wfc.NewSample(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := lifeDead
			if cur[y*w+x] == 1 {
				c = lifeAlive
			}
			out.Set(x, y, c)
		}
	}
	return out
}

func init() {
	Register("life", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 48, 3, 256)
		h := intOption(cfg, "h", 48, 3, 256)
		steps := intOption(cfg, "steps", 12, 0, 512)
		seed := int64Option(cfg, "seed", 42)
		return Life(w, h, steps, seed)
	})
}
