package samples

import (
	"image/color"

	"mad-wfc/pkg/core"
	"mad-wfc/pkg/wfc"
)

const (
	brainDead  = 0
	brainOn    = 1
	brainDying = 2
)

var brainPalette = [3]color.RGBA{
	{R: 0x0b, G: 0x0e, B: 0x14, A: 0xff},
	{R: 0xee, G: 0xf4, B: 0xff, A: 0xff},
	{R: 0x4a, G: 0x6f, B: 0xd4, A: 0xff},
}

// Brain runs Brian's Brain from a sparse soup and snapshots the board.
func Brain(w, h, steps int, seed int64) *wfc.Sample {
	if w < 3 {
		w = 3
	}
	if h < 3 {
		h = 3
	}
	cur := make([]uint8, w*h)
	nxt := make([]uint8, w*h)
	rng := core.NewRNG(seed).Source()
	for i := range cur {
		if rng.IntN(8) == 0 {
			cur[i] = brainOn
		}
	}
	for s := 0; s < steps; s++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				idx := y*w + x
				switch cur[idx] {
				case brainOn:
					nxt[idx] = brainDying
				case brainDying:
					nxt[idx] = brainDead
				default:
					neighbors := 0
					for dy := -1; dy <= 1; dy++ {
						for dx := -1; dx <= 1; dx++ {
							if dx == 0 && dy == 0 {
								continue
							}
							nx := (x + dx + w) % w
							ny := (y + dy + h) % h
							if cur[ny*w+nx] == brainOn {
								neighbors++
							}
						}
					}
					nxt[idx] = brainDead
					if neighbors == 2 {
						nxt[idx] = brainOn
					}
				}
			}
		}
		cur, nxt = nxt, cur
	}
	out := wfc.NewSample(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.Set(x, y, brainPalette[cur[y*w+x]])
		}
	}
	return out
}

func init() {
	Register("brain", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 48, 3, 256)
		h := intOption(cfg, "h", 48, 3, 256)
		steps := intOption(cfg, "steps", 10, 0, 512)
		seed := int64Option(cfg, "seed", 11)
		return Brain(w, h, steps, seed)
	})
}
