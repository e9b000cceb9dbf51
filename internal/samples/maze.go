package samples

import (
	"image/color"

	"mad-wfc/pkg/core"
	"mad-wfc/pkg/wfc"
)

var (
	mazeWall  = color.RGBA{R: 0x2d, G: 0x30, B: 0x3e, A: 0xff}
	mazeFloor = color.RGBA{R: 0xd9, G: 0xd4, B: 0xc5, A: 0xff}
)

// Maze carves a binary-tree maze on an odd lattice.
func Maze(w, h int, seed int64) *wfc.Sample {
	if w%2 == 0 {
		w++
	}
	if h%2 == 0 {
		h++
	}
	rng := core.NewRNG(seed)
	s := wfc.NewSample(w, h)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			s.Set(x, y, mazeWall)
		}
	}
	for cy := 1; cy < s.H; cy += 2 {
		for cx := 1; cx < s.W; cx += 2 {
			s.Set(cx, cy, mazeFloor)
			north := cy > 1
			west := cx > 1
			switch {
			case north && west:
				if rng.Bool() {
					s.Set(cx, cy-1, mazeFloor)
				} else {
					s.Set(cx-1, cy, mazeFloor)
				}
			case north:
				s.Set(cx, cy-1, mazeFloor)
			case west:
				s.Set(cx-1, cy, mazeFloor)
			}
		}
	}
	return s
}

func init() {
	Register("maze", func(cfg map[string]string) *wfc.Sample {
		w := intOption(cfg, "w", 15, 3, 255)
		h := intOption(cfg, "h", 15, 3, 255)
		seed := int64Option(cfg, "seed", 7)
		return Maze(w, h, seed)
	})
}
