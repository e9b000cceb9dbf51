package samples

import (
	"image/color"

	"mad-wfc/pkg/wfc"
)

// flowerArt is a tiny hand-drawn meadow. Legend: '.' sky, '#' earth,
// '|' stem, 'o' petal, '*' flower center.
var flowerArt = []string{
	"............",
	"............",
	".....o......",
	"....o*o.....",
	".....o..o...",
	".....|.o*o..",
	".....|..o...",
	"..o.....|...",
	".o*o....|...",
	"..o.....|...",
	"..|.....|...",
	"############",
}

var (
	flowerSky    = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	flowerEarth  = color.RGBA{R: 0x6b, G: 0x4a, B: 0x2f, A: 0xff}
	flowerStem   = color.RGBA{R: 0x2e, G: 0x8b, B: 0x3a, A: 0xff}
	flowerPetal  = color.RGBA{R: 0xd9, G: 0x3a, B: 0x3a, A: 0xff}
	flowerCenter = color.RGBA{R: 0xf2, G: 0xc1, B: 0x2e, A: 0xff}
)

// Flowers renders the meadow motif into a sample.
func Flowers() *wfc.Sample {
	s := wfc.NewSample(len(flowerArt[0]), len(flowerArt))
	for y, row := range flowerArt {
		for x := 0; x < len(row); x++ {
			var c color.RGBA
			switch row[x] {
			case '#':
				c = flowerEarth
			case '|':
				c = flowerStem
			case 'o':
				c = flowerPetal
			case '*':
				c = flowerCenter
			default:
				c = flowerSky
			}
			s.Set(x, y, c)
		}
	}
	return s
}

func init() {
	Register("flowers", func(cfg map[string]string) *wfc.Sample {
		return Flowers()
	})
}
