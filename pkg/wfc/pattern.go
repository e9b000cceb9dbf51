package wfc

import "image/color"

// Pattern is an immutable square block of RGBA texels in row-major order.
type Pattern struct {
	n   int
	pix []uint8
}

// N returns the pattern's side length in texels.
func (p *Pattern) N() int { return p.n }

// Pix exposes the backing pixel slice, 4 bytes per texel.
func (p *Pattern) Pix() []uint8 { return p.pix }

// At returns the texel color at (x, y).
func (p *Pattern) At(x, y int) color.RGBA {
	i := (y*p.n + x) * 4
	return color.RGBA{R: p.pix[i], G: p.pix[i+1], B: p.pix[i+2], A: p.pix[i+3]}
}

// rotateCW returns pix turned a quarter turn clockwise.
func rotateCW(pix []uint8, n int) []uint8 {
	out := make([]uint8, len(pix))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			src := (y*n + x) * 4
			dst := (x*n + (n - 1 - y)) * 4
			copy(out[dst:dst+4], pix[src:src+4])
		}
	}
	return out
}

// mirrorRows returns pix with its row order reversed.
func mirrorRows(pix []uint8, n int) []uint8 {
	out := make([]uint8, len(pix))
	row := n * 4
	for y := 0; y < n; y++ {
		copy(out[y*row:(y+1)*row], pix[(n-1-y)*row:(n-y)*row])
	}
	return out
}

// mirrorCols returns pix with each row's column order reversed.
func mirrorCols(pix []uint8, n int) []uint8 {
	out := make([]uint8, len(pix))
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			src := (y*n + x) * 4
			dst := (y*n + (n - 1 - x)) * 4
			copy(out[dst:dst+4], pix[src:src+4])
		}
	}
	return out
}

// symmetries returns the 12 symmetry variants of a window: for each quarter
// turn, the rotation itself plus its vertical and horizontal mirrors.
// Duplicates among the variants are expected and resolved by the caller.
func symmetries(window []uint8, n int) [][]uint8 {
	out := make([][]uint8, 0, 12)
	rot := window
	for r := 0; r < 4; r++ {
		if r > 0 {
			rot = rotateCW(rot, n)
		}
		out = append(out, rot, mirrorRows(rot, n), mirrorCols(rot, n))
	}
	return out
}
