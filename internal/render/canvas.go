package render

import (
	"image"
	"image/color"

	"mad-wfc/pkg/wfc"
)

// PixelCanvas composites collapsed patterns into the native output image.
// Each grid cell owns a cellW x cellH block of texels.
type PixelCanvas struct {
	gridW, gridH int
	cellW, cellH int
	img          *image.RGBA
}

// NewPixelCanvas allocates a canvas for a gridW x gridH grid of cells.
func NewPixelCanvas(gridW, gridH, cellW, cellH int) *PixelCanvas {
	if gridW < 1 {
		gridW = 1
	}
	if gridH < 1 {
		gridH = 1
	}
	if cellW < 1 {
		cellW = 1
	}
	if cellH < 1 {
		cellH = 1
	}
	return &PixelCanvas{
		gridW: gridW, gridH: gridH,
		cellW: cellW, cellH: cellH,
		img: image.NewRGBA(image.Rect(0, 0, gridW*cellW, gridH*cellH)),
	}
}

// NewCanvasFor sizes a canvas to match a generator's grid and cell dimensions.
func NewCanvasFor(g *wfc.Generator) *PixelCanvas {
	size := g.Size()
	cell := g.CellSize()
	return NewPixelCanvas(size.W, size.H, cell.W, cell.H)
}

// Size returns the canvas dimensions in texels.
func (c *PixelCanvas) Size() (int, int) {
	return c.gridW * c.cellW, c.gridH * c.cellH
}

// Image exposes the backing RGBA image.
func (c *PixelCanvas) Image() *image.RGBA { return c.img }

// Fill paints every texel with the provided color.
func (c *PixelCanvas) Fill(col color.RGBA) {
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = col.A
	}
}

// PaintCell blits a pattern into the cell's texel block. Cells outside the
// grid and patterns that do not match the cell size are ignored.
func (c *PixelCanvas) PaintCell(cell int, p *wfc.Pattern) {
	if p == nil || cell < 0 || cell >= c.gridW*c.gridH {
		return
	}
	n := p.N()
	if n != c.cellW || n != c.cellH {
		return
	}
	cx := cell % c.gridW
	cy := cell / c.gridW
	src := p.Pix()
	for row := 0; row < n; row++ {
		dst := c.img.PixOffset(cx*c.cellW, cy*c.cellH+row)
		copy(c.img.Pix[dst:dst+n*4], src[row*n*4:(row+1)*n*4])
	}
}

// PaintAll repaints every collapsed cell of the generator. Uncollapsed cells
// keep whatever the canvas already holds.
func (c *PixelCanvas) PaintAll(g *wfc.Generator) {
	size := g.Size()
	for cell := 0; cell < size.Area(); cell++ {
		if id, ok := g.PatternAt(cell); ok {
			c.PaintCell(cell, g.Library().Pattern(id))
		}
	}
}
