package core

// Size describes the dimensions of a pixel or cell grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells covered by the size.
func (s Size) Area() int { return s.W * s.H }
