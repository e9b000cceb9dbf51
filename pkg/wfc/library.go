// Package wfc implements the overlapping-model Wave Function Collapse
// algorithm: a pattern library extracted from a sample image with symmetry
// expansion, adjacency rules derived from pattern overlap, and a step-wise
// wave collapse engine with constraint propagation.
package wfc

import "bytes"

// Library holds the deduplicated patterns of a sample, their frequencies and
// the adjacency rules between them. Built once, read-only afterwards.
type Library struct {
	n        int
	patterns []Pattern
	freqs    []int

	// adj[d][id] is the set of pattern ids that may occupy the cell in
	// direction d relative to a cell holding id.
	adj [dirCount][]bitset
}

// NewLibrary extracts every N-sized window from the sample (wrapping
// toroidally in both axes), expands each window into its 12 symmetry
// variants, deduplicates by content, and derives the adjacency table.
func NewLibrary(s *Sample, n int) (*Library, error) {
	if !s.valid() {
		return nil, ErrSampleData
	}
	if n < 1 || n > s.W || n > s.H {
		return nil, ErrPatternSize
	}
	l := &Library{n: n}
	index := make(map[string]int)
	seen := make(map[string]bool, 12)
	for y := 0; y < s.H; y++ {
		for x := 0; x < s.W; x++ {
			clear(seen)
			for _, v := range symmetries(extract(s, x, y, n), n) {
				key := string(v)
				if seen[key] {
					continue
				}
				seen[key] = true
				id, ok := index[key]
				if !ok {
					id = len(l.patterns)
					index[key] = id
					l.patterns = append(l.patterns, Pattern{n: n, pix: v})
					l.freqs = append(l.freqs, 0)
				}
				l.freqs[id]++
			}
		}
	}
	l.buildAdjacency()
	return l, nil
}

// Len returns the number of unique patterns.
func (l *Library) Len() int { return len(l.patterns) }

// N returns the pattern side length.
func (l *Library) N() int { return l.n }

// Pattern returns the pattern with the given id.
func (l *Library) Pattern(id int) *Pattern { return &l.patterns[id] }

// Frequency returns how many sample windows produced the pattern.
func (l *Library) Frequency(id int) int { return l.freqs[id] }

// Compatible reports whether pattern j may occupy the cell in direction d
// relative to a cell holding pattern i.
func (l *Library) Compatible(i, j int, d Direction) bool {
	return l.adj[d][i].has(j)
}

// extract copies the n-sized window starting at (x0, y0) out of the sample,
// wrapping coordinates modulo the sample dimensions.
func extract(s *Sample, x0, y0, n int) []uint8 {
	out := make([]uint8, n*n*4)
	for dy := 0; dy < n; dy++ {
		sy := (y0 + dy) % s.H
		for dx := 0; dx < n; dx++ {
			sx := (x0 + dx) % s.W
			src := (sy*s.W + sx) * 4
			dst := (dy*n + dx) * 4
			copy(out[dst:dst+4], s.Pix[src:src+4])
		}
	}
	return out
}

// buildAdjacency tests every ordered pattern pair for one-cell overlap in
// both axes. The horizontal test compares i without its rightmost column
// against j without its leftmost column; a match means j fits directly to
// the left of i. The vertical test is the same with rows, j fitting above i.
func (l *Library) buildAdjacency() {
	p := len(l.patterns)
	for d := 0; d < dirCount; d++ {
		l.adj[d] = make([]bitset, p)
		for id := 0; id < p; id++ {
			l.adj[d][id] = newBitset(p)
		}
	}
	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if l.overlapH(i, j) {
				l.adj[Left][i].set(j)
				l.adj[Right][j].set(i)
			}
			if l.overlapV(i, j) {
				l.adj[Up][i].set(j)
				l.adj[Down][j].set(i)
			}
		}
	}
}

// overlapH reports whether a's cells minus the rightmost column equal b's
// cells minus the leftmost column.
func (l *Library) overlapH(a, b int) bool {
	ap, bp := l.patterns[a].pix, l.patterns[b].pix
	n := l.n
	for y := 0; y < n; y++ {
		row := y * n * 4
		if !bytes.Equal(ap[row:row+(n-1)*4], bp[row+4:row+n*4]) {
			return false
		}
	}
	return true
}

// overlapV reports whether a's cells minus the bottom row equal b's cells
// minus the top row.
func (l *Library) overlapV(a, b int) bool {
	ap, bp := l.patterns[a].pix, l.patterns[b].pix
	row := l.n * 4
	return bytes.Equal(ap[:len(ap)-row], bp[row:])
}
