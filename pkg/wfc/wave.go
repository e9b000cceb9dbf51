package wfc

import (
	"math/rand/v2"

	"mad-wfc/pkg/core"
)

// entropyCollapsed marks a resolved cell in the entropy slice. Live entropy
// values are always positive, so any negative value is unambiguous.
const entropyCollapsed = -1

// Config holds the output grid parameters for a generation run.
type Config struct {
	Width  int
	Height int
	N      int
	Seed   int64
}

// DefaultConfig returns the default generation parameters.
func DefaultConfig() Config {
	return Config{Width: 48, Height: 48, N: 2, Seed: 1337}
}

// StepResult reports the outcome of a single collapse step.
type StepResult struct {
	// Cell is the index of the newly collapsed cell, or -1 when no cell
	// was collapsed this step.
	Cell int
	// PatternID identifies the chosen pattern, or -1 when none was chosen.
	PatternID int
	// Pattern holds the chosen pattern's pixels for rendering, nil when
	// no cell was collapsed.
	Pattern *Pattern
	// Done reports that every cell is resolved.
	Done bool
	// Contradiction reports that propagation emptied a cell's domain. The
	// wave is left as it was before the failed step.
	Contradiction bool
	// CellW and CellH are the per-cell pixel dimensions of the native
	// output canvas.
	CellW, CellH int
}

// Generator owns the collapse state for one output grid: the wave of
// per-cell candidate domains and the entropy index over uncollapsed cells.
// A Generator is not safe for concurrent use.
type Generator struct {
	lib  *Library
	w, h int
	seed int64
	rng  *rand.Rand

	words     int       // bitset words per domain
	domains   []uint64  // cell domains, one words-sized run per cell
	entropy   []float64 // per cell, entropyCollapsed once resolved
	remaining int

	contradicted bool

	stack    []int
	possible bitset
	journal  []undo
}

// undo records one cell's state prior to a mutation within a step.
type undo struct {
	cell    int
	domain  bitset
	entropy float64
}

// New builds a pattern library from the sample and prepares a generator for
// the configured output grid.
func New(sample *Sample, cfg Config) (*Generator, error) {
	lib, err := NewLibrary(sample, cfg.N)
	if err != nil {
		return nil, err
	}
	return NewFromLibrary(lib, cfg)
}

// NewFromLibrary prepares a generator over an existing library, so repeated
// runs against one sample can skip the extraction cost.
func NewFromLibrary(lib *Library, cfg Config) (*Generator, error) {
	if cfg.Width < 1 || cfg.Height < 1 {
		return nil, ErrGridSize
	}
	g := &Generator{
		lib:   lib,
		w:     cfg.Width,
		h:     cfg.Height,
		words: (lib.Len() + 63) / 64,
	}
	cells := g.w * g.h
	g.domains = make([]uint64, cells*g.words)
	g.entropy = make([]float64, cells)
	g.possible = newBitset(lib.Len())
	g.Reset(cfg.Seed)
	return g, nil
}

// Reset rebuilds the wave to full superposition using the provided seed.
// One random cell starts slightly below the uniform entropy level so the
// first collapse does not always land on index 0.
func (g *Generator) Reset(seed int64) {
	g.seed = seed
	g.rng = core.NewRNG(seed).Source()
	p := g.lib.Len()
	for c := 0; c < len(g.entropy); c++ {
		g.domain(c).fill(p)
		g.entropy[c] = float64(p)
	}
	g.entropy[g.rng.IntN(len(g.entropy))] -= 1
	g.remaining = len(g.entropy)
	g.contradicted = false
	g.stack = g.stack[:0]
	g.journal = g.journal[:0]
}

// Seed returns the seed of the current run.
func (g *Generator) Seed() int64 { return g.seed }

// Library returns the immutable pattern library backing the generator.
func (g *Generator) Library() *Library { return g.lib }

// Size returns the output grid dimensions in cells.
func (g *Generator) Size() core.Size { return core.Size{W: g.w, H: g.h} }

// CellSize returns the native pixel dimensions of one output cell.
func (g *Generator) CellSize() core.Size { return core.Size{W: g.lib.n, H: g.lib.n} }

// Done reports whether every cell has been collapsed.
func (g *Generator) Done() bool { return g.remaining == 0 }

// Contradicted reports whether the run hit a contradiction.
func (g *Generator) Contradicted() bool { return g.contradicted }

// Collapsed returns the number of resolved cells.
func (g *Generator) Collapsed() int { return g.w*g.h - g.remaining }

// PatternAt returns the resolved pattern id for a cell, or ok == false while
// the cell is still in superposition.
func (g *Generator) PatternAt(cell int) (int, bool) {
	if g.entropy[cell] >= 0 {
		return -1, false
	}
	return g.domain(cell).first(), true
}

// EntropySnapshot appends the per-cell entropy values to dst and returns it.
// Collapsed cells carry a negative value.
func (g *Generator) EntropySnapshot(dst []float64) []float64 {
	return append(dst, g.entropy...)
}

// Step performs one collapse step: pick the lowest-entropy cell, choose one
// of its candidate patterns weighted by frequency, collapse it, and
// propagate the consequences. On contradiction all mutations of the step
// are rolled back and the generator stays terminal until Reset.
func (g *Generator) Step() StepResult {
	n := g.lib.n
	if g.contradicted {
		return StepResult{Cell: -1, PatternID: -1, Contradiction: true, CellW: n, CellH: n}
	}
	if g.remaining == 0 {
		return StepResult{Cell: -1, PatternID: -1, Done: true, CellW: n, CellH: n}
	}

	cell := g.lowestEntropy()
	id := g.pickWeighted(g.domain(cell))

	g.journal = g.journal[:0]
	g.record(cell)
	dom := g.domain(cell)
	dom.clearAll()
	dom.set(id)
	g.entropy[cell] = entropyCollapsed
	g.remaining--

	if !g.propagate(cell) {
		g.rollback()
		g.contradicted = true
		return StepResult{Cell: -1, PatternID: -1, Contradiction: true, CellW: n, CellH: n}
	}
	return StepResult{
		Cell:      cell,
		PatternID: id,
		Pattern:   g.lib.Pattern(id),
		Done:      g.remaining == 0,
		CellW:     n,
		CellH:     n,
	}
}

// domain returns the bitset backing cell c's candidate set.
func (g *Generator) domain(c int) bitset {
	return bitset(g.domains[c*g.words : (c+1)*g.words])
}

// lowestEntropy returns the uncollapsed cell with the smallest entropy.
// Exact ties fall to the lowest index; propagation jitter makes them rare.
func (g *Generator) lowestEntropy() int {
	best := -1
	bestE := 0.0
	for c, e := range g.entropy {
		if e < 0 {
			continue
		}
		if best < 0 || e < bestE {
			best, bestE = c, e
		}
	}
	if best < 0 {
		panic("wfc: entropy index empty with cells remaining")
	}
	return best
}

// pickWeighted draws one id from the domain with probability proportional
// to pattern frequency, equivalent to indexing a pool where each id repeats
// frequency[id] times.
func (g *Generator) pickWeighted(dom bitset) int {
	total := 0
	dom.forEach(func(id int) { total += g.lib.freqs[id] })
	if total <= 0 {
		panic("wfc: empty domain outside propagation")
	}
	r := g.rng.IntN(total)
	chosen := -1
	dom.forEach(func(id int) {
		if chosen >= 0 {
			return
		}
		if r -= g.lib.freqs[id]; r < 0 {
			chosen = id
		}
	})
	return chosen
}

// propagate pushes the freshly collapsed cell and narrows neighbor domains
// depth-first until a fixed point. Horizontal neighbors wrap around the
// grid; vertical lookups are bounds-checked and never wrap. Returns false
// on contradiction.
func (g *Generator) propagate(start int) bool {
	g.stack = append(g.stack[:0], start)
	for len(g.stack) > 0 {
		c := g.stack[len(g.stack)-1]
		g.stack = g.stack[:len(g.stack)-1]
		cx, cy := c%g.w, c/g.w
		for d := Direction(0); d < dirCount; d++ {
			dx, dy := d.Delta()
			ny := cy + dy
			if ny < 0 || ny >= g.h {
				continue
			}
			nx := (cx + dx + g.w) % g.w
			nc := ny*g.w + nx
			if g.entropy[nc] < 0 {
				continue
			}
			g.possible.clearAll()
			g.domain(c).forEach(func(id int) { g.possible.or(g.lib.adj[d][id]) })
			avail := g.domain(nc)
			if avail.subsetOf(g.possible) {
				continue
			}
			g.record(nc)
			avail.and(g.possible)
			if avail.isEmpty() {
				return false
			}
			g.entropy[nc] = float64(avail.count()) - g.rng.Float64()*0.1
			g.stack = append(g.stack, nc)
		}
	}
	return true
}

// record journals a cell's current state so a failed step can be undone.
func (g *Generator) record(c int) {
	g.journal = append(g.journal, undo{cell: c, domain: g.domain(c).clone(), entropy: g.entropy[c]})
}

// rollback restores every journaled cell in reverse order, returning the
// wave to its state before the failed step.
func (g *Generator) rollback() {
	for i := len(g.journal) - 1; i >= 0; i-- {
		u := g.journal[i]
		g.domain(u.cell).copyFrom(u.domain)
		g.entropy[u.cell] = u.entropy
	}
	g.remaining++
	g.journal = g.journal[:0]
}
