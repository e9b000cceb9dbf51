package wfc

import (
	"errors"
	"slices"
	"testing"

	"mad-wfc/pkg/core"
)

// runToEnd steps the generator until Done or Contradiction.
func runToEnd(t *testing.T, g *Generator) StepResult {
	t.Helper()
	limit := g.Size().Area() + 1
	var res StepResult
	for i := 0; i < limit; i++ {
		res = g.Step()
		if res.Done || res.Contradiction {
			return res
		}
	}
	t.Fatalf("generation did not settle within %d steps", limit)
	return res
}

// alternatingLibrary builds two single-texel patterns that must alternate
// horizontally and never stack vertically.
func alternatingLibrary() *Library {
	lib := &Library{
		n: 1,
		patterns: []Pattern{
			{n: 1, pix: []uint8{0xff, 0, 0, 0xff}},
			{n: 1, pix: []uint8{0, 0, 0xff, 0xff}},
		},
		freqs: []int{1, 1},
	}
	for d := 0; d < dirCount; d++ {
		lib.adj[d] = []bitset{newBitset(2), newBitset(2)}
	}
	lib.adj[Left][0].set(1)
	lib.adj[Left][1].set(0)
	lib.adj[Right][0].set(1)
	lib.adj[Right][1].set(0)
	return lib
}

// stackingLibrary is the vertical counterpart: strict alternation up/down,
// anything goes sideways.
func stackingLibrary() *Library {
	lib := alternatingLibrary()
	for d := 0; d < dirCount; d++ {
		for id := 0; id < 2; id++ {
			lib.adj[d][id].clearAll()
		}
	}
	lib.adj[Up][0].set(1)
	lib.adj[Up][1].set(0)
	lib.adj[Down][0].set(1)
	lib.adj[Down][1].set(0)
	lib.adj[Left][0].fill(2)
	lib.adj[Left][1].fill(2)
	lib.adj[Right][0].fill(2)
	lib.adj[Right][1].fill(2)
	return lib
}

func TestUniformRunAlwaysCompletes(t *testing.T) {
	g, err := New(uniformSample(4, 4, cRed), Config{Width: 5, Height: 4, N: 1, Seed: 11})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	steps := 0
	for {
		res := g.Step()
		if res.Contradiction {
			t.Fatal("uniform sample must never contradict")
		}
		if res.Cell >= 0 {
			steps++
		}
		if res.CellW != 1 || res.CellH != 1 {
			t.Fatalf("expected 1x1 cell pixels, got %dx%d", res.CellW, res.CellH)
		}
		if res.Done {
			break
		}
	}

	if steps != 20 {
		t.Fatalf("expected one collapse per cell, got %d collapses for 20 cells", steps)
	}
	for c := 0; c < 20; c++ {
		id, ok := g.PatternAt(c)
		if !ok || id != 0 {
			t.Fatalf("cell %d should resolve to the single pattern, got id=%d ok=%v", c, id, ok)
		}
	}
}

func TestDoneIsSticky(t *testing.T) {
	g, err := New(uniformSample(3, 3, cGreen), Config{Width: 2, Height: 2, N: 1, Seed: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runToEnd(t, g)

	res := g.Step()
	if !res.Done || res.Contradiction {
		t.Fatalf("expected a plain Done result after completion, got %+v", res)
	}
	if res.Cell != -1 || res.PatternID != -1 || res.Pattern != nil {
		t.Fatalf("a Done result must not report a collapse, got %+v", res)
	}
}

func TestHorizontalRingWrapsAndVerticalDoesNot(t *testing.T) {
	// Strict horizontal alternation cannot close an odd ring, so a wrapped
	// 3x1 grid must contradict...
	g, err := NewFromLibrary(alternatingLibrary(), Config{Width: 3, Height: 1, Seed: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := runToEnd(t, g); !res.Contradiction {
		t.Fatal("odd horizontal ring should contradict under strict alternation")
	}

	// ...while an even ring closes fine.
	g, err = NewFromLibrary(alternatingLibrary(), Config{Width: 4, Height: 1, Seed: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := runToEnd(t, g); !res.Done {
		t.Fatal("even horizontal ring should resolve under strict alternation")
	}
	for c := 0; c < 4; c++ {
		id, ok := g.PatternAt(c)
		next, _ := g.PatternAt((c + 1) % 4)
		if !ok || id == next {
			t.Fatalf("ring cells %d and %d must alternate, got %d and %d", c, (c+1)%4, id, next)
		}
	}

	// A vertical column of odd height resolves, because y is bounds-checked
	// instead of wrapped: there is no closing edge to violate.
	g, err = NewFromLibrary(stackingLibrary(), Config{Width: 1, Height: 3, Seed: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := runToEnd(t, g); !res.Done {
		t.Fatal("odd vertical column should resolve, vertical lookups must not wrap")
	}
	top, _ := g.PatternAt(0)
	mid, _ := g.PatternAt(1)
	bot, _ := g.PatternAt(2)
	if top == mid || mid == bot || top != bot {
		t.Fatalf("column should alternate A-B-A, got %d-%d-%d", top, mid, bot)
	}
}

func TestContradictionRollsBackAndLatches(t *testing.T) {
	g, err := NewFromLibrary(alternatingLibrary(), Config{Width: 3, Height: 1, Seed: 7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	domains := append([]uint64(nil), g.domains...)
	entropy := append([]float64(nil), g.entropy...)
	remaining := g.remaining

	// The two neighbors of the first collapse both narrow to the other
	// color and then clash with each other, so the very first step fails.
	res := g.Step()
	if !res.Contradiction {
		t.Fatalf("first collapse on the odd ring should contradict, got %+v", res)
	}
	if res.Cell != -1 || res.Pattern != nil {
		t.Fatalf("a contradiction must not report a collapsed cell, got %+v", res)
	}
	if !slices.Equal(domains, g.domains) {
		t.Fatal("contradiction must roll the wave back to its pre-step state")
	}
	if !slices.Equal(entropy, g.entropy) {
		t.Fatal("contradiction must roll the entropy index back to its pre-step state")
	}
	if g.remaining != remaining {
		t.Fatalf("remaining count must be restored, want %d got %d", remaining, g.remaining)
	}
	if !g.Contradicted() {
		t.Fatal("generator should latch the contradiction")
	}

	res = g.Step()
	if !res.Contradiction || !slices.Equal(domains, g.domains) {
		t.Fatal("stepping a contradicted generator must keep reporting without mutating")
	}

	g.Reset(7)
	if g.Contradicted() {
		t.Fatal("Reset must clear the contradiction latch")
	}
}

func TestEntropyIndexStaysConsistent(t *testing.T) {
	g, err := New(checkerSample(4, 4, cRed, cBlue), Config{Width: 8, Height: 5, N: 2, Seed: 21})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cells := g.Size().Area()
	for {
		res := g.Step()
		if res.Contradiction {
			t.Fatal("checkerboard must never contradict")
		}

		uncollapsed := 0
		for c := 0; c < cells; c++ {
			dom := g.domain(c)
			if dom.count() < 1 {
				t.Fatalf("cell %d lost its whole domain mid-run", c)
			}
			if g.entropy[c] >= 0 {
				uncollapsed++
			} else if dom.count() != 1 {
				t.Fatalf("collapsed cell %d must hold a singleton, got %d candidates", c, dom.count())
			}
		}
		if uncollapsed+g.Collapsed() != cells {
			t.Fatalf("entropy index inconsistent: %d uncollapsed + %d collapsed != %d cells",
				uncollapsed, g.Collapsed(), cells)
		}

		if res.Done {
			break
		}
	}
}

func TestCheckerboardRunAlternates(t *testing.T) {
	g, err := New(checkerSample(4, 4, cRed, cBlue), Config{Width: 8, Height: 5, N: 2, Seed: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res := runToEnd(t, g); !res.Done {
		t.Fatal("checkerboard generation should complete")
	}

	phase, _ := g.PatternAt(0)
	w := g.Size().W
	for c := 0; c < g.Size().Area(); c++ {
		id, ok := g.PatternAt(c)
		if !ok {
			t.Fatalf("cell %d left unresolved", c)
		}
		want := phase
		if (c%w+c/w)%2 == 1 {
			want = 1 - phase
		}
		if id != want {
			t.Fatalf("cell %d broke the checker parity: got %d want %d", c, id, want)
		}
	}
}

func TestRunsAreDeterministicPerSeed(t *testing.T) {
	sample := NewSample(2, 1)
	sample.Set(0, 0, cRed)
	sample.Set(1, 0, cBlue)
	cfg := Config{Width: 16, Height: 16, N: 1, Seed: 1234}

	g, err := New(sample, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	runToEnd(t, g)
	first := collapsedIDs(t, g)

	g.Reset(1234)
	runToEnd(t, g)
	if !slices.Equal(first, collapsedIDs(t, g)) {
		t.Fatal("identical seeds must reproduce the identical grid")
	}

	g.Reset(99)
	runToEnd(t, g)
	if slices.Equal(first, collapsedIDs(t, g)) {
		t.Fatal("different seeds should produce different grids")
	}
}

func TestTwoColorRunBalancesFrequencies(t *testing.T) {
	sample := NewSample(2, 1)
	sample.Set(0, 0, cRed)
	sample.Set(1, 0, cBlue)

	g, err := New(sample, Config{Width: 32, Height: 32, N: 1, Seed: 9})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib := g.Library(); lib.Frequency(0) != lib.Frequency(1) {
		t.Fatalf("expected equal frequencies, got %d and %d", lib.Frequency(0), lib.Frequency(1))
	}
	if res := runToEnd(t, g); !res.Done {
		t.Fatal("two-color N=1 generation should always complete")
	}

	counts := [2]int{}
	for c := 0; c < g.Size().Area(); c++ {
		id, ok := g.PatternAt(c)
		if !ok {
			t.Fatalf("cell %d left unresolved", c)
		}
		counts[id]++
	}
	total := g.Size().Area()
	for id, n := range counts {
		if n < total*3/8 {
			t.Fatalf("color %d underrepresented for equal weights: %d of %d", id, n, total)
		}
	}
}

func TestWeightedPickHonorsFrequencies(t *testing.T) {
	lib := alternatingLibrary()
	lib.freqs = []int{3, 1}
	g := &Generator{lib: lib, rng: core.NewRNG(99).Source()}

	dom := newBitset(2)
	dom.fill(2)

	const picks = 8000
	counts := [2]int{}
	for i := 0; i < picks; i++ {
		counts[g.pickWeighted(dom)]++
	}
	if counts[0] < 5700 || counts[0] > 6300 {
		t.Fatalf("expected roughly 3:1 picks, got %d vs %d", counts[0], counts[1])
	}
}

func TestResetPreSeedsExactlyOneCell(t *testing.T) {
	g, err := New(checkerSample(4, 4, cRed, cBlue), Config{Width: 6, Height: 6, N: 2, Seed: 31})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := float64(g.lib.Len())
	seeded := 0
	for c, e := range g.entropy {
		switch e {
		case p:
		case p - 1:
			seeded++
		default:
			t.Fatalf("cell %d starts at unexpected entropy %f", c, e)
		}
	}
	if seeded != 1 {
		t.Fatalf("expected exactly one pre-seeded cell, got %d", seeded)
	}

	snap := g.EntropySnapshot(nil)
	if len(snap) != g.Size().Area() {
		t.Fatalf("snapshot should cover every cell, got %d of %d", len(snap), g.Size().Area())
	}
}

func TestSetupRejectsInvalidConfig(t *testing.T) {
	s := uniformSample(2, 2, cRed)
	if _, err := New(s, Config{Width: 0, Height: 4, N: 1}); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize for zero width, got %v", err)
	}
	if _, err := New(s, Config{Width: 4, Height: -1, N: 1}); !errors.Is(err, ErrGridSize) {
		t.Fatalf("expected ErrGridSize for negative height, got %v", err)
	}
	if _, err := New(s, Config{Width: 4, Height: 4, N: 5}); !errors.Is(err, ErrPatternSize) {
		t.Fatalf("expected ErrPatternSize for oversized n, got %v", err)
	}
}

func collapsedIDs(t *testing.T, g *Generator) []int {
	t.Helper()
	out := make([]int, g.Size().Area())
	for c := range out {
		id, ok := g.PatternAt(c)
		if !ok {
			t.Fatalf("cell %d left unresolved", c)
		}
		out[c] = id
	}
	return out
}
