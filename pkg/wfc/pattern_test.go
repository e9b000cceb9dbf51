package wfc

import (
	"bytes"
	"testing"
)

// pix2x2 builds a 2x2 RGBA buffer with one marker byte per texel.
func pix2x2(a, b, c, d uint8) []uint8 {
	out := make([]uint8, 16)
	for i, v := range []uint8{a, b, c, d} {
		out[i*4] = v
		out[i*4+3] = 0xff
	}
	return out
}

func TestRotateCWQuarterTurn(t *testing.T) {
	// A B        C A
	// C D  turns D B
	got := rotateCW(pix2x2(1, 2, 3, 4), 2)
	want := pix2x2(3, 1, 4, 2)
	if !bytes.Equal(got, want) {
		t.Fatalf("clockwise rotation wrong: got %v want %v", got, want)
	}
}

func TestMirrorRowsFlipsVertically(t *testing.T) {
	got := mirrorRows(pix2x2(1, 2, 3, 4), 2)
	want := pix2x2(3, 4, 1, 2)
	if !bytes.Equal(got, want) {
		t.Fatalf("row mirror wrong: got %v want %v", got, want)
	}
}

func TestMirrorColsFlipsHorizontally(t *testing.T) {
	got := mirrorCols(pix2x2(1, 2, 3, 4), 2)
	want := pix2x2(2, 1, 4, 3)
	if !bytes.Equal(got, want) {
		t.Fatalf("column mirror wrong: got %v want %v", got, want)
	}
}

func TestSymmetriesEmitTwelveVariants(t *testing.T) {
	vars := symmetries(pix2x2(1, 2, 3, 4), 2)
	if len(vars) != 12 {
		t.Fatalf("expected 12 symmetry variants, got %d", len(vars))
	}

	// A fully asymmetric square has 8 distinct orientations; the four
	// extra variants must be duplicates, never novel content.
	distinct := map[string]bool{}
	for _, v := range vars {
		distinct[string(v)] = true
	}
	if len(distinct) != 8 {
		t.Fatalf("expected 8 distinct orientations of an asymmetric window, got %d", len(distinct))
	}
}

func TestSymmetriesOfUniformWindowCoincide(t *testing.T) {
	vars := symmetries(pix2x2(7, 7, 7, 7), 2)
	for i, v := range vars {
		if !bytes.Equal(v, vars[0]) {
			t.Fatalf("variant %d of a uniform window differs from the original", i)
		}
	}
}

func TestSymmetriesDoNotMutateInput(t *testing.T) {
	window := pix2x2(1, 2, 3, 4)
	snapshot := append([]uint8(nil), window...)
	symmetries(window, 2)
	if !bytes.Equal(window, snapshot) {
		t.Fatal("symmetry expansion must not mutate the source window")
	}
}

func TestPatternAtReadsTexels(t *testing.T) {
	p := Pattern{n: 2, pix: pix2x2(9, 8, 7, 6)}
	if got := p.At(1, 0); got.R != 8 {
		t.Fatalf("expected texel (1,0) marker 8, got %d", got.R)
	}
	if got := p.At(0, 1); got.R != 7 {
		t.Fatalf("expected texel (0,1) marker 7, got %d", got.R)
	}
	if p.N() != 2 {
		t.Fatalf("expected side length 2, got %d", p.N())
	}
}
