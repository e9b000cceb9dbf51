package wfc

import "math/bits"

// bitset is a fixed-capacity set of pattern ids packed into 64-bit words.
type bitset []uint64

func newBitset(n int) bitset {
	return make(bitset, (n+63)/64)
}

func (b bitset) set(i int) {
	b[i>>6] |= 1 << (i & 63)
}

func (b bitset) has(i int) bool {
	return b[i>>6]&(1<<(i&63)) != 0
}

// fill sets every bit in [0, n).
func (b bitset) fill(n int) {
	for i := range b {
		b[i] = ^uint64(0)
	}
	if r := n & 63; r != 0 {
		b[len(b)-1] = 1<<r - 1
	}
}

func (b bitset) clearAll() {
	for i := range b {
		b[i] = 0
	}
}

func (b bitset) count() int {
	total := 0
	for _, w := range b {
		total += bits.OnesCount64(w)
	}
	return total
}

func (b bitset) isEmpty() bool {
	for _, w := range b {
		if w != 0 {
			return false
		}
	}
	return true
}

func (b bitset) or(o bitset) {
	for i := range b {
		b[i] |= o[i]
	}
}

func (b bitset) and(o bitset) {
	for i := range b {
		b[i] &= o[i]
	}
}

// subsetOf reports whether every bit of b is also set in o.
func (b bitset) subsetOf(o bitset) bool {
	for i, w := range b {
		if w&^o[i] != 0 {
			return false
		}
	}
	return true
}

func (b bitset) clone() bitset {
	return append(bitset(nil), b...)
}

func (b bitset) copyFrom(o bitset) {
	copy(b, o)
}

// first returns the lowest set bit, or -1 when the set is empty.
func (b bitset) first() int {
	for i, w := range b {
		if w != 0 {
			return i<<6 + bits.TrailingZeros64(w)
		}
	}
	return -1
}

// forEach calls fn for every set bit in ascending order.
func (b bitset) forEach(fn func(int)) {
	for i, w := range b {
		for w != 0 {
			fn(i<<6 + bits.TrailingZeros64(w))
			w &= w - 1
		}
	}
}
