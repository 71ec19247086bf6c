package internal

import (
	"cmp"
	"math/bits"
)

// Bits is a fixed-width bit set over positions [0, size). The zero value is
// an empty set of width zero.
type Bits struct {
	word []uint64
	size uint
}

// NewBits creates an empty bit set of the given width.
func NewBits(size uint) Bits {
	return Bits{
		word: make([]uint64, (size+63)/64),
		size: size,
	}
}

// Size returns the width of the set.
func (b Bits) Size() uint {
	return b.size
}

// Set marks the bit at pos.
func (b *Bits) Set(pos uint) {
	b.word[pos>>6] |= 1 << (pos & 63)
}

// Test reports whether the bit at pos is set.
func (b Bits) Test(pos uint) bool {
	if pos >= b.size {
		return false
	}
	return b.word[pos>>6]&(1<<(pos&63)) != 0
}

// Count returns the number of set bits.
func (b Bits) Count() (count uint) {
	for _, w := range b.word {
		count += uint(bits.OnesCount64(w))
	}
	return
}

// SetRange marks every bit in the closed interval [from, to].
func (b *Bits) SetRange(from, to uint) {
	for pos := from; pos <= to && pos < b.size; pos++ {
		b.Set(pos)
	}
}

// Not inverts the set in place, keeping bits above the width clear.
func (b *Bits) Not() {
	for n := range b.word {
		b.word[n] = ^b.word[n]
	}
	if top := b.size & 63; top != 0 {
		b.word[len(b.word)-1] &= (1 << top) - 1
	}
}

// AndCount returns the number of positions set in both b and other. The two
// sets must have the same width.
func (b Bits) AndCount(other Bits) (count uint) {
	for n, w := range b.word {
		count += uint(bits.OnesCount64(w & other.word[n]))
	}
	return
}

// Clone returns an independent copy of the set.
func (b Bits) Clone() Bits {
	dup := NewBits(b.size)
	copy(dup.word, b.word)
	return dup
}

// Sorted2 returns its two arguments in ascending order.
func Sorted2[T cmp.Ordered](a, b T) (lo T, hi T) {
	if b < a {
		return b, a
	}
	return a, b
}
