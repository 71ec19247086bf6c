// Package keystream adapts a rotor machine into a bounded symbol generator:
// every draw feeds the previous output back through the machine's
// encode-and-advance operation, forming a self-referential keystream. The
// adaptor satisfies the shape generic shuffling and sampling algorithms
// expect from a uniform bounded source.
package keystream

import (
	"math/bits"

	"github.com/PeddleSpam/enigma/machine"
	"github.com/PeddleSpam/enigma/rotor"
)

// Generator wraps a machine and a running value. It does not own the
// machine: every draw advances the shared rotor positions, visible to any
// other holder, and the machine must outlive the generator.
type Generator[T rotor.Index] struct {
	machine *machine.Machine[T]
	value   T
}

// New binds a generator to an existing machine with an initial seed value.
// Precondition: seed < base.
func New[T rotor.Index](m *machine.Machine[T], seed T) *Generator[T] {
	return &Generator[T]{
		machine: m,
		value:   seed,
	}
}

// Min returns the smallest value the generator produces.
func (gen *Generator[T]) Min() T {
	return 0
}

// Max returns the largest value the generator produces.
func (gen *Generator[T]) Max() T {
	return T(gen.machine.Base() - 1)
}

// Next advances the machine one step, encodes the running value, and feeds
// the result back as the next input.
func (gen *Generator[T]) Next() T {
	gen.value = gen.machine.EncodeNext(gen.value)
	return gen.value
}

// Source adapts a Generator to math/rand's Source64 by packing keystream
// symbols into 64-bit words, so a machine can drive rand.Shuffle and
// friends.
type Source[T rotor.Index] struct {
	gen   *Generator[T]
	width uint
}

// NewSource wraps gen as a math/rand Source64.
func NewSource[T rotor.Index](gen *Generator[T]) *Source[T] {
	width := uint(bits.Len64(uint64(gen.Max())))
	if width == 0 {
		width = 1
	}
	return &Source[T]{
		gen:   gen,
		width: width,
	}
}

// Seed is not supported: the stream is a deterministic function of the
// machine state it was constructed with.
func (src *Source[T]) Seed(int64) {
	panic("keystream: Seed is not supported")
}

// Int63 returns a non-negative 63-bit value from the stream.
func (src *Source[T]) Int63() int64 {
	return int64(src.Uint64() >> 1)
}

// Uint64 packs enough keystream symbols to cover 64 bits.
func (src *Source[T]) Uint64() (value uint64) {
	for n := uint(0); n < 64; n += src.width {
		value = value<<src.width | uint64(src.gen.Next())
	}
	return
}
