// Package machine implements an Enigma-style rotor assembly: an ordered
// chain of rotors plus a reflector, encoding one symbol per keypress.
package machine

import (
	"errors"
	"log"
	"slices"

	"github.com/PeddleSpam/enigma/rotor"
)

// Machine owns an ordered chain of rotors and one reflector. Each rotor's
// turnover callback advances the next rotor in the chain; the last rotor
// keeps the no-op default.
//
// A machine is a single mutable resource with no internal locking. Callers
// sharing one across goroutines must serialize access.
type Machine[T rotor.Index] struct {
	Verbose bool // Set to enable verbose logging.

	rotors    []*rotor.Rotor[T]
	reflector []T
	base      uint
}

// New creates a machine from an ordered rotor chain and a reflector table.
// All rotors must share one base, and the reflector must be a permutation of
// that base. The machine takes ownership of the rotors: advancing or rewiring
// them externally afterwards breaks the chain invariant.
//
// Historical reflectors are involutions, but that is convention, not a
// requirement, and is not checked here.
func New[T rotor.Index](rotors []*rotor.Rotor[T], reflector []T) (m *Machine[T], err error) {
	if len(rotors) == 0 {
		err = ErrNoRotors
		return
	}

	base := rotors[0].Base()
	for _, r := range rotors[1:] {
		if r.Base() != base {
			err = ErrBaseMismatch{Want: base, Got: r.Base()}
			return
		}
	}
	if uint(len(reflector)) != base {
		err = errors.Join(ErrReflector, ErrBaseMismatch{Want: base, Got: uint(len(reflector))})
		return
	}
	if err = rotor.CheckPermutation(reflector); err != nil {
		err = errors.Join(ErrReflector, err)
		return
	}

	m = &Machine[T]{
		rotors:    slices.Clone(rotors),
		reflector: slices.Clone(reflector),
		base:      base,
	}

	// Chain the turnovers: rotor i advances rotor i+1.
	for n := 0; n < len(m.rotors)-1; n++ {
		next := m.rotors[n+1]
		m.rotors[n].SetTurnoverCallback(func(knocks uint) {
			next.Advance(knocks)
		})
	}

	return
}

// Base returns the number of code points in the machine's alphabet.
func (m *Machine[T]) Base() uint {
	return m.base
}

// RotorCount returns the number of rotors in the chain.
func (m *Machine[T]) RotorCount() int {
	return len(m.rotors)
}

// Positions returns the current offset of every rotor, in chain order.
func (m *Machine[T]) Positions() (positions []uint) {
	positions = make([]uint, len(m.rotors))
	for n, r := range m.rotors {
		positions[n] = r.Position()
	}
	return
}

// Advance rotates the first rotor by `steps`. Turnovers cascade through the
// chain synchronously; the recursion depth is bounded by the rotor count.
func (m *Machine[T]) Advance(steps uint) {
	m.rotors[0].Advance(steps)

	if m.Verbose {
		log.Printf("machine: advance %d -> %v", steps, m.Positions())
	}
}

// Encode passes a symbol forward through every rotor, through the reflector,
// then backward through every rotor in reverse order. It is a pure function
// of the current rotor positions and does not advance anything.
// Precondition: val < base.
func (m *Machine[T]) Encode(val T) T {
	for _, r := range m.rotors {
		val = r.Forward(val)
	}

	val = m.reflector[val]

	for n := len(m.rotors) - 1; n >= 0; n-- {
		val = m.rotors[n].Reverse(val)
	}

	return val
}

// EncodeNext advances the assembly by one step and encodes val: the keypress
// operation. As on a physical machine, the rotors step before the
// substitution.
func (m *Machine[T]) EncodeNext(val T) T {
	m.Advance(1)
	return m.Encode(val)
}
