package rotor

import (
	"slices"

	"github.com/PeddleSpam/enigma/internal"
)

// Index constrains the symbol ("code point") type of a rotor. Symbols are
// unsigned integers in [0, base).
type Index interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// TurnoverFunc is invoked with the number of notches crossed during a single
// advance.
type TurnoverFunc func(knocks uint)

func ignoreTurnover(uint) {}

// CheckPermutation reports whether table is a bijection on [0, len(table)).
// It returns ErrNotPermutation naming the first offending entry otherwise.
func CheckPermutation[T Index](table []T) (err error) {
	base := uint(len(table))
	seen := internal.NewBits(base)
	for n, val := range table {
		v := uint64(val)
		if v >= uint64(base) || seen.Test(uint(v)) {
			err = ErrNotPermutation{Position: uint(n), Value: v}
			return
		}
		seen.Set(uint(v))
	}
	return
}

// Rotor is a substitution wheel: a forward cipher over [0, base), its derived
// inverse, a notch set, and a rotation offset starting at zero.
//
// A rotor is not safe for concurrent use.
type Rotor[T Index] struct {
	forward  []T
	reverse  []T
	notches  NotchSet
	position uint
	base     uint
	turnover TurnoverFunc
}

// New creates a rotor from a forward cipher table and a notch set. The table
// must be a permutation of [0, len(cipher)), the notch set must have the
// same width, and the symbol type must be able to represent every code
// point. The callback may be nil, in which case turnovers are ignored until
// one is installed.
//
// The cipher table is copied; the caller keeps no handle on rotor state.
func New[T Index](cipher []T, notches NotchSet, callback TurnoverFunc) (r *Rotor[T], err error) {
	base := uint(len(cipher))
	if base == 0 {
		err = ErrEmptyCipher
		return
	}
	if uint64(T(base-1)) != uint64(base-1) {
		err = ErrIndexWidth(base)
		return
	}
	if notches.Base() != base {
		err = ErrNotchSize{Want: base, Got: notches.Base()}
		return
	}
	if err = CheckPermutation(cipher); err != nil {
		return
	}
	if callback == nil {
		callback = ignoreTurnover
	}

	r = &Rotor[T]{
		forward:  slices.Clone(cipher),
		reverse:  make([]T, base),
		notches:  notches,
		base:     base,
		turnover: callback,
	}
	for n, val := range r.forward {
		r.reverse[val] = T(n)
	}
	return
}

// Base returns the number of code points on the wheel.
func (r *Rotor[T]) Base() uint {
	return r.base
}

// Position returns the current rotation offset.
func (r *Rotor[T]) Position() uint {
	return r.position
}

// Notches returns the rotor's notch set.
func (r *Rotor[T]) Notches() NotchSet {
	return r.notches
}

// TurnoverCallback returns the installed turnover callback.
func (r *Rotor[T]) TurnoverCallback() TurnoverFunc {
	return r.turnover
}

// SetTurnoverCallback replaces the turnover callback. Installing a nil
// callback is a contract breach and panics.
func (r *Rotor[T]) SetTurnoverCallback(callback TurnoverFunc) {
	if callback == nil {
		panic("rotor: nil turnover callback")
	}
	r.turnover = callback
}

// Step advances the rotor by one position. If the new position carries a
// notch the turnover callback fires with a count of one. Returns the new
// position.
func (r *Rotor[T]) Step() (position uint) {
	r.position++
	if r.position == r.base {
		r.position = 0
	}

	if r.notches.Test(r.position) {
		r.turnover(1)
	}

	return r.position
}

// Advance rotates the wheel by `steps` and fires the turnover callback at
// most once, with the aggregate number of notches crossed. Full wraps around
// the wheel each cross every notch; the remaining partial sweep is counted
// with an arc mask over the positions strictly after the old position up to
// and including the new one, inverted when the sweep passes base-1 back to
// zero. Advance(0) never fires. Returns the new position.
func (r *Rotor[T]) Advance(steps uint) (position uint) {
	next := r.position + steps
	knocks := (next / r.base) * r.notches.Count()
	next = next % r.base

	if next != r.position {
		lead, trail := internal.Sorted2(r.position, next)
		arc := internal.NewBits(r.base)
		arc.SetRange(lead+1, trail)
		if next < r.position {
			arc.Not()
		}
		knocks += arc.AndCount(r.notches.bits)
	}
	r.position = next

	if knocks > 0 {
		r.turnover(knocks)
	}

	return r.position
}

// Forward passes a symbol through the forward cipher at the current offset.
// Precondition: val < base.
func (r *Rotor[T]) Forward(val T) T {
	return r.forward[(r.position+uint(val))%r.base]
}

// Reverse passes a symbol through the inverse cipher at the current offset.
// Precondition: val < base.
func (r *Rotor[T]) Reverse(val T) T {
	return r.reverse[(r.position+uint(val))%r.base]
}
