package rotor

import (
	"github.com/PeddleSpam/enigma/internal"
)

// NotchSet is a fixed set of notched positions on a rotor of a given base.
// The zero value is an empty set of base zero.
type NotchSet struct {
	bits internal.Bits
}

// NewNotchSet creates a notch set for an alphabet of `base` code points,
// with notches at the given positions. Positions at or beyond the base are
// rejected.
func NewNotchSet(base uint, positions ...uint) (set NotchSet, err error) {
	set.bits = internal.NewBits(base)
	for _, pos := range positions {
		if pos >= base {
			err = ErrNotchRange{Position: pos, Base: base}
			return
		}
		set.bits.Set(pos)
	}
	return
}

// Base returns the alphabet width the set was built for.
func (set NotchSet) Base() uint {
	return set.bits.Size()
}

// Test reports whether pos carries a notch.
func (set NotchSet) Test(pos uint) bool {
	return set.bits.Test(pos)
}

// Count returns the number of notches in the set.
func (set NotchSet) Count() uint {
	return set.bits.Count()
}

// Positions returns the notched positions in ascending order.
func (set NotchSet) Positions() (positions []uint) {
	for pos := uint(0); pos < set.bits.Size(); pos++ {
		if set.bits.Test(pos) {
			positions = append(positions, pos)
		}
	}
	return
}
