package rotor

import (
	"errors"

	"github.com/PeddleSpam/enigma/translate"
)

var f = translate.From

var (
	ErrEmptyCipher = errors.New(f("empty cipher table"))
)

// ErrIndexWidth indicates that the symbol type cannot represent every code
// point of the requested alphabet.
type ErrIndexWidth uint

func (err ErrIndexWidth) Error() string {
	return f("index type too narrow for base %d", uint(err))
}

func (err ErrIndexWidth) Is(target error) (ok bool) {
	_, ok = target.(ErrIndexWidth)
	return
}

// ErrNotPermutation indicates a cipher table that is not a bijection on
// [0, base).
type ErrNotPermutation struct {
	Position uint   // Offending table index.
	Value    uint64 // Value found there.
}

func (err ErrNotPermutation) Error() string {
	return f("cipher is not a permutation: value %d at position %d", err.Value, err.Position)
}

func (err ErrNotPermutation) Is(target error) (ok bool) {
	_, ok = target.(ErrNotPermutation)
	return
}

// ErrNotchRange indicates a notch position outside the alphabet.
type ErrNotchRange struct {
	Position uint
	Base     uint
}

func (err ErrNotchRange) Error() string {
	return f("notch position %d outside base %d", err.Position, err.Base)
}

func (err ErrNotchRange) Is(target error) (ok bool) {
	_, ok = target.(ErrNotchRange)
	return
}

// ErrNotchSize indicates a notch set whose width disagrees with the cipher
// table length.
type ErrNotchSize struct {
	Want uint
	Got  uint
}

func (err ErrNotchSize) Error() string {
	return f("notch set width %d does not match base %d", err.Got, err.Want)
}

func (err ErrNotchSize) Is(target error) (ok bool) {
	_, ok = target.(ErrNotchSize)
	return
}
