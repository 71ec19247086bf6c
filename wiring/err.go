package wiring

import (
	"github.com/PeddleSpam/enigma/translate"
)

var f = translate.From

// ErrNotLetter indicates a rune outside A..Z.
type ErrNotLetter rune

func (err ErrNotLetter) Error() string {
	return f("%q is not a letter A..Z", string(rune(err)))
}

func (err ErrNotLetter) Is(target error) (ok bool) {
	_, ok = target.(ErrNotLetter)
	return
}

// ErrSymbolRange indicates a code point outside [0, Base).
type ErrSymbolRange uint8

func (err ErrSymbolRange) Error() string {
	return f("code point %d outside base %d", uint8(err), Base)
}

func (err ErrSymbolRange) Is(target error) (ok bool) {
	_, ok = target.(ErrSymbolRange)
	return
}
