package machine

import (
	"errors"

	"github.com/PeddleSpam/enigma/translate"
)

var f = translate.From

var (
	ErrNoRotors  = errors.New(f("no rotors"))
	ErrReflector = errors.New(f("reflector"))
)

// ErrBaseMismatch indicates a rotor or reflector whose alphabet width
// disagrees with the first rotor's.
type ErrBaseMismatch struct {
	Want uint
	Got  uint
}

func (err ErrBaseMismatch) Error() string {
	return f("base %d does not match base %d", err.Got, err.Want)
}

func (err ErrBaseMismatch) Is(target error) (ok bool) {
	_, ok = target.(ErrBaseMismatch)
	return
}
