package setup

import (
	"errors"

	"github.com/PeddleSpam/enigma/translate"
)

var f = translate.From

var (
	ErrRotorsMissing    = errors.New(f("rotors not defined"))
	ErrReflectorMissing = errors.New(f("reflector not defined"))
	ErrCipherMissing    = errors.New(f("cipher missing"))
	ErrTurnoverBase     = errors.New(f("turnover letters need a base 26 cipher"))
)

// ErrValue indicates a setup value of the wrong starlark type or range.
type ErrValue struct {
	Name string // Name of the offending value.
	Got  string // Starlark type or value found.
}

func (err ErrValue) Error() string {
	return f("%v is not a valid %v", err.Got, err.Name)
}

func (err ErrValue) Is(target error) (ok bool) {
	_, ok = target.(ErrValue)
	return
}

// ErrRotor indicates which rotor definition failed.
type ErrRotor struct {
	Index int
	Err   error
}

func (err ErrRotor) Error() string {
	return f("rotor %d: %v", err.Index, err.Err)
}

func (err ErrRotor) Unwrap() error {
	return err.Err
}
