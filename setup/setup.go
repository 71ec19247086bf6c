// Package setup builds machines from Starlark definition files.
//
// A setup file assigns two globals:
//
//	rotors = [ROTOR_III, ROTOR_II, ROTOR_I]
//	reflector = REFLECTOR_B
//
// The historical catalogue is predeclared. Custom wheels are dicts with a
// "cipher" (an A..Z string or a list of code points) plus either "turnover"
// (A..Z letters, base 26 only) or "notches" (a list of positions):
//
//	rotors = [{"cipher": [1, 2, 3, 0], "notches": [0]}]
//	reflector = [3, 2, 1, 0]
package setup

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/PeddleSpam/enigma/machine"
	"github.com/PeddleSpam/enigma/rotor"
	"github.com/PeddleSpam/enigma/wiring"
)

// Default returns the machine of the original demo: rotors III, II, I in
// chain order with reflector B, all at position zero.
func Default() (m *machine.Machine[uint8], err error) {
	chain := []wiring.Wheel{wiring.RotorIII, wiring.RotorII, wiring.RotorI}
	rotors := make([]*rotor.Rotor[uint8], 0, len(chain))
	for _, wheel := range chain {
		var r *rotor.Rotor[uint8]
		if r, err = wheel.Rotor(); err != nil {
			return
		}
		rotors = append(rotors, r)
	}

	reflector, err := wiring.ReflectorB.Cipher()
	if err != nil {
		return
	}
	return machine.New(rotors, reflector)
}

// Load executes a setup file and builds the machine it defines.
func Load(path string) (*machine.Machine[uint8], error) {
	return Parse(path, nil)
}

// Parse is Load for in-memory sources; src takes anything
// starlark.ExecFileOptions accepts (string, []byte, io.Reader, or nil to
// read the named file).
func Parse(filename string, src any) (m *machine.Machine[uint8], err error) {
	thread := &starlark.Thread{Name: "setup"}
	opts := &syntax.FileOptions{}
	globals, err := starlark.ExecFileOptions(opts, thread, filename, src, predeclared())
	if err != nil {
		return
	}

	rotorsVal, ok := globals["rotors"]
	if !ok {
		err = ErrRotorsMissing
		return
	}
	reflectorVal, ok := globals["reflector"]
	if !ok {
		err = ErrReflectorMissing
		return
	}

	list, ok := rotorsVal.(*starlark.List)
	if !ok {
		err = ErrValue{Name: "rotors", Got: rotorsVal.Type()}
		return
	}

	rotors := make([]*rotor.Rotor[uint8], 0, list.Len())
	for n := 0; n < list.Len(); n++ {
		var r *rotor.Rotor[uint8]
		if r, err = buildRotor(list.Index(n)); err != nil {
			err = ErrRotor{Index: n, Err: err}
			return
		}
		rotors = append(rotors, r)
	}

	reflector, err := symbols("reflector", reflectorVal)
	if err != nil {
		return
	}

	return machine.New(rotors, reflector)
}

// predeclared exposes the historical catalogue to setup files.
func predeclared() starlark.StringDict {
	globals := starlark.StringDict{
		"REFLECTOR_A": starlark.String(wiring.ReflectorA.Wiring),
		"REFLECTOR_B": starlark.String(wiring.ReflectorB.Wiring),
		"REFLECTOR_C": starlark.String(wiring.ReflectorC.Wiring),
	}

	wheels := []wiring.Wheel{
		wiring.RotorI, wiring.RotorII, wiring.RotorIII, wiring.RotorIV,
		wiring.RotorV, wiring.RotorVI, wiring.RotorVII, wiring.RotorVIII,
	}
	for _, wheel := range wheels {
		dict := starlark.NewDict(2)
		dict.SetKey(starlark.String("cipher"), starlark.String(wheel.Wiring))
		dict.SetKey(starlark.String("turnover"), starlark.String(wheel.Turnover))
		globals["ROTOR_"+wheel.Name] = dict
	}

	return globals
}

// buildRotor converts one entry of the rotors list.
func buildRotor(item starlark.Value) (r *rotor.Rotor[uint8], err error) {
	dict, ok := item.(*starlark.Dict)
	if !ok {
		err = ErrValue{Name: "rotor", Got: item.Type()}
		return
	}

	cipherVal, found, err := dict.Get(starlark.String("cipher"))
	if err != nil {
		return
	}
	if !found {
		err = ErrCipherMissing
		return
	}
	cipher, err := symbols("cipher", cipherVal)
	if err != nil {
		return
	}

	notches, err := notchSet(dict, uint(len(cipher)))
	if err != nil {
		return
	}

	return rotor.New(cipher, notches, nil)
}

// notchSet reads either "notches" (positions) or "turnover" (letters) from a
// wheel dict.
func notchSet(dict *starlark.Dict, base uint) (set rotor.NotchSet, err error) {
	notchesVal, found, err := dict.Get(starlark.String("notches"))
	if err != nil {
		return
	}
	if found {
		var positions []uint8
		if positions, err = symbols("notches", notchesVal); err != nil {
			return
		}
		wide := make([]uint, len(positions))
		for n, pos := range positions {
			wide[n] = uint(pos)
		}
		return rotor.NewNotchSet(base, wide...)
	}

	turnoverVal, found, err := dict.Get(starlark.String("turnover"))
	if err != nil {
		return
	}
	if found {
		str, ok := turnoverVal.(starlark.String)
		if !ok {
			err = ErrValue{Name: "turnover", Got: turnoverVal.Type()}
			return
		}
		if base != wiring.Base {
			err = ErrTurnoverBase
			return
		}
		var letters []uint8
		if letters, err = wiring.FromLetters(string(str)); err != nil {
			return
		}
		positions := make([]uint, len(letters))
		for n, val := range letters {
			positions[n] = (uint(val) + 1) % wiring.Base
		}
		return rotor.NewNotchSet(base, positions...)
	}

	return rotor.NewNotchSet(base)
}

// symbols converts an A..Z string or a list of small integers to code
// points.
func symbols(name string, value starlark.Value) (vals []uint8, err error) {
	switch val := value.(type) {
	case starlark.String:
		return wiring.FromLetters(string(val))
	case *starlark.List:
		vals = make([]uint8, 0, val.Len())
		for n := 0; n < val.Len(); n++ {
			var point int
			if err = starlark.AsInt(val.Index(n), &point); err != nil || point < 0 || point > 255 {
				err = ErrValue{Name: name, Got: val.Index(n).String()}
				vals = nil
				return
			}
			vals = append(vals, uint8(point))
		}
		return
	default:
		err = ErrValue{Name: name, Got: value.Type()}
		return
	}
}
