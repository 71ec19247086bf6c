// Package wiring ships the historical Enigma I wheel catalogue: rotor and
// reflector substitution tables and turnover positions, expressed as A..Z
// letter strings. The tables are caller-supplied configuration for the rotor
// and machine packages, not part of their contract.
//
// Sources:
// https://en.wikipedia.org/wiki/Enigma_rotor_details#Rotor_wiring_tables
// https://en.wikipedia.org/wiki/Enigma_rotor_details#Turnover_notch_positions
package wiring

import (
	"github.com/PeddleSpam/enigma/rotor"
)

// Base is the width of the latin alphabet the catalogue is wired for.
const Base = 26

// Wheel describes one wheel of the catalogue. Wiring maps the letter at
// index i to its substitute. Turnover lists the letters shown in the window
// when the notch engages the next wheel; it is empty for reflectors.
type Wheel struct {
	Name     string
	Wiring   string
	Turnover string
}

// Rotors I-VIII of the Enigma I and M3.
var (
	RotorI    = Wheel{Name: "I", Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Turnover: "Q"}
	RotorII   = Wheel{Name: "II", Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Turnover: "E"}
	RotorIII  = Wheel{Name: "III", Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Turnover: "V"}
	RotorIV   = Wheel{Name: "IV", Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Turnover: "J"}
	RotorV    = Wheel{Name: "V", Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Turnover: "Z"}
	RotorVI   = Wheel{Name: "VI", Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Turnover: "ZM"}
	RotorVII  = Wheel{Name: "VII", Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Turnover: "ZM"}
	RotorVIII = Wheel{Name: "VIII", Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Turnover: "ZM"}
)

// Reflectors (Umkehrwalzen) A, B and C. All are involutions.
var (
	ReflectorA = Wheel{Name: "UKW-A", Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"}
	ReflectorB = Wheel{Name: "UKW-B", Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"}
	ReflectorC = Wheel{Name: "UKW-C", Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"}
)

// FromLetters converts an A..Z string to code points 0..25.
func FromLetters(text string) (vals []uint8, err error) {
	vals = make([]uint8, 0, len(text))
	for _, run := range text {
		if run < 'A' || run > 'Z' {
			err = ErrNotLetter(run)
			vals = nil
			return
		}
		vals = append(vals, uint8(run-'A'))
	}
	return
}

// ToLetters converts code points 0..25 back to an A..Z string.
func ToLetters(vals []uint8) (text string, err error) {
	letters := make([]byte, len(vals))
	for n, val := range vals {
		if val >= Base {
			err = ErrSymbolRange(val)
			return
		}
		letters[n] = 'A' + val
	}
	text = string(letters)
	return
}

// Cipher returns the wheel's substitution table as code points.
func (w Wheel) Cipher() ([]uint8, error) {
	return FromLetters(w.Wiring)
}

// Notches returns the wheel's notch set. The notch sits one position past
// the turnover letter: a wheel showing its turnover letter knocks the next
// wheel on the following step.
func (w Wheel) Notches() (set rotor.NotchSet, err error) {
	letters, err := FromLetters(w.Turnover)
	if err != nil {
		return
	}

	positions := make([]uint, len(letters))
	for n, val := range letters {
		positions[n] = (uint(val) + 1) % Base
	}
	return rotor.NewNotchSet(Base, positions...)
}

// Rotor builds a fresh rotor from the wheel description.
func (w Wheel) Rotor() (r *rotor.Rotor[uint8], err error) {
	cipher, err := w.Cipher()
	if err != nil {
		return
	}
	notches, err := w.Notches()
	if err != nil {
		return
	}
	return rotor.New(cipher, notches, nil)
}
