package setup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	m, err := Default()
	assert.NoError(err)
	assert.Equal(uint(26), m.Base())
	assert.Equal(3, m.RotorCount())

	// First keypress of the demo configuration: 'A' -> 'U'.
	assert.Equal(uint8(20), m.EncodeNext(0))
}

func TestParse_Catalogue(t *testing.T) {
	assert := assert.New(t)

	src := `
rotors = [ROTOR_III, ROTOR_II, ROTOR_I]
reflector = REFLECTOR_B
`
	m, err := Parse("catalogue.star", src)
	assert.NoError(err)
	assert.Equal(3, m.RotorCount())

	// Matches the default machine.
	assert.Equal(uint8(20), m.EncodeNext(0))
}

func TestParse_CustomWheels(t *testing.T) {
	assert := assert.New(t)

	src := `
rotors = [
    {"cipher": [1, 2, 3, 0], "notches": [0]},
    {"cipher": [0, 1, 2, 3]},
]
reflector = [3, 2, 1, 0]
`
	m, err := Parse("custom.star", src)
	assert.NoError(err)
	assert.Equal(uint(4), m.Base())
	assert.Equal(2, m.RotorCount())

	// Four steps wrap rotor 0 through its notch at 0.
	m.Advance(4)
	assert.Equal([]uint{0, 1}, m.Positions())
}

func TestParse_TurnoverLetters(t *testing.T) {
	assert := assert.New(t)

	src := `
rotors = [{"cipher": "BDFHJLCPRTXVZNYEIWGAKMUSQO", "turnover": "V"}]
reflector = REFLECTOR_B
`
	m, err := Parse("letters.star", src)
	assert.NoError(err)

	// Notch at W, one past the turnover letter.
	m.Advance(22)
	assert.Equal([]uint{22}, m.Positions())
}

func TestParse_Starlark(t *testing.T) {
	assert := assert.New(t)

	// Setup files are programs; the catalogue entries are plain values.
	src := `
rotors = [ROTOR_I for _ in range(3)]
reflector = REFLECTOR_C
`
	m, err := Parse("program.star", src)
	assert.NoError(err)
	assert.Equal(3, m.RotorCount())
}

func TestParse_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Parse("bad.star", `reflector = REFLECTOR_B`)
	assert.ErrorIs(err, ErrRotorsMissing)

	_, err = Parse("bad.star", `rotors = [ROTOR_I]`)
	assert.ErrorIs(err, ErrReflectorMissing)

	_, err = Parse("bad.star", `
rotors = "ROTOR_I"
reflector = REFLECTOR_B
`)
	assert.ErrorIs(err, ErrValue{})

	_, err = Parse("bad.star", `
rotors = ["ROTOR_I"]
reflector = REFLECTOR_B
`)
	var rotErr ErrRotor
	assert.ErrorAs(err, &rotErr)
	assert.Equal(0, rotErr.Index)

	_, err = Parse("bad.star", `
rotors = [{"turnover": "Q"}]
reflector = REFLECTOR_B
`)
	assert.ErrorIs(err, ErrCipherMissing)

	// Turnover letters make no sense off the latin alphabet.
	_, err = Parse("bad.star", `
rotors = [{"cipher": [0, 1, 2], "turnover": "Q"}]
reflector = [0, 1, 2]
`)
	assert.ErrorIs(err, ErrTurnoverBase)

	// Code points are clamped to a byte.
	_, err = Parse("bad.star", `
rotors = [{"cipher": [0, 1, 300]}]
reflector = [0, 1, 2]
`)
	assert.ErrorIs(err, ErrValue{})

	// Syntax errors surface from the interpreter.
	_, err = Parse("bad.star", `rotors = [`)
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "machine.star")
	src := `
rotors = [ROTOR_VI, ROTOR_V]
reflector = REFLECTOR_C
`
	assert.NoError(os.WriteFile(path, []byte(src), 0o644))

	m, err := Load(path)
	assert.NoError(err)
	assert.Equal(2, m.RotorCount())

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.Error(err)
}
