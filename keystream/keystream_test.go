package keystream

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PeddleSpam/enigma/machine"
	"github.com/PeddleSpam/enigma/rotor"
	"github.com/PeddleSpam/enigma/wiring"
)

var _ rand.Source64 = (*Source[uint8])(nil)

// historical builds the demo machine: rotors III, II, I with reflector B,
// all at position zero.
func historical(t *testing.T) *machine.Machine[uint8] {
	t.Helper()

	var rotors []*rotor.Rotor[uint8]
	for _, wheel := range []wiring.Wheel{wiring.RotorIII, wiring.RotorII, wiring.RotorI} {
		r, err := wheel.Rotor()
		assert.NoError(t, err)
		rotors = append(rotors, r)
	}
	reflector, err := wiring.ReflectorB.Cipher()
	assert.NoError(t, err)

	m, err := machine.New(rotors, reflector)
	assert.NoError(t, err)
	return m
}

func TestGenerator_Bounds(t *testing.T) {
	assert := assert.New(t)

	gen := New(historical(t), 0)
	assert.Equal(uint8(0), gen.Min())
	assert.Equal(uint8(25), gen.Max())

	for n := 0; n < 1000; n++ {
		assert.LessOrEqual(gen.Next(), gen.Max())
	}
}

func TestGenerator_Golden(t *testing.T) {
	assert := assert.New(t)

	// Self-fed keystream from seed 0: "UJMYBWCLUNBEVJDA".
	gen := New(historical(t), 0)
	want := []uint8{20, 9, 12, 24, 1, 22, 2, 11, 20, 13, 1, 4, 21, 9, 3, 0}
	for n, w := range want {
		assert.Equal(w, gen.Next(), "draw %d", n)
	}
}

func TestGenerator_SharesMachine(t *testing.T) {
	assert := assert.New(t)

	m := historical(t)
	gen := New(m, 0)

	gen.Next()
	assert.Equal([]uint{1, 0, 0}, m.Positions())

	// A second holder of the machine observes, and perturbs, the stream.
	m.Advance(1)
	assert.Equal([]uint{2, 0, 0}, m.Positions())
	gen.Next()
	assert.Equal([]uint{3, 0, 0}, m.Positions())
}

func TestSource_Deterministic(t *testing.T) {
	assert := assert.New(t)

	a := NewSource(New(historical(t), 0))
	b := NewSource(New(historical(t), 0))
	for n := 0; n < 32; n++ {
		assert.Equal(a.Uint64(), b.Uint64())
	}
}

func TestSource_Int63(t *testing.T) {
	assert := assert.New(t)

	src := NewSource(New(historical(t), 0))
	for n := 0; n < 100; n++ {
		assert.GreaterOrEqual(src.Int63(), int64(0))
	}
}

func TestSource_SeedPanics(t *testing.T) {
	assert := assert.New(t)

	src := NewSource(New(historical(t), 0))
	assert.Panics(func() { src.Seed(1) })
}

func TestSource_Shuffle(t *testing.T) {
	assert := assert.New(t)

	// The demo use: a machine-driven shuffle must produce a permutation.
	src := NewSource(New(historical(t), 3))
	items := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	rand.New(src).Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})

	sort.Ints(items)
	assert.Equal([]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, items)
}
