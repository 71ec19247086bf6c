package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/PeddleSpam/enigma/keystream"
	"github.com/PeddleSpam/enigma/machine"
	"github.com/PeddleSpam/enigma/setup"
)

var (
	setupFile string
	seedFlag  uint64
	verbose   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "enigma",
	Short: "An Enigma-style rotor machine simulator",
	Long: `enigma simulates the rotor assembly of an Enigma-style cipher machine
and uses it as a keystream source for shuffling and sampling.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&setupFile, "setup", "f", "",
		"machine definition file (default is rotors III, II, I with reflector B)")
	rootCmd.PersistentFlags().Uint64VarP(&seedFlag, "seed", "s", 0,
		"machine seed (default is the wall clock)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"verbose logging of rotor positions")
}

// newGenerator builds the configured machine, winds it forward by the seed,
// and binds a keystream generator to it, seeded with the seed's high bits
// folded into the alphabet.
func newGenerator() (gen *keystream.Generator[uint8], err error) {
	var m *machine.Machine[uint8]
	if setupFile != "" {
		m, err = setup.Load(setupFile)
	} else {
		m, err = setup.Default()
	}
	if err != nil {
		return
	}
	m.Verbose = verbose

	seed := seedFlag
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	m.Advance(uint(seed))
	gen = keystream.New(m, uint8(seed%uint64(m.Base())))
	return
}
