package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PeddleSpam/enigma/wiring"
)

var streamCount int

// streamCmd emits raw keystream symbols.
var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Emit keystream symbols from the machine",
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		gen, err := newGenerator()
		if err != nil {
			return
		}

		vals := make([]uint8, streamCount)
		for n := range vals {
			vals[n] = gen.Next()
		}

		// Letters for the latin alphabet, code points otherwise.
		if uint(gen.Max()) == wiring.Base-1 {
			var text string
			if text, err = wiring.ToLetters(vals); err != nil {
				return
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return
		}
		for n, val := range vals {
			if n > 0 {
				fmt.Fprint(cmd.OutOrStdout(), " ")
			}
			fmt.Fprint(cmd.OutOrStdout(), val)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return
	},
}

func init() {
	rootCmd.AddCommand(streamCmd)
	streamCmd.Flags().IntVarP(&streamCount, "count", "c", 26, "number of symbols to emit")
}
